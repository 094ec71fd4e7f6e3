package dto

// Two response envelope families coexist: the admin/event/vendor/request
// endpoints answer {success, data?, message?}, while the client auth and
// OAuth sign-in endpoints answer {status, data?, message?, error?}. Both
// shapes are part of the frontend contract and are kept per-endpoint.

// APIResponse is the {success} envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// StatusResponse is the {status} envelope.
type StatusResponse struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
