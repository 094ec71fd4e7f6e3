package dto

type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateEventRequest struct {
	UserID         uint        `json:"user_id"`
	Title          string      `json:"title"`
	Type           string      `json:"type"`
	Date           string      `json:"date"`
	Location       string      `json:"location"`
	Description    string      `json:"description"`
	ExpectedGuests int         `json:"expectedGuests"`
	Budget         float64     `json:"budget"`
	CategoryID     *uint       `json:"category_id"`
	Vendors        []uint      `json:"vendors"`
	Tasks          []TaskInput `json:"tasks"`
}

// UpdateEventRequest carries only the fields to change; nil means untouched.
type UpdateEventRequest struct {
	Title          *string  `json:"title"`
	Type           *string  `json:"type"`
	Date           *string  `json:"date"`
	Location       *string  `json:"location"`
	Description    *string  `json:"description"`
	ExpectedGuests *int     `json:"expectedGuests"`
	Budget         *float64 `json:"budget"`
	Status         *string  `json:"status"`
	CategoryID     *uint    `json:"category_id"`
}
