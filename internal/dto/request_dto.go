package dto

// CreateRequestRequest creates a budget request for an event. id_event and
// id_client are both required on every write: the ownership check verifies
// the event belongs to the acting client before anything is mutated.
type CreateRequestRequest struct {
	IDEvent     uint     `json:"id_event"`
	IDClient    uint     `json:"id_client"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline"`
	Status      string   `json:"status"`
	IDVendor    *uint    `json:"id_vendor"`
	Amount      *float64 `json:"amount"`
}

// UpdateRequestRequest mutates a request. A nil Amount leaves the linked
// transaction untouched; a present Amount updates or creates it.
type UpdateRequestRequest struct {
	IDEvent     uint     `json:"id_event"`
	IDClient    uint     `json:"id_client"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Deadline    *string  `json:"deadline"`
	Status      *string  `json:"status"`
	IDVendor    *uint    `json:"id_vendor"`
	Amount      *float64 `json:"amount"`
}

type DeleteRequestRequest struct {
	IDEvent  uint `json:"id_event"`
	IDClient uint `json:"id_client"`
}

// RequestView is a request row joined with its transaction amount.
type RequestView struct {
	ID            uint     `json:"id_request"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Deadline      string   `json:"deadline,omitempty"`
	Status        string   `json:"status"`
	IDEvent       uint     `json:"id_event"`
	IDVendor      *uint    `json:"id_vendor,omitempty"`
	IDTransaction *uint    `json:"id_transaction,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
}

// RequeteView serializes the same rows under the legacy French field names
// still consumed by older frontend pages.
type RequeteView struct {
	IDRequete     uint     `json:"id_requete"`
	Titre         string   `json:"titre"`
	Description   string   `json:"description"`
	DateLimite    string   `json:"date_limite,omitempty"`
	Statut        string   `json:"statut"`
	IDEvent       uint     `json:"id_event"`
	IDVendor      *uint    `json:"id_vendor,omitempty"`
	IDTransaction *uint    `json:"id_transaction,omitempty"`
	Montant       *float64 `json:"montant,omitempty"`
}
