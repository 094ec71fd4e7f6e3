package models

import "time"

// Request statuses. Distinct from event statuses even where names overlap.
const (
	RequestStatusOpen       = "Open"
	RequestStatusInProgress = "In Progress"
	RequestStatusCompleted  = "Completed"
	RequestStatusCancelled  = "Cancelled"
)

// Request is a budget line item tied to an event, optionally to a vendor,
// and optionally to exactly one transaction carrying its amount.
type Request struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Status        string     `gorm:"size:20;default:'Open'" json:"status"`
	EventID       uint       `gorm:"not null;index" json:"id_event"`
	VendorID      *uint      `gorm:"index" json:"id_vendor,omitempty"`
	TransactionID *uint      `gorm:"index" json:"id_transaction,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Transaction *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
}
