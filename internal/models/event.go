package models

import "time"

// Event statuses.
const (
	EventStatusOpen      = "Open"
	EventStatusPlanned   = "Planned"
	EventStatusOngoing   = "Ongoing"
	EventStatusCompleted = "Completed"
	EventStatusCancelled = "Cancelled"
)

type Event struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ClientID       uint      `gorm:"not null;index" json:"user_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Type           string    `gorm:"size:50" json:"type"`
	Date           time.Time `gorm:"not null" json:"date"`
	Location       string    `gorm:"size:255" json:"location"`
	Description    string    `gorm:"type:text" json:"description"`
	ExpectedGuests int       `json:"expectedGuests"`
	Budget         float64   `json:"budget"`
	Status         string    `gorm:"size:20;default:'Open'" json:"status"`
	CategoryID     *uint     `gorm:"index" json:"category_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Client  Client   `gorm:"foreignKey:ClientID" json:"-"`
	Tasks   []Task   `gorm:"foreignKey:EventID" json:"tasks,omitempty"`
	Vendors []Vendor `gorm:"many2many:event_vendors;" json:"vendors,omitempty"`
}

// Task is a checklist item created alongside an event.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventID     uint      `gorm:"not null;index" json:"event_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:20;default:'Open'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventVendor links a vendor to an event. The pair is unique; cascade is
// handled by the event service, not by FK constraints.
type EventVendor struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	EventID  uint `gorm:"not null;uniqueIndex:idx_event_vendor" json:"event_id"`
	VendorID uint `gorm:"not null;uniqueIndex:idx_event_vendor" json:"vendor_id"`
}
