package models

import "time"

// Transaction records a monetary amount against an event. It is normally
// owned by exactly one request; orphans are possible at the schema level and
// prevented by the request service.
type Transaction struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Amount  float64   `gorm:"not null" json:"amount"`
	EventID uint      `gorm:"not null;index" json:"id_event"`
	Date    time.Time `gorm:"not null" json:"date"`
}
