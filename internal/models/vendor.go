package models

import "time"

type Vendor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255" json:"email"`
	Phone       string    `gorm:"size:30" json:"phone"`
	Rating      float32   `json:"rating"`
	Category    string    `gorm:"size:100" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:512" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VendorPrice is the price a vendor charges for a category of service.
// One row per (vendor, category); re-adding a pair overwrites the price.
type VendorPrice struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	VendorID   uint    `gorm:"not null;uniqueIndex:idx_vendor_category" json:"vendor_id"`
	CategoryID uint    `gorm:"not null;uniqueIndex:idx_vendor_category" json:"category_id"`
	Price      float64 `gorm:"not null" json:"price"`
}
