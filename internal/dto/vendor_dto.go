package dto

type VendorRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Rating      float32 `json:"rating"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// UpdateVendorRequest carries only the fields to change; nil means untouched.
type UpdateVendorRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Rating      *float32 `json:"rating"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

type SetPriceRequest struct {
	CategoryID uint    `json:"category_id"`
	Price      float64 `json:"price"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}
