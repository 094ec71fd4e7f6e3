package models

import (
	"time"

	"gorm.io/datatypes"
)

// OAuth provider names.
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// OAuthAccount links a client to an external identity provider. A client
// holds at most one link per provider; the unique index backs the
// service-layer check.
type OAuthAccount struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ClientID  uint           `gorm:"not null;uniqueIndex:idx_client_provider" json:"client_id"`
	Provider  string         `gorm:"size:20;not null;uniqueIndex:idx_client_provider" json:"provider"`
	Subject   string         `gorm:"size:255;not null;index" json:"subject"`
	Profile   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"profile"`
	CreatedAt time.Time      `json:"created_at"`
}
