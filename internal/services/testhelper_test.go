package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/venuvibe/venuvibe-backend/internal/config"
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"github.com/venuvibe/venuvibe-backend/internal/password"
	"github.com/venuvibe/venuvibe-backend/internal/token"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Client{},
		&models.Admin{},
		&models.Event{},
		&models.Task{},
		&models.EventVendor{},
		&models.Vendor{},
		&models.VendorPrice{},
		&models.Category{},
		&models.Request{},
		&models.Transaction{},
		&models.OAuthAccount{},
	)
	require.NoError(t, err)

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		BcryptCost:        bcrypt.MinCost,
		MinPasswordLength: 8,
		OAuthTimeout:      5 * time.Second,
	}
}

func testIssuer() *token.Issuer {
	return token.NewIssuer(token.NewCodec("test-secret", time.Hour))
}

func seedClient(t *testing.T, db *gorm.DB, email string) *models.Client {
	t.Helper()
	hash, err := password.Hash("password123", bcrypt.MinCost)
	require.NoError(t, err)
	client := &models.Client{Name: "Test Client", Email: email, Password: hash}
	require.NoError(t, db.Create(client).Error)
	return client
}

func seedAdmin(t *testing.T, db *gorm.DB, email string) *models.Admin {
	t.Helper()
	hash, err := password.Hash("adminpass123", bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.Admin{Name: "Test Admin", Email: email, Password: hash}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func seedEvent(t *testing.T, db *gorm.DB, clientID uint) *models.Event {
	t.Helper()
	event := &models.Event{
		ClientID:       clientID,
		Title:          "Summer Gala",
		Type:           "Gala",
		Date:           time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		Location:       "Lyon",
		ExpectedGuests: 120,
		Budget:         15000,
		Status:         models.EventStatusOpen,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func seedVendor(t *testing.T, db *gorm.DB, name string) *models.Vendor {
	t.Helper()
	vendor := &models.Vendor{Name: name, Category: "Catering", Rating: 4.5}
	require.NoError(t, db.Create(vendor).Error)
	return vendor
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func ptr[T any](v T) *T { return &v }
