package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"github.com/venuvibe/venuvibe-backend/internal/password"
	"github.com/venuvibe/venuvibe-backend/internal/token"
)

func newAuthService(t *testing.T) (*AuthService, *token.Codec) {
	t.Helper()
	codec := token.NewCodec("test-secret", testConfig().TokenTTL)
	return NewAuthService(setupTestDB(t), testConfig(), token.NewIssuer(codec)), codec
}

func TestSignupAndLogin(t *testing.T) {
	svc, codec := newAuthService(t)

	client, err := svc.Signup(&dto.SignupRequest{
		Username:        "marie",
		Email:           "marie@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, client.ID)
	assert.NotEqual(t, "password123", client.Password)
	assert.True(t, password.Verify("password123", client.Password))

	logged, tok, err := svc.Login(&dto.LoginRequest{
		Email:    "marie@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, client.ID, logged.ID)

	claims, err := codec.Decode(tok, token.ClaimClientID)
	require.NoError(t, err)
	id, ok := token.NumericClaim(claims, token.ClaimClientID)
	require.True(t, ok)
	assert.Equal(t, client.ID, id)
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := []struct {
		name string
		req  dto.SignupRequest
	}{
		{"missing username", dto.SignupRequest{Email: "a@b.com", Password: "password123", ConfirmPassword: "password123"}},
		{"missing email", dto.SignupRequest{Username: "a", Password: "password123", ConfirmPassword: "password123"}},
		{"short password", dto.SignupRequest{Username: "a", Email: "a@b.com", Password: "short", ConfirmPassword: "short"}},
		{"mismatched confirmation", dto.SignupRequest{Username: "a", Email: "a@b.com", Password: "password123", ConfirmPassword: "password321"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(&tc.req)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := dto.SignupRequest{
		Username:        "marie",
		Email:           "marie@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
	_, err := svc.Signup(&req)
	require.NoError(t, err)

	_, err = svc.Signup(&req)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.EqualError(t, err, "Email already registered")
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	seedClient(t, svc.db, "known@example.com")

	// Unknown email and wrong password answer identically.
	_, _, err := svc.Login(&dto.LoginRequest{Email: "unknown@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(&dto.LoginRequest{Email: "known@example.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginIssuesAdminClaim(t *testing.T) {
	svc, codec := newAuthService(t)
	admin := seedAdmin(t, svc.db, "admin@example.com")

	logged, tok, err := svc.AdminLogin(&dto.AdminLoginRequest{
		Email:    "admin@example.com",
		Password: "adminpass123",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, logged.ID)

	claims, err := codec.Decode(tok, token.ClaimAdminID)
	require.NoError(t, err)
	_, hasClient := claims[token.ClaimClientID]
	assert.False(t, hasClient)
}

func TestClientAndAdminMayShareEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	// Email uniqueness is per-table: the same address can exist as a client
	// and as an admin, and each logs into its own realm.
	seedAdmin(t, svc.db, "shared@example.com")
	_, err := svc.Signup(&dto.SignupRequest{
		Username:        "shared",
		Email:           "shared@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(&dto.LoginRequest{Email: "shared@example.com", Password: "password123"})
	assert.NoError(t, err)
	_, _, err = svc.AdminLogin(&dto.AdminLoginRequest{Email: "shared@example.com", Password: "adminpass123"})
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newAuthService(t)
	client := seedClient(t, svc.db, "old@example.com")
	seedClient(t, svc.db, "taken@example.com")

	updated, err := svc.UpdateProfile(client.ID, &dto.UpdateProfileRequest{
		Username: "renamed",
		Email:    "new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)

	_, err = svc.UpdateProfile(client.ID, &dto.UpdateProfileRequest{Email: "taken@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)
	client := seedClient(t, svc.db, "marie@example.com")

	err := svc.ChangePassword(client.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrongpass",
		NewPassword:     "newpassword1",
		ConfirmPassword: "newpassword1",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	err = svc.ChangePassword(client.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
		ConfirmPassword: "newpassword1",
	})
	require.NoError(t, err)

	var stored models.Client
	require.NoError(t, svc.db.First(&stored, client.ID).Error)
	assert.True(t, password.Verify("newpassword1", stored.Password))
	assert.False(t, password.Verify("password123", stored.Password))
}
