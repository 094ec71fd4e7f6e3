package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/config"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"github.com/venuvibe/venuvibe-backend/internal/password"
	"github.com/venuvibe/venuvibe-backend/internal/token"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("Invalid email or password")

// AuthService authenticates clients and admins. The two principal kinds
// keep separate code paths and separate token claims.
type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	issuer *token.Issuer
}

func NewAuthService(db *gorm.DB, cfg *config.Config, issuer *token.Issuer) *AuthService {
	return &AuthService{db: db, cfg: cfg, issuer: issuer}
}

func (s *AuthService) Signup(req *dto.SignupRequest) (*models.Client, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, apperrors.Validation("username", "")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.Validation("email", "")
	}
	if len(req.Password) < s.cfg.MinPasswordLength {
		return nil, apperrors.Validation("password",
			fmt.Sprintf("must be at least %d characters", s.cfg.MinPasswordLength))
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.Validation("confirm_password", "passwords do not match")
	}

	var existing models.Client
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("Email already registered")
	}

	hash, err := password.Hash(req.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	client := models.Client{
		Name:     req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

// Login verifies client credentials and issues a user_id token. Unknown
// email and wrong password answer with the same generic error.
func (s *AuthService) Login(req *dto.LoginRequest) (*models.Client, string, error) {
	var client models.Client
	if err := s.db.Where("email = ?", req.Email).First(&client).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !password.Verify(req.Password, client.Password) {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.issuer.ClientToken(client.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &client, tok, nil
}

// AdminLogin verifies admin credentials and issues an admin_id token.
func (s *AuthService) AdminLogin(req *dto.AdminLoginRequest) (*models.Admin, string, error) {
	var admin models.Admin
	if err := s.db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !password.Verify(req.Password, admin.Password) {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.issuer.AdminToken(admin.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &admin, tok, nil
}

func (s *AuthService) GetClient(clientID uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, clientID).Error; err != nil {
		return nil, apperrors.NotFound("Client not found")
	}
	return &client, nil
}

func (s *AuthService) UpdateProfile(clientID uint, req *dto.UpdateProfileRequest) (*models.Client, error) {
	client, err := s.GetClient(clientID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if strings.TrimSpace(req.Username) != "" {
		updates["name"] = req.Username
	}
	if strings.TrimSpace(req.Email) != "" && req.Email != client.Email {
		var other models.Client
		if err := s.db.Where("email = ? AND id <> ?", req.Email, clientID).First(&other).Error; err == nil {
			return nil, apperrors.Conflict("Email already registered")
		}
		updates["email"] = req.Email
	}
	if len(updates) == 0 {
		return client, nil
	}

	if err := s.db.Model(client).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return client, nil
}

func (s *AuthService) ChangePassword(clientID uint, req *dto.ChangePasswordRequest) error {
	client, err := s.GetClient(clientID)
	if err != nil {
		return err
	}
	if !password.Verify(req.CurrentPassword, client.Password) {
		return apperrors.Unauthorized("Current password is incorrect")
	}
	if len(req.NewPassword) < s.cfg.MinPasswordLength {
		return apperrors.Validation("new_password",
			fmt.Sprintf("must be at least %d characters", s.cfg.MinPasswordLength))
	}
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.Validation("confirm_password", "passwords do not match")
	}

	hash, err := password.Hash(req.NewPassword, s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.db.Model(client).Update("password", hash).Error
}
