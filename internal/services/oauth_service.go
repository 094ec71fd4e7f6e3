package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/config"
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"github.com/venuvibe/venuvibe-backend/internal/token"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProviderProfile is the normalized result of a provider profile fetch.
type ProviderProfile struct {
	Subject string
	Name    string
	Email   string
	Raw     json.RawMessage
}

// OAuthService exchanges provider access tokens for profiles over HTTPS and
// maps them onto clients: sign-in finds-or-creates a client, link/unlink
// manage at most one provider account per client per provider.
type OAuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	issuer *token.Issuer

	httpClient *http.Client
	// Overridable in tests.
	googleUserInfoURL  string
	facebookProfileURL string
}

func NewOAuthService(db *gorm.DB, cfg *config.Config, issuer *token.Issuer) *OAuthService {
	return &OAuthService{
		db:                 db,
		cfg:                cfg,
		issuer:             issuer,
		httpClient:         &http.Client{Timeout: cfg.OAuthTimeout},
		googleUserInfoURL:  "https://www.googleapis.com/oauth2/v3/userinfo",
		facebookProfileURL: "https://graph.facebook.com/me",
	}
}

// SignIn resolves a provider access token to a client, creating the client
// on first sign-in, and issues a session token.
func (s *OAuthService) SignIn(provider, accessToken string) (*models.Client, string, error) {
	profile, err := s.fetchProfile(provider, accessToken)
	if err != nil {
		return nil, "", err
	}

	client, err := s.findOrCreateClient(provider, profile)
	if err != nil {
		return nil, "", err
	}

	tok, err := s.issuer.ClientToken(client.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return client, tok, nil
}

// Link attaches a provider account to an already-authenticated client. A
// subject bound to another client, or the pair being taken, is a conflict;
// re-linking the same provider for the same client refreshes the profile.
func (s *OAuthService) Link(clientID uint, provider, accessToken string) (*models.OAuthAccount, error) {
	profile, err := s.fetchProfile(provider, accessToken)
	if err != nil {
		return nil, err
	}

	var other models.OAuthAccount
	if err := s.db.Where("provider = ? AND subject = ? AND client_id <> ?",
		provider, profile.Subject, clientID).First(&other).Error; err == nil {
		return nil, apperrors.Conflict("Provider account already linked to another client")
	}

	var account models.OAuthAccount
	err = s.db.Where("client_id = ? AND provider = ?", clientID, provider).
		First(&account).Error
	if err != nil {
		account = models.OAuthAccount{
			ClientID: clientID,
			Provider: provider,
			Subject:  profile.Subject,
			Profile:  datatypes.JSON(profile.Raw),
		}
		if err := s.db.Create(&account).Error; err != nil {
			return nil, fmt.Errorf("failed to link provider: %w", err)
		}
		return &account, nil
	}

	if err := s.db.Model(&account).Updates(map[string]interface{}{
		"subject": profile.Subject,
		"profile": datatypes.JSON(profile.Raw),
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to refresh provider link: %w", err)
	}
	return &account, nil
}

func (s *OAuthService) Unlink(clientID uint, provider string) error {
	if !validProvider(provider) {
		return apperrors.Validation("provider", "unknown provider")
	}
	res := s.db.Where("client_id = ? AND provider = ?", clientID, provider).
		Delete(&models.OAuthAccount{})
	if res.Error != nil {
		return fmt.Errorf("failed to unlink provider: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Provider link not found")
	}
	return nil
}

func (s *OAuthService) Providers(clientID uint) ([]models.OAuthAccount, error) {
	var accounts []models.OAuthAccount
	err := s.db.Where("client_id = ?", clientID).Find(&accounts).Error
	return accounts, err
}

func (s *OAuthService) findOrCreateClient(provider string, profile *ProviderProfile) (*models.Client, error) {
	var account models.OAuthAccount
	if err := s.db.Where("provider = ? AND subject = ?", provider, profile.Subject).
		First(&account).Error; err == nil {
		var client models.Client
		if err := s.db.First(&client, account.ClientID).Error; err != nil {
			return nil, fmt.Errorf("linked client missing: %w", err)
		}
		return &client, nil
	}

	var client models.Client
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if profile.Email != "" {
			if err := tx.Where("email = ?", profile.Email).First(&client).Error; err == nil {
				return s.createLink(tx, client.ID, provider, profile)
			}
		}

		name := profile.Name
		if name == "" && profile.Email != "" {
			name = strings.Split(profile.Email, "@")[0]
		}
		if name == "" {
			name = profile.Subject
		}
		email := profile.Email
		if email == "" {
			email = profile.Subject + "@" + provider + ".oauth.local"
		}

		// Provider-created clients have no usable password; they log in
		// through the provider.
		client = models.Client{Name: name, Email: email, Password: ""}
		if err := tx.Create(&client).Error; err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		return s.createLink(tx, client.ID, provider, profile)
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *OAuthService) createLink(tx *gorm.DB, clientID uint, provider string, profile *ProviderProfile) error {
	link := models.OAuthAccount{
		ClientID: clientID,
		Provider: provider,
		Subject:  profile.Subject,
		Profile:  datatypes.JSON(profile.Raw),
	}
	if err := tx.Create(&link).Error; err != nil {
		return fmt.Errorf("failed to create provider link: %w", err)
	}
	return nil
}

func (s *OAuthService) fetchProfile(provider, accessToken string) (*ProviderProfile, error) {
	if accessToken == "" {
		return nil, apperrors.Validation("access_token", "")
	}
	switch provider {
	case models.ProviderGoogle:
		return s.fetchGoogleProfile(accessToken)
	case models.ProviderFacebook:
		return s.fetchFacebookProfile(accessToken)
	default:
		return nil, apperrors.Validation("provider", "unknown provider")
	}
}

func (s *OAuthService) fetchGoogleProfile(accessToken string) (*ProviderProfile, error) {
	req, err := http.NewRequest(http.MethodGet, s.googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, err := s.doProfileRequest(req)
	if err != nil {
		return nil, err
	}

	var info struct {
		Sub   string `json:"sub"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to decode google profile: %w", err)
	}
	if info.Sub == "" {
		return nil, apperrors.Unauthorized("Invalid provider token")
	}
	return &ProviderProfile{Subject: info.Sub, Name: info.Name, Email: info.Email, Raw: body}, nil
}

func (s *OAuthService) fetchFacebookProfile(accessToken string) (*ProviderProfile, error) {
	u := s.facebookProfileURL + "?fields=id,name,email&access_token=" + url.QueryEscape(accessToken)
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	body, err := s.doProfileRequest(req)
	if err != nil {
		return nil, err
	}

	var info struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to decode facebook profile: %w", err)
	}
	if info.ID == "" {
		return nil, apperrors.Unauthorized("Invalid provider token")
	}
	return &ProviderProfile{Subject: info.ID, Name: info.Name, Email: info.Email, Raw: body}, nil
}

func (s *OAuthService) doProfileRequest(req *http.Request) (json.RawMessage, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, apperrors.Unauthorized("Provider rejected the access token")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}
	return body, nil
}

func validProvider(provider string) bool {
	return provider == models.ProviderGoogle || provider == models.ProviderFacebook
}
