package dto

// OAuthSignInRequest carries a provider-issued access token obtained by the
// SPA; the backend exchanges it for the provider profile server-side.
type OAuthSignInRequest struct {
	AccessToken string `json:"access_token"`
}

type LinkProviderRequest struct {
	Provider    string `json:"provider"`
	AccessToken string `json:"access_token"`
}
