package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/middleware"
	"github.com/venuvibe/venuvibe-backend/internal/models"
	"github.com/venuvibe/venuvibe-backend/internal/services"
)

type OAuthHandler struct {
	oauth *services.OAuthService
}

func NewOAuthHandler(oauth *services.OAuthService) *OAuthHandler {
	return &OAuthHandler{oauth: oauth}
}

// Google signs a client in with a Google access token, creating the
// account on first use.
func (h *OAuthHandler) Google(c *fiber.Ctx) error {
	return h.signIn(c, models.ProviderGoogle)
}

func (h *OAuthHandler) Facebook(c *fiber.Ctx) error {
	return h.signIn(c, models.ProviderFacebook)
}

func (h *OAuthHandler) signIn(c *fiber.Ctx, provider string) error {
	var req dto.OAuthSignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
			Status: "error", Error: "Invalid request body",
		})
	}

	client, tok, err := h.oauth.SignIn(provider, req.AccessToken)
	if err != nil {
		return failStatus(c, err)
	}

	return c.JSON(dto.StatusResponse{
		Status: "success",
		Data: dto.LoginData{
			User: dto.UserInfo{
				ID:       client.ID,
				Username: client.Name,
				Email:    client.Email,
			},
			Token: tok,
		},
	})
}

func (h *OAuthHandler) Providers(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	accounts, err := h.oauth.Providers(clientID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, accounts)
}

func (h *OAuthHandler) Link(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.LinkProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}

	account, err := h.oauth.Link(clientID, req.Provider, req.AccessToken)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, account)
}

func (h *OAuthHandler) Unlink(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}

	provider := c.Params("provider")
	if err := h.oauth.Unlink(clientID, provider); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Provider unlinked"})
}
