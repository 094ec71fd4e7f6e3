package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/middleware"
	"github.com/venuvibe/venuvibe-backend/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
			Status: "error", Error: "Invalid request body",
		})
	}

	if _, err := h.auth.Signup(&req); err != nil {
		// The signup page predates the 409 convention and still expects
		// duplicate emails as a 400.
		code := apperrors.StatusCode(err)
		if errors.Is(err, apperrors.ErrConflict) {
			code = fiber.StatusBadRequest
		}
		if code >= fiber.StatusInternalServerError {
			return failStatus(c, err)
		}
		return c.Status(code).JSON(dto.StatusResponse{Status: "error", Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{
		Status:  "success",
		Message: "Account created successfully",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
			Status: "error", Error: "Invalid request body",
		})
	}

	client, tok, err := h.auth.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.StatusResponse{
				Status: "error", Error: err.Error(),
			})
		}
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

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	client, err := h.auth.GetClient(clientID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, dto.UserInfo{ID: client.ID, Username: client.Name, Email: client.Email})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}

	client, err := h.auth.UpdateProfile(clientID, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, dto.UserInfo{ID: client.ID, Username: client.Name, Email: client.Email})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}

	if err := h.auth.ChangePassword(clientID, &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Password updated"})
}
