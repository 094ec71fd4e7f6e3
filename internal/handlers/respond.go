package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
)

// fail maps a service error onto the {success} envelope. 5xx details stay
// server-side.
func fail(c *fiber.Ctx, err error) error {
	code := apperrors.StatusCode(err)
	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}
	return c.Status(code).JSON(dto.APIResponse{Success: false, Message: message})
}

// failStatus is the same mapping for the {status} envelope used by the
// client auth and OAuth sign-in endpoints.
func failStatus(c *fiber.Ctx, err error) error {
	code := apperrors.StatusCode(err)
	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}
	return c.Status(code).JSON(dto.StatusResponse{Status: "error", Error: message})
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.APIResponse{Success: true, Data: data})
}

func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.APIResponse{Success: true, Data: data})
}
