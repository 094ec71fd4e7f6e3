package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/token"
)

// ClientID extracts the authenticated client's id from JWT claims in context.
func ClientID(c *fiber.Ctx) (uint, error) {
	return claimID(c, token.ClaimClientID)
}

// AdminID extracts the authenticated admin's id from JWT claims in context.
func AdminID(c *fiber.Ctx) (uint, error) {
	return claimID(c, token.ClaimAdminID)
}

func claimID(c *fiber.Ctx, name string) (uint, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok || tok == nil {
		return 0, apperrors.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	id, ok := token.NumericClaim(claims, name)
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	return id, nil
}
