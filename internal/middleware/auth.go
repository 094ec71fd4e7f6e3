package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/venuvibe/venuvibe-backend/internal/config"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/token"
)

// ClientProtected validates the Bearer token on client-facing routes.
func ClientProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: unauthorizedHandler,
	})
}

// ClientRequired rejects tokens that carry no user_id claim, e.g. an admin
// token presented against a client endpoint.
func ClientRequired() fiber.Handler {
	return claimRequired(token.ClaimClientID)
}

// AdminProtected validates the Bearer token on admin routes.
func AdminProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: unauthorizedHandler,
	})
}

// AdminRequired rejects tokens that carry no admin_id claim.
func AdminRequired() fiber.Handler {
	return claimRequired(token.ClaimAdminID)
}

// unauthorizedHandler maps token validation failures to 401. Expired tokens
// get their own message; the frontend uses it to force a re-login.
func unauthorizedHandler(c *fiber.Ctx, err error) error {
	message := "Unauthorized"
	if errors.Is(err, jwt.ErrTokenExpired) {
		message = "Token expired"
	}
	return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
		Success: false,
		Message: message,
	})
}

func claimRequired(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, ok := c.Locals("user").(*jwt.Token)
		if !ok || tok == nil {
			return unauthorizedHandler(c, errors.New("missing token"))
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorizedHandler(c, errors.New("invalid claims"))
		}
		if _, present := claims[name]; !present {
			return unauthorizedHandler(c, token.ErrMissingClaim)
		}
		return c.Next()
	}
}
