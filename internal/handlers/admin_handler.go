package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/services"
)

// AdminHandler serves the admin dashboard: login, client and event
// management, request oversight and analytics.
type AdminHandler struct {
	auth      *services.AuthService
	clients   *services.ClientService
	events    *services.EventService
	requests  *services.RequestService
	analytics *services.AnalyticsService
}

func NewAdminHandler(
	auth *services.AuthService,
	clients *services.ClientService,
	events *services.EventService,
	requests *services.RequestService,
	analytics *services.AnalyticsService,
) *AdminHandler {
	return &AdminHandler{
		auth:      auth,
		clients:   clients,
		events:    events,
		requests:  requests,
		analytics: analytics,
	}
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}

	_, tok, err := h.auth.AdminLogin(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false, Message: err.Error(),
			})
		}
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "token": tok})
}

// Logout is deliberately stateless: tokens stay valid until their TTL
// expires, there is no revocation store. The endpoint exists so the
// dashboard has something to call.
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.APIResponse{Success: true, Message: "Logged out"})
}

func (h *AdminHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.clients.List()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, clients)
}

func (h *AdminHandler) GetClient(c *fiber.Ctx) error {
	clientID, err := c.ParamsInt("id")
	if err != nil || clientID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid client id"))
	}
	client, err := h.clients.Get(uint(clientID))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, client)
}

func (h *AdminHandler) DeleteClient(c *fiber.Ctx) error {
	clientID, err := c.ParamsInt("id")
	if err != nil || clientID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid client id"))
	}
	if err := h.clients.Delete(uint(clientID)); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Client deleted"})
}

func (h *AdminHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.events.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, events)
}

func (h *AdminHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil || eventID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid event id"))
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}

	// Zero client id skips the ownership check: admins act on any event.
	event, err := h.events.Update(uint(eventID), 0, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, event)
}

func (h *AdminHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil || eventID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid event id"))
	}
	if err := h.events.Delete(uint(eventID), 0); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Event deleted"})
}

func (h *AdminHandler) ListRequests(c *fiber.Ctx) error {
	if eventID := c.QueryInt("id_event"); eventID > 0 {
		views, err := h.requests.ListByEvent(uint(eventID), 0)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, views)
	}

	views, err := h.requests.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, views)
}

func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	stats, err := h.analytics.Dashboard()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, stats)
}
