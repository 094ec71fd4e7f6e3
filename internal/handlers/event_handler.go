package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/middleware"
	"github.com/venuvibe/venuvibe-backend/internal/services"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// Create builds the event plus its vendor links and tasks in one call. The
// payload's user_id must match the authenticated client.
func (h *EventHandler) Create(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}
	if req.UserID == 0 {
		req.UserID = clientID
	}
	if req.UserID != clientID {
		return fail(c, apperrors.Forbidden("Event does not belong to the client"))
	}

	event, err := h.events.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, event)
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	events, err := h.events.ListByClient(clientID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, events)
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	eventID, err := c.ParamsInt("id")
	if err != nil || eventID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid event id"))
	}
	if err := h.events.EnsureOwnedBy(uint(eventID), clientID); err != nil {
		return fail(c, err)
	}

	event, err := h.events.Get(uint(eventID))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, event)
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	eventID, err := c.ParamsInt("id")
	if err != nil || eventID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid event id"))
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}

	event, err := h.events.Update(uint(eventID), clientID, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, event)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	eventID, err := c.ParamsInt("id")
	if err != nil || eventID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid event id"))
	}

	if err := h.events.Delete(uint(eventID), clientID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Event deleted"})
}
