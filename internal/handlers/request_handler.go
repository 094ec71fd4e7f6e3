package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/middleware"
	"github.com/venuvibe/venuvibe-backend/internal/services"
)

// RequestHandler serves budget requests. Writes carry id_event and
// id_client in the body; the payload's id_client must match the
// authenticated client and the service re-checks event ownership.
type RequestHandler struct {
	requests *services.RequestService
}

func NewRequestHandler(requests *services.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}
	if req.IDClient == 0 {
		req.IDClient = clientID
	}
	if req.IDClient != clientID {
		return fail(c, apperrors.Forbidden("Event does not belong to the client"))
	}

	request, err := h.requests.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, fiber.Map{"id_request": request.ID})
}

func (h *RequestHandler) List(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	eventID := c.QueryInt("id_event")
	if eventID <= 0 {
		return fail(c, apperrors.Validation("id_event", ""))
	}

	views, err := h.requests.ListByEvent(uint(eventID), clientID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, views)
}

// ListLegacy answers with the French field names of the original requetes
// table for frontend pages not yet migrated.
func (h *RequestHandler) ListLegacy(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	eventID := c.QueryInt("id_event")
	if eventID <= 0 {
		return fail(c, apperrors.Validation("id_event", ""))
	}

	views, err := h.requests.ListByEventLegacy(uint(eventID), clientID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, views)
}

func (h *RequestHandler) Update(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid request id"))
	}

	var req dto.UpdateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}
	if req.IDClient == 0 {
		req.IDClient = clientID
	}
	if req.IDClient != clientID {
		return fail(c, apperrors.Forbidden("Event does not belong to the client"))
	}

	request, err := h.requests.Update(uint(requestID), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"id_request": request.ID})
}

func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	clientID, err := middleware.ClientID(c)
	if err != nil {
		return fail(c, err)
	}
	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid request id"))
	}

	var req dto.DeleteRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}
	if req.IDClient == 0 {
		req.IDClient = clientID
	}
	if req.IDClient != clientID {
		return fail(c, apperrors.Forbidden("Event does not belong to the client"))
	}

	if err := h.requests.Delete(uint(requestID), &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Request deleted"})
}
