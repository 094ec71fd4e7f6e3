package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/services"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, categories)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}
	category, err := h.categories.Create(req.Name)
	if err != nil {
		return fail(c, err)
	}
	return created(c, category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid category id"))
	}
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}
	category, err := h.categories.Update(uint(categoryID), req.Name)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid category id"))
	}
	if err := h.categories.Delete(uint(categoryID)); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Category deleted"})
}
