package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venuvibe/venuvibe-backend/internal/apperrors"
	"github.com/venuvibe/venuvibe-backend/internal/dto"
	"github.com/venuvibe/venuvibe-backend/internal/services"
)

type VendorHandler struct {
	vendors *services.VendorService
}

func NewVendorHandler(vendors *services.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

// List is public: the SPA browses vendors before login.
func (h *VendorHandler) List(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		vendors, err := h.vendors.ListByCategory(category)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, vendors)
	}

	vendors, err := h.vendors.List()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, vendors)
}

func (h *VendorHandler) Get(c *fiber.Ctx) error {
	vendorID, err := c.ParamsInt("id")
	if err != nil || vendorID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid vendor id"))
	}
	vendor, err := h.vendors.Get(uint(vendorID))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, vendor)
}

func (h *VendorHandler) Prices(c *fiber.Ctx) error {
	vendorID, err := c.ParamsInt("id")
	if err != nil || vendorID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid vendor id"))
	}
	prices, err := h.vendors.Prices(uint(vendorID))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, prices)
}

// --- admin-only ---

func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var req dto.VendorRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}
	vendor, err := h.vendors.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, vendor)
}

func (h *VendorHandler) Update(c *fiber.Ctx) error {
	vendorID, err := c.ParamsInt("id")
	if err != nil || vendorID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid vendor id"))
	}
	var req dto.UpdateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}
	vendor, err := h.vendors.Update(uint(vendorID), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, vendor)
}

func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	vendorID, err := c.ParamsInt("id")
	if err != nil || vendorID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid vendor id"))
	}
	if err := h.vendors.Delete(uint(vendorID)); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "Vendor deleted"})
}

func (h *VendorHandler) SetPrice(c *fiber.Ctx) error {
	vendorID, err := c.ParamsInt("id")
	if err != nil || vendorID <= 0 {
		return fail(c, apperrors.Validation("id", "invalid vendor id"))
	}
	var req dto.SetPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.Validation("body", "invalid request body"))
	}
	price, err := h.vendors.SetPrice(uint(vendorID), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, price)
}
