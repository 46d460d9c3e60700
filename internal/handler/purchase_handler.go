package handler

import (
	"go-stockdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// POST /purchases
func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req service.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	purchase, err := h.service.CreatePurchase(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(purchase)
}

// DELETE /purchases/:id
func (h *PurchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	if err := h.service.DeletePurchase(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Purchase deleted and stock updated"})
}

// GET /purchases
func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.GetAllPurchases()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchases)
}

// GET /purchases/:id
func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	purchase, err := h.service.GetPurchaseByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchase)
}
