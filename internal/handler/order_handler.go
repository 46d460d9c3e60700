package handler

import (
	"go-stockdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.CreateOrder(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(order)
}

// POST /orders/process/:id
func (h *OrderHandler) ProcessOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.ProcessOrder(id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Order processed", "order": order})
}

// GET /orders
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(orders)
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.GetOrderByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}
