package handler

import (
	"go-stockdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// GET /statistics/sales-summary
func (h *StatsHandler) SalesSummary(c *fiber.Ctx) error {
	summary, err := h.service.SalesSummary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// GET /statistics/purchase-summary
func (h *StatsHandler) PurchaseSummary(c *fiber.Ctx) error {
	summary, err := h.service.PurchaseSummary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// GET /statistics/popular-products
func (h *StatsHandler) PopularProducts(c *fiber.Ctx) error {
	products, err := h.service.PopularProducts()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// GET /statistics/order-summary
func (h *StatsHandler) OrderSummary(c *fiber.Ctx) error {
	summary, err := h.service.OrderSummary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// GET /statistics/customer-growth
func (h *StatsHandler) CustomerGrowth(c *fiber.Ctx) error {
	growth, err := h.service.CustomerGrowth()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(growth)
}

// GET /statistics/expense-summary
func (h *StatsHandler) ExpenseSummary(c *fiber.Ctx) error {
	summary, err := h.service.ExpenseSummary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}
