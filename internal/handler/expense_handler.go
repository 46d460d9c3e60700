package handler

import (
	"go-stockdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	service service.ExpenseService
}

func NewExpenseHandler(s service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: s}
}

// POST /expenses
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var req service.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	expense, err := h.service.CreateExpense(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(expense)
}

// DELETE /expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	if err := h.service.DeleteExpense(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}

// GET /expenses
func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	expenses, err := h.service.GetAllExpenses()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(expenses)
}

// GET /expenses/:id
func (h *ExpenseHandler) GetExpense(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	expense, err := h.service.GetExpenseByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(expense)
}
