package handler

import (
	"go-stockdesk/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// GET /customers
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customers)
}

// GET /customers/:id (includes order history)
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

// DELETE /customers/:id (soft delete)
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	if err := h.service.DeleteCustomer(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Customer deleted (soft)"})
}
