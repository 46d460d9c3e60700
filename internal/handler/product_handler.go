package handler

import (
	"path/filepath"
	"strconv"

	"go-stockdesk/internal/service"
	"go-stockdesk/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	service service.ProductService
	store   storage.ObjectStore
}

func NewProductHandler(s service.ProductService, store storage.ObjectStore) *ProductHandler {
	return &ProductHandler{service: s, store: store}
}

// parseProductForm reads the multipart fields and, when an image file
// is attached, uploads it to the object store and records its URL.
func (h *ProductHandler) parseProductForm(c *fiber.Ctx) (*service.ProductInput, error) {
	input := &service.ProductInput{
		SKU:         c.FormValue("sku"),
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		ImageURL:    c.FormValue("imageUrl"),
	}

	if v := c.FormValue("price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid price")
		}
		input.Price = price
	}

	if v := c.FormValue("stockQuantity"); v != "" {
		qty, err := strconv.Atoi(v)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid stockQuantity")
		}
		input.StockQuantity = qty
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return input, nil
	}
	if h.store == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "image upload is not configured")
	}

	src, err := file.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unreadable image file")
	}
	defer src.Close()

	objectName := "products/" + uuid.NewString() + filepath.Ext(file.Filename)
	url, err := h.store.Upload(c.Context(), objectName, file.Header.Get("Content-Type"), src)
	if err != nil {
		return nil, err
	}
	input.ImageURL = url

	return input, nil
}

// POST /products (multipart: fields + optional image file)
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	input, err := h.parseProductForm(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		return fail(c, err)
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(product)
}

// PUT /products/:id (multipart)
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	input, err := h.parseProductForm(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		return fail(c, err)
	}

	product, err := h.service.UpdateProduct(id, input)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(product)
}

// DELETE /products/:id (soft delete)
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// GET /products?search=
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}
