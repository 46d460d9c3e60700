package service

import (
	"errors"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"
	"go-stockdesk/internal/ws"
	"go-stockdesk/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	SKU           string          `json:"sku" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	ImageURL      string          `json:"imageUrl"`
}

type ProductService interface {
	CreateProduct(req *ProductInput) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *ProductInput) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetAllProducts(search string) ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{productRepo: pRepo, wsHub: hub}
}

func (s *productService) CreateProduct(req *ProductInput) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.Validation,
			"validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	if req.Price.IsNegative() {
		return nil, apperr.New(apperr.Validation, "price must not be negative")
	}

	existing, err := s.productRepo.FindBySKU(req.SKU)
	if err == nil && existing.ID != uuid.Nil {
		return nil, apperr.New(apperr.Conflict, "SKU already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	product := &model.Product{
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.wsHub.Publish("product_created", product)
	return product, nil
}

func (s *productService) UpdateProduct(id uuid.UUID, req *ProductInput) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.Validation,
			"validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "product not found")
		}
		return nil, err
	}
	if product.IsDeleted {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}

	// Changing the SKU must not collide with another product.
	if req.SKU != product.SKU {
		if other, err := s.productRepo.FindBySKU(req.SKU); err == nil && other.ID != product.ID {
			return nil, apperr.New(apperr.Conflict, "SKU already exists")
		}
	}

	product.SKU = req.SKU
	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	s.wsHub.Publish("product_updated", product)
	return product, nil
}

func (s *productService) DeleteProduct(id uuid.UUID) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "product not found")
		}
		return err
	}
	if product.IsDeleted {
		return apperr.New(apperr.NotFound, "product not found")
	}
	return s.productRepo.SoftDelete(id)
}

func (s *productService) GetAllProducts(search string) ([]model.Product, error) {
	return s.productRepo.FindAll(search)
}

// GetProductByID resolves soft-deleted products too; historical order
// items still reference them.
func (s *productService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "product not found")
		}
		return nil, err
	}
	return product, nil
}
