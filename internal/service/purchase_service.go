package service

import (
	"errors"
	"time"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"
	"go-stockdesk/internal/ws"
	"go-stockdesk/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreatePurchaseRequest struct {
	ProductID uuid.UUID       `json:"productId" validate:"uuid_required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	Note      string          `json:"note"`
}

type PurchaseService interface {
	CreatePurchase(req *CreatePurchaseRequest) (*model.Purchase, error)
	DeletePurchase(id uuid.UUID) error
	GetAllPurchases() ([]model.Purchase, error)
	GetPurchaseByID(id uuid.UUID) (*model.Purchase, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewPurchaseService(pRepo repository.PurchaseRepository, prodRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) PurchaseService {
	return &purchaseService{
		purchaseRepo: pRepo,
		productRepo:  prodRepo,
		db:           db,
		wsHub:        hub,
	}
}

// CreatePurchase writes the ledger row and bumps stock in the same
// transaction; neither survives without the other.
func (s *purchaseService) CreatePurchase(req *CreatePurchaseRequest) (*model.Purchase, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.Validation,
			"validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	if req.UnitCost.IsNegative() {
		return nil, apperr.New(apperr.Validation, "unitCost must not be negative")
	}

	var purchase *model.Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "product not found")
			}
			return err
		}

		purchase = &model.Purchase{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			UnitCost:  req.UnitCost,
			TotalCost: req.UnitCost.Mul(decimal.NewFromInt(int64(req.Quantity))),
			Note:      req.Note,
			Timestamp: time.Now(),
		}
		if err := s.purchaseRepo.Create(tx, purchase); err != nil {
			return err
		}

		return s.productRepo.IncrementStock(tx, req.ProductID, req.Quantity)
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish("purchase_created", map[string]interface{}{
		"id":        purchase.ID,
		"productId": purchase.ProductID,
		"quantity":  purchase.Quantity,
	})

	return purchase, nil
}

// DeletePurchase removes the ledger row and reverses its stock
// increment. The reversal is rejected when it would drive stock
// negative; clamping would break ledger reconciliation.
func (s *purchaseService) DeletePurchase(id uuid.UUID) error {
	var reversed *model.Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var purchase model.Purchase
		if err := tx.First(&purchase, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "purchase not found")
			}
			return err
		}

		if err := s.purchaseRepo.Delete(tx, id); err != nil {
			return err
		}

		decremented, err := s.productRepo.DecrementStock(tx, purchase.ProductID, purchase.Quantity)
		if err != nil {
			return err
		}
		if !decremented {
			return apperr.New(apperr.Conflict,
				"cannot reverse purchase: remaining stock is below %d", purchase.Quantity)
		}

		reversed = &purchase
		return nil
	})
	if err != nil {
		return err
	}

	s.wsHub.Publish("purchase_deleted", map[string]interface{}{
		"id":        reversed.ID,
		"productId": reversed.ProductID,
		"quantity":  reversed.Quantity,
	})
	return nil
}

func (s *purchaseService) GetAllPurchases() ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll()
}

func (s *purchaseService) GetPurchaseByID(id uuid.UUID) (*model.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "purchase not found")
		}
		return nil, err
	}
	return purchase, nil
}
