package repository

import (
	"go-stockdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(tx *gorm.DB, purchase *model.Purchase) error
	FindAll() ([]model.Purchase, error)
	FindByID(id uuid.UUID) (*model.Purchase, error)
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(tx *gorm.DB, purchase *model.Purchase) error {
	return tx.Create(purchase).Error
}

func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Product").Order("timestamp DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindByID(id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Product").First(&purchase, "id = ?", id).Error
	return &purchase, err
}

func (r *purchaseRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Purchase{}, "id = ?", id).Error
}
