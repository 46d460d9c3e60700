package repository

import (
	"go-stockdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(tx *gorm.DB, order *model.Order) error
	FindAll() ([]model.Order, error)
	FindByID(id uuid.UUID) (*model.Order, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Order, error)
	TransitionStatus(tx *gorm.DB, id uuid.UUID, from, to model.OrderStatus) (bool, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

// Create persists the order together with its items in one insert
// chain; must run inside the caller's transaction.
func (r *orderRepo) Create(tx *gorm.DB, order *model.Order) error {
	return tx.Create(order).Error
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		First(&order, "id = ?", id).Error
	return &order, err
}

func (r *orderRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := tx.Preload("Items").First(&order, "id = ?", id).Error
	return &order, err
}

// TransitionStatus flips the status only while the row still carries
// from, so two concurrent processors cannot both claim the same
// order. Returns false when another writer got there first.
func (r *orderRepo) TransitionStatus(tx *gorm.DB, id uuid.UUID, from, to model.OrderStatus) (bool, error) {
	res := tx.Model(&model.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected > 0, res.Error
}
