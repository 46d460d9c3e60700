package repository

import (
	"go-stockdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(search string) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindByIDs(tx *gorm.DB, ids []uuid.UUID) ([]model.Product, error)
	Update(product *model.Product) error
	SoftDelete(id uuid.UUID) error
	DecrementStock(tx *gorm.DB, id uuid.UUID, qty int) (bool, error)
	IncrementStock(tx *gorm.DB, id uuid.UUID, qty int) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindAll lists active products, optionally filtered by a name search.
// Soft-deleted rows never appear here.
func (r *productRepo) FindAll(search string) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Where("is_deleted = ?", false)
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	err := q.Order("created_at DESC").Find(&products).Error
	return products, err
}

// FindByID also returns soft-deleted products so historical order
// items keep resolving.
func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	return &product, err
}

func (r *productRepo) FindByIDs(tx *gorm.DB, ids []uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := tx.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) SoftDelete(id uuid.UUID) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

// DecrementStock is a conditional update: it only fires when enough
// stock remains, so a concurrent order can never overdraw. Returns
// false when the guard rejected the decrement.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, qty int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	return res.RowsAffected > 0, res.Error
}

func (r *productRepo) IncrementStock(tx *gorm.DB, id uuid.UUID, qty int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", qty)).Error
}
