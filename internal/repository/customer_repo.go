package repository

import (
	"go-stockdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerListing carries the order count the dashboard shows next to
// each customer.
type CustomerListing struct {
	model.Customer
	TotalOrders int64 `json:"totalOrders"`
}

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll() ([]CustomerListing, error)
	FindByID(id uuid.UUID) (*model.Customer, error)
	FindByEmail(email string) (*model.Customer, error)
	SoftDelete(id uuid.UUID) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll() ([]CustomerListing, error) {
	var listings []CustomerListing
	err := r.db.Model(&model.Customer{}).
		Select("customers.*, COUNT(orders.id) AS total_orders").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id").
		Where("customers.is_deleted = ?", false).
		Group("customers.id").
		Order("customers.created_at DESC").
		Find(&listings).Error
	return listings, err
}

// FindByID preloads the customer's order history, newest first, with
// item and product details for the detail view.
func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Orders.Items").
		Preload("Orders.Items.Product").
		First(&customer, "id = ?", id).Error
	return &customer, err
}

func (r *customerRepo) FindByEmail(email string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "email = ?", email).Error
	return &customer, err
}

func (r *customerRepo) SoftDelete(id uuid.UUID) error {
	return r.db.Model(&model.Customer{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
