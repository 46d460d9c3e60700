package repository

import (
	"go-stockdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll() ([]model.Expense, error)
	FindByID(id uuid.UUID) (*model.Expense, error)
	Delete(id uuid.UUID) error
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll() ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.Order("timestamp DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByID(id uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.First(&expense, "id = ?", id).Error
	return &expense, err
}

func (r *expenseRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Expense{}, "id = ?", id).Error
}
