package service

import (
	"errors"
	"time"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"
	"go-stockdesk/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateExpenseRequest struct {
	Category  string          `json:"category" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	Timestamp string          `json:"timestamp" validate:"required"`
}

type ExpenseService interface {
	CreateExpense(req *CreateExpenseRequest) (*model.Expense, error)
	DeleteExpense(id uuid.UUID) error
	GetAllExpenses() ([]model.Expense, error)
	GetExpenseByID(id uuid.UUID) (*model.Expense, error)
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(eRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: eRepo}
}

func (s *expenseService) CreateExpense(req *CreateExpenseRequest) (*model.Expense, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.Validation,
			"validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.New(apperr.Validation, "amount must be greater than zero")
	}

	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "invalid date format for timestamp")
	}

	expense := &model.Expense{
		Category:  req.Category,
		Amount:    req.Amount,
		Note:      req.Note,
		Timestamp: ts,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(id uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "expense not found")
		}
		return err
	}
	return s.expenseRepo.Delete(id)
}

func (s *expenseService) GetAllExpenses() ([]model.Expense, error) {
	return s.expenseRepo.FindAll()
}

func (s *expenseService) GetExpenseByID(id uuid.UUID) (*model.Expense, error) {
	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "expense not found")
		}
		return nil, err
	}
	return expense, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", value)
}
