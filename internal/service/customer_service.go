package service

import (
	"errors"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerService interface {
	GetAllCustomers() ([]repository.CustomerListing, error)
	GetCustomerByID(id uuid.UUID) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(cRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: cRepo}
}

func (s *customerService) GetAllCustomers() ([]repository.CustomerListing, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) GetCustomerByID(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "customer not found")
		}
		return nil, err
	}
	if customer.IsDeleted {
		return nil, apperr.New(apperr.NotFound, "customer not found")
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "customer not found")
		}
		return err
	}
	if customer.IsDeleted {
		return apperr.New(apperr.NotFound, "customer not found")
	}
	return s.customerRepo.SoftDelete(id)
}
