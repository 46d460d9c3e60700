package service

import (
	"time"

	"go-stockdesk/internal/repository"
)

const popularProductLimit = 5

type StatsService interface {
	SalesSummary() (*repository.SalesSummary, error)
	PurchaseSummary() (*repository.PurchaseSummary, error)
	PopularProducts() ([]repository.PopularProduct, error)
	OrderSummary() (*repository.OrderSummary, error)
	CustomerGrowth() (*repository.CustomerGrowth, error)
	ExpenseSummary() (*repository.ExpenseSummary, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) SalesSummary() (*repository.SalesSummary, error) {
	return s.statsRepo.SalesSummary()
}

func (s *statsService) PurchaseSummary() (*repository.PurchaseSummary, error) {
	return s.statsRepo.PurchaseSummary()
}

func (s *statsService) PopularProducts() ([]repository.PopularProduct, error) {
	return s.statsRepo.PopularProducts(popularProductLimit)
}

func (s *statsService) OrderSummary() (*repository.OrderSummary, error) {
	return s.statsRepo.OrderSummary()
}

func (s *statsService) CustomerGrowth() (*repository.CustomerGrowth, error) {
	return s.statsRepo.CustomerGrowth(time.Now())
}

func (s *statsService) ExpenseSummary() (*repository.ExpenseSummary, error) {
	return s.statsRepo.ExpenseSummary()
}
