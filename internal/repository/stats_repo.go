package repository

import (
	"time"

	"go-stockdesk/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Read-side rollups for the dashboard. Every query is independent and
// idempotent; none of them mutate state.

type SalesSummary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalOrders  int64           `json:"totalOrders"`
	RecentSales  []model.Order   `json:"recentSales"`
}

type PurchaseSummary struct {
	TotalPurchaseCost decimal.Decimal `json:"totalPurchaseCost"`
	TotalPurchases    int64           `json:"totalPurchases"`
}

type PopularProduct struct {
	Product model.Product `json:"product"`
	Sold    int64         `json:"sold"`
}

type OrderSummary struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Processed int64 `json:"processed"`
}

type CustomerGrowth struct {
	Total      int64 `json:"total"`
	Last7Days  int64 `json:"last7Days"`
	Last30Days int64 `json:"last30Days"`
}

type ExpenseCategorySum struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type ExpenseSummary struct {
	Total     decimal.Decimal      `json:"total"`
	Breakdown []ExpenseCategorySum `json:"breakdown"`
}

type StatsRepository interface {
	SalesSummary() (*SalesSummary, error)
	PurchaseSummary() (*PurchaseSummary, error)
	PopularProducts(limit int) ([]PopularProduct, error)
	OrderSummary() (*OrderSummary, error)
	CustomerGrowth(now time.Time) (*CustomerGrowth, error)
	ExpenseSummary() (*ExpenseSummary, error)
}

type statsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepository {
	return &statsRepo{db}
}

func (r *statsRepo) SalesSummary() (*SalesSummary, error) {
	var summary SalesSummary

	// COALESCE ensures we get 0 instead of NULL when no orders exist
	if err := r.db.Model(&model.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.TotalRevenue).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Order{}).Count(&summary.TotalOrders).Error; err != nil {
		return nil, err
	}

	if err := r.db.Order("created_at DESC").Limit(5).
		Find(&summary.RecentSales).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}

func (r *statsRepo) PurchaseSummary() (*PurchaseSummary, error) {
	var summary PurchaseSummary

	if err := r.db.Model(&model.Purchase{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&summary.TotalPurchaseCost).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Purchase{}).Count(&summary.TotalPurchases).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}

// PopularProducts ranks products by units sold across all orders.
// Tie order is whatever the database returns.
func (r *statsRepo) PopularProducts(limit int) ([]PopularProduct, error) {
	type soldRow struct {
		ProductID uuid.UUID
		Sold      int64
	}

	var rows []soldRow
	err := r.db.Model(&model.OrderItem{}).
		Select("product_id, SUM(quantity) AS sold").
		Group("product_id").
		Order("sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ProductID
	}

	var products []model.Product
	if len(ids) > 0 {
		// Soft-deleted products stay visible here; they still sold.
		if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
			return nil, err
		}
	}

	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	result := make([]PopularProduct, 0, len(rows))
	for _, row := range rows {
		result = append(result, PopularProduct{Product: byID[row.ProductID], Sold: row.Sold})
	}
	return result, nil
}

func (r *statsRepo) OrderSummary() (*OrderSummary, error) {
	var summary OrderSummary

	if err := r.db.Model(&model.Order{}).Count(&summary.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Order{}).
		Where("status = ?", model.OrderPending).
		Count(&summary.Pending).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Order{}).
		Where("status = ?", model.OrderProcessed).
		Count(&summary.Processed).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}

func (r *statsRepo) CustomerGrowth(now time.Time) (*CustomerGrowth, error) {
	var growth CustomerGrowth

	active := r.db.Model(&model.Customer{}).Where("is_deleted = ?", false)

	if err := active.Session(&gorm.Session{}).Count(&growth.Total).Error; err != nil {
		return nil, err
	}
	if err := active.Session(&gorm.Session{}).
		Where("created_at >= ?", now.AddDate(0, 0, -7)).
		Count(&growth.Last7Days).Error; err != nil {
		return nil, err
	}
	if err := active.Session(&gorm.Session{}).
		Where("created_at >= ?", now.AddDate(0, 0, -30)).
		Count(&growth.Last30Days).Error; err != nil {
		return nil, err
	}

	return &growth, nil
}

func (r *statsRepo) ExpenseSummary() (*ExpenseSummary, error) {
	var summary ExpenseSummary

	if err := r.db.Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.Total).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Expense{}).
		Select("category, SUM(amount) AS amount").
		Group("category").
		Scan(&summary.Breakdown).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}
