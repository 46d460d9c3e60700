package service

import (
	"testing"
	"time"

	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesSummary_AggregatesRevenueAndRecent(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepo(db))
	orders := newOrderService(db)

	coffee := seedProduct(t, db, "CF-01", "Coffee", "4.50", 100)
	buyer := seedCustomer(t, db, "Ada", "ada@example.com")

	for _, qty := range []int{2, 3} {
		id := buyer.ID
		_, err := orders.CreateOrder(&CreateOrderRequest{
			CustomerID: &id,
			Items:      []OrderItemInput{{ProductID: coffee.ID, Quantity: qty}},
		})
		require.NoError(t, err)
	}

	summary, err := stats.SalesSummary()
	require.NoError(t, err)

	// 2*4.50 + 3*4.50 = 22.50
	assert.True(t, summary.TotalRevenue.Equal(mustDecimal(t, "22.50")), "got %s", summary.TotalRevenue)
	assert.EqualValues(t, 2, summary.TotalOrders)
	assert.Len(t, summary.RecentSales, 2)
}

func TestSalesSummary_EmptyDatabaseIsZero(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepo(db))

	summary, err := stats.SalesSummary()
	require.NoError(t, err)
	assert.True(t, summary.TotalRevenue.IsZero())
	assert.EqualValues(t, 0, summary.TotalOrders)
	assert.Empty(t, summary.RecentSales)
}

func TestPurchaseSummary_SumsLedgerCost(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepo(db))
	purchases := NewPurchaseService(repository.NewPurchaseRepo(db), repository.NewProductRepo(db), db, nil)

	coffee := seedProduct(t, db, "CF-01", "Coffee", "4.50", 10)

	_, err := purchases.CreatePurchase(&CreatePurchaseRequest{
		ProductID: coffee.ID, Quantity: 5, UnitCost: mustDecimal(t, "2.00"),
	})
	require.NoError(t, err)
	_, err = purchases.CreatePurchase(&CreatePurchaseRequest{
		ProductID: coffee.ID, Quantity: 4, UnitCost: mustDecimal(t, "2.50"),
	})
	require.NoError(t, err)

	summary, err := stats.PurchaseSummary()
	require.NoError(t, err)

	// 5*2.00 + 4*2.50 = 20.00
	assert.True(t, summary.TotalPurchaseCost.Equal(mustDecimal(t, "20.00")), "got %s", summary.TotalPurchaseCost)
	assert.EqualValues(t, 2, summary.TotalPurchases)
}

func TestPopularProducts_RanksByUnitsSold(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepo(db))
	orders := newOrderService(db)

	coffee := seedProduct(t, db, "CF-01", "Coffee", "4.50", 100)
	beans := seedProduct(t, db, "BN-01", "Beans", "12.00", 100)
	buyer := seedCustomer(t, db, "Ada", "ada@example.com")

	id := buyer.ID
	_, err := orders.CreateOrder(&CreateOrderRequest{
		CustomerID: &id,
		Items: []OrderItemInput{
			{ProductID: coffee.ID, Quantity: 2},
			{ProductID: beans.ID, Quantity: 7},
		},
	})
	require.NoError(t, err)
	_, err = orders.CreateOrder(&CreateOrderRequest{
		CustomerID: &id,
		Items:      []OrderItemInput{{ProductID: coffee.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	popular, err := stats.PopularProducts()
	require.NoError(t, err)
	require.Len(t, popular, 2)

	assert.Equal(t, beans.ID, popular[0].Product.ID)
	assert.EqualValues(t, 7, popular[0].Sold)
	assert.Equal(t, coffee.ID, popular[1].Product.ID)
	assert.EqualValues(t, 5, popular[1].Sold)
}

func TestPopularProducts_IncludesSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepo(db))
	orders := newOrderService(db)
	products := NewProductService(repository.NewProductRepo(db), nil)

	coffee := seedProduct(t, db, "CF-01", "Coffee", "4.50", 100)

	_, err := orders.CreateOrder(&CreateOrderRequest{
		Customer: &CustomerInput{Name: "Ada", Email: "ada@example.com"},
		Items:    []OrderItemInput{{ProductID: coffee.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	require.NoError(t, products.DeleteProduct(coffee.ID))

	popular, err := stats.PopularProducts()
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, coffee.ID, popular[0].Product.ID)
	assert.Equal(t, "Coffee", popular[0].Product.Name)
	assert.EqualValues(t, 4, popular[0].Sold)
}

func TestOrderSummary_CountsByStatus(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepo(db))
	orders := newOrderService(db)

	coffee := seedProduct(t, db, "CF-01", "Coffee", "4.50", 100)
	buyer := seedCustomer(t, db, "Ada", "ada@example.com")

	var first *model.Order
	for i := 0; i < 3; i++ {
		id := buyer.ID
		o, err := orders.CreateOrder(&CreateOrderRequest{
			CustomerID: &id,
			Items:      []OrderItemInput{{ProductID: coffee.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		if first == nil {
			first = o
		}
	}
	_, err := orders.ProcessOrder(first.ID)
	require.NoError(t, err)

	summary, err := stats.OrderSummary()
	require.NoError(t, err)
	assert.EqualValues(t, 3, summary.Total)
	assert.EqualValues(t, 2, summary.Pending)
	assert.EqualValues(t, 1, summary.Processed)
}

func TestCustomerGrowth_WindowsAndSoftDelete(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepo(db))

	now := time.Now()

	seedCustomer(t, db, "Fresh", "fresh@example.com")

	mid := seedCustomer(t, db, "Mid", "mid@example.com")
	require.NoError(t, db.Model(&model.Customer{}).Where("id = ?", mid.ID).
		Update("created_at", now.AddDate(0, 0, -14)).Error)

	old := seedCustomer(t, db, "Old", "old@example.com")
	require.NoError(t, db.Model(&model.Customer{}).Where("id = ?", old.ID).
		Update("created_at", now.AddDate(0, 0, -60)).Error)

	gone := seedCustomer(t, db, "Gone", "gone@example.com")
	require.NoError(t, db.Model(&model.Customer{}).Where("id = ?", gone.ID).
		Update("is_deleted", true).Error)

	growth, err := stats.CustomerGrowth()
	require.NoError(t, err)
	assert.EqualValues(t, 3, growth.Total)
	assert.EqualValues(t, 1, growth.Last7Days)
	assert.EqualValues(t, 2, growth.Last30Days)
}

func TestExpenseSummary_TotalsAndCategoryBreakdown(t *testing.T) {
	db := newTestDB(t)
	stats := NewStatsService(repository.NewStatsRepo(db))

	for _, e := range []model.Expense{
		{Category: "Rent", Amount: mustDecimal(t, "800.00"), Timestamp: time.Now()},
		{Category: "Utilities", Amount: mustDecimal(t, "120.50"), Timestamp: time.Now()},
		{Category: "Utilities", Amount: mustDecimal(t, "79.50"), Timestamp: time.Now()},
	} {
		expense := e
		require.NoError(t, db.Create(&expense).Error)
	}

	summary, err := stats.ExpenseSummary()
	require.NoError(t, err)
	assert.True(t, summary.Total.Equal(mustDecimal(t, "1000.00")), "got %s", summary.Total)

	byCategory := make(map[string]string, len(summary.Breakdown))
	for _, row := range summary.Breakdown {
		byCategory[row.Category] = row.Amount.String()
	}
	require.Len(t, byCategory, 2)
	assert.True(t, mustDecimal(t, byCategory["Rent"]).Equal(mustDecimal(t, "800.00")))
	assert.True(t, mustDecimal(t, byCategory["Utilities"]).Equal(mustDecimal(t, "200.00")))
}
