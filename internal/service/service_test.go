package service

import (
	"testing"

	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database. One
// connection only, so every query sees the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
		&model.Purchase{},
		&model.Expense{},
		&model.User{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, sku, name string, price string, stock int) *model.Product {
	t.Helper()

	p := &model.Product{
		SKU:           sku,
		Name:          name,
		Price:         mustDecimal(t, price),
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) *model.Customer {
	t.Helper()

	c := &model.Customer{Name: name, Email: email}
	require.NoError(t, db.Create(c).Error)
	return c
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func currentStock(t *testing.T, db *gorm.DB, p *model.Product) int {
	t.Helper()

	repo := repository.NewProductRepo(db)
	fresh, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	return fresh.StockQuantity
}
