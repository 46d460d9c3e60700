package service

import (
	"testing"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPurchaseService(db *gorm.DB) PurchaseService {
	return NewPurchaseService(
		repository.NewPurchaseRepo(db),
		repository.NewProductRepo(db),
		db,
		nil,
	)
}

func TestCreatePurchase_ComputesTotalAndIncrementsStock(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)

	product := seedProduct(t, db, "CF-01", "Coffee", "4.50", 10)

	purchase, err := svc.CreatePurchase(&CreatePurchaseRequest{
		ProductID: product.ID,
		Quantity:  7,
		UnitCost:  mustDecimal(t, "2.50"),
		Note:      "restock",
	})
	require.NoError(t, err)

	assert.True(t, purchase.TotalCost.Equal(mustDecimal(t, "17.50")))
	assert.False(t, purchase.Timestamp.IsZero())
	assert.Equal(t, 17, currentStock(t, db, product))
}

func TestCreatePurchase_ProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)

	_, err := svc.CreatePurchase(&CreatePurchaseRequest{
		ProductID: uuid.New(),
		Quantity:  1,
		UnitCost:  mustDecimal(t, "1"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&model.Purchase{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreatePurchase_NegativeUnitCostRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)

	product := seedProduct(t, db, "CF-01", "Coffee", "4.50", 10)

	_, err := svc.CreatePurchase(&CreatePurchaseRequest{
		ProductID: product.ID,
		Quantity:  1,
		UnitCost:  mustDecimal(t, "-1"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestPurchaseRoundTrip_DeleteReversesIncrement(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)

	product := seedProduct(t, db, "CF-01", "Coffee", "4.50", 10)

	purchase, err := svc.CreatePurchase(&CreatePurchaseRequest{
		ProductID: product.ID,
		Quantity:  5,
		UnitCost:  mustDecimal(t, "2"),
	})
	require.NoError(t, err)
	require.Equal(t, 15, currentStock(t, db, product))

	require.NoError(t, svc.DeletePurchase(purchase.ID))
	assert.Equal(t, 10, currentStock(t, db, product))

	var count int64
	require.NoError(t, db.Model(&model.Purchase{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeletePurchase_RejectedWhenItWouldOverdraw(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)

	product := seedProduct(t, db, "CF-01", "Coffee", "4.50", 0)

	purchase, err := svc.CreatePurchase(&CreatePurchaseRequest{
		ProductID: product.ID,
		Quantity:  5,
		UnitCost:  mustDecimal(t, "2"),
	})
	require.NoError(t, err)

	// Part of the purchased stock has since been sold.
	require.NoError(t, db.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Update("stock_quantity", 3).Error)

	err = svc.DeletePurchase(purchase.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// Rejected reversal leaves both the ledger row and the stock alone.
	assert.Equal(t, 3, currentStock(t, db, product))
	var count int64
	require.NoError(t, db.Model(&model.Purchase{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeletePurchase_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newPurchaseService(db)

	err := svc.DeletePurchase(uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
