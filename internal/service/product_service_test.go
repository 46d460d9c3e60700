package service

import (
	"testing"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) ProductService {
	return NewProductService(repository.NewProductRepo(db), nil)
}

func TestCreateProduct_DuplicateSKUConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	_, err := svc.CreateProduct(&ProductInput{
		SKU:   "CF-01",
		Name:  "Coffee",
		Price: mustDecimal(t, "4.50"),
	})
	require.NoError(t, err)

	_, err = svc.CreateProduct(&ProductInput{
		SKU:   "CF-01",
		Name:  "Another Coffee",
		Price: mustDecimal(t, "5.00"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestProductSoftDelete_HiddenFromListFetchableByID(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	kept := seedProduct(t, db, "CF-01", "Coffee", "4.50", 10)
	gone := seedProduct(t, db, "BN-01", "Beans", "12.00", 5)

	require.NoError(t, svc.DeleteProduct(gone.ID))

	listed, err := svc.GetAllProducts("")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, kept.ID, listed[0].ID)

	// Historical references still resolve by direct id.
	fetched, err := svc.GetProductByID(gone.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsDeleted)

	// But a second delete reports not found.
	err = svc.DeleteProduct(gone.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestGetAllProducts_SearchFiltersByName(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	seedProduct(t, db, "CF-01", "Coffee", "4.50", 10)
	seedProduct(t, db, "BN-01", "Beans", "12.00", 5)

	found, err := svc.GetAllProducts("off")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Coffee", found[0].Name)
}

func TestUpdateProduct_ChangesFieldsAndGuardsSKU(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	first := seedProduct(t, db, "CF-01", "Coffee", "4.50", 10)
	seedProduct(t, db, "BN-01", "Beans", "12.00", 5)

	updated, err := svc.UpdateProduct(first.ID, &ProductInput{
		SKU:           "CF-02",
		Name:          "Coffee Deluxe",
		Price:         mustDecimal(t, "5.25"),
		StockQuantity: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "CF-02", updated.SKU)
	assert.Equal(t, "Coffee Deluxe", updated.Name)
	assert.Equal(t, 12, updated.StockQuantity)

	_, err = svc.UpdateProduct(first.ID, &ProductInput{
		SKU:   "BN-01", // taken
		Name:  "Coffee Deluxe",
		Price: mustDecimal(t, "5.25"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}
