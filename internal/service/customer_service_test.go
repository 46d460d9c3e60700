package service

import (
	"testing"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerList_CountsOrdersAndHidesDeleted(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerService(repository.NewCustomerRepo(db))
	orders := newOrderService(db)

	product := seedProduct(t, db, "CF-01", "Coffee", "4.50", 50)
	buyer := seedCustomer(t, db, "Ada", "ada@example.com")
	ghost := seedCustomer(t, db, "Ghost", "ghost@example.com")

	for i := 0; i < 3; i++ {
		id := buyer.ID
		_, err := orders.CreateOrder(&CreateOrderRequest{
			CustomerID: &id,
			Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	require.NoError(t, customers.DeleteCustomer(ghost.ID))

	listed, err := customers.GetAllCustomers()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, buyer.ID, listed[0].ID)
	assert.EqualValues(t, 3, listed[0].TotalOrders)
}

func TestGetCustomer_IncludesOrderHistory(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerService(repository.NewCustomerRepo(db))
	orders := newOrderService(db)

	product := seedProduct(t, db, "CF-01", "Coffee", "4.50", 50)

	created, err := orders.CreateOrder(&CreateOrderRequest{
		Customer: &CustomerInput{Name: "Ada", Email: "ada@example.com"},
		Items:    []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	fetched, err := customers.GetCustomerByID(created.CustomerID)
	require.NoError(t, err)
	require.Len(t, fetched.Orders, 1)
	require.Len(t, fetched.Orders[0].Items, 1)
	assert.Equal(t, product.ID, fetched.Orders[0].Items[0].ProductID)
	require.NotNil(t, fetched.Orders[0].Items[0].Product)
	assert.Equal(t, "Coffee", fetched.Orders[0].Items[0].Product.Name)
}

func TestGetCustomer_SoftDeletedNotFound(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerService(repository.NewCustomerRepo(db))

	c := seedCustomer(t, db, "Ada", "ada@example.com")
	require.NoError(t, customers.DeleteCustomer(c.ID))

	_, err := customers.GetCustomerByID(c.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
