package service

import (
	"errors"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"
	"go-stockdesk/internal/ws"
	"go-stockdesk/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type CustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CreateOrderRequest struct {
	CustomerID *uuid.UUID       `json:"customerId"`
	Customer   *CustomerInput   `json:"customer"`
	Items      []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type OrderService interface {
	CreateOrder(req *CreateOrderRequest) (*model.Order, error)
	ProcessOrder(id uuid.UUID) (*model.Order, error)
	GetAllOrders() ([]model.Order, error)
	GetOrderByID(id uuid.UUID) (*model.Order, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewOrderService(oRepo repository.OrderRepository, pRepo repository.ProductRepository, cRepo repository.CustomerRepository, db *gorm.DB, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo:    oRepo,
		productRepo:  pRepo,
		customerRepo: cRepo,
		db:           db,
		wsHub:        hub,
	}
}

// CreateOrder validates stock, snapshots prices, and persists the
// order with its items in one transaction. Stock is deducted via
// conditional decrements, so the whole operation rolls back when any
// line cannot be covered.
func (s *orderService) CreateOrder(req *CreateOrderRequest) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.Validation,
			"validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	customer, err := s.resolveCustomer(req)
	if err != nil {
		return nil, err
	}

	var order *model.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		ids := make([]uuid.UUID, len(req.Items))
		for i, item := range req.Items {
			ids[i] = item.ProductID
		}

		products, err := s.productRepo.FindByIDs(tx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]model.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		orderTotal := decimal.Zero
		items := make([]model.OrderItem, 0, len(req.Items))

		for _, item := range req.Items {
			product, ok := byID[item.ProductID]
			if !ok || product.IsDeleted {
				return apperr.New(apperr.NotFound, "product %s not found", item.ProductID)
			}

			decremented, err := s.productRepo.DecrementStock(tx, product.ID, item.Quantity)
			if err != nil {
				return err
			}
			if !decremented {
				return apperr.New(apperr.Validation, "not enough stock for product: %s", product.Name)
			}

			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			orderTotal = orderTotal.Add(lineTotal)

			items = append(items, model.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				Total:     lineTotal,
			})
		}

		order = &model.Order{
			CustomerID:    customer.ID,
			Status:        model.OrderPending,
			PaymentStatus: model.PaymentUnpaid,
			Total:         orderTotal,
			Items:         items,
		}
		return s.orderRepo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	order.Customer = customer
	s.wsHub.Publish("order_created", orderEventPayload(order))

	return order, nil
}

// ProcessOrder flips a Pending order to Processed. Stock was already
// deducted when the order was created, so no further mutation happens
// here.
func (s *orderService) ProcessOrder(id uuid.UUID) (*model.Order, error) {
	var order *model.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		found, err := s.orderRepo.FindByIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "order not found")
			}
			return err
		}

		if found.Status != model.OrderPending {
			return apperr.New(apperr.Validation, "order already processed")
		}

		// Conditional transition: even if the read above raced another
		// processor, only one of them flips the row.
		transitioned, err := s.orderRepo.TransitionStatus(tx, found.ID, model.OrderPending, model.OrderProcessed)
		if err != nil {
			return err
		}
		if !transitioned {
			return apperr.New(apperr.Validation, "order already processed")
		}
		found.Status = model.OrderProcessed
		order = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish("order_processed", orderEventPayload(order))
	return order, nil
}

func (s *orderService) GetAllOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrderByID(id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, err
	}
	return order, nil
}

// resolveCustomer implements find-or-create by unique email. When the
// email already exists the stored record wins and inline fields are
// ignored.
func (s *orderService) resolveCustomer(req *CreateOrderRequest) (*model.Customer, error) {
	if req.CustomerID != nil {
		customer, err := s.customerRepo.FindByID(*req.CustomerID)
		if err != nil {
			return nil, apperr.New(apperr.NotFound, "customer not found")
		}
		return customer, nil
	}

	if req.Customer == nil {
		return nil, apperr.New(apperr.Validation, "customer or customerId is required")
	}
	if errs := validator.ValidateStruct(req.Customer); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.Validation,
			"validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	existing, err := s.customerRepo.FindByEmail(req.Customer.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer := &model.Customer{
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// orderEventPayload trims the payload pushed over the websocket feed.
func orderEventPayload(order *model.Order) map[string]interface{} {
	payload := map[string]interface{}{
		"id":     order.ID,
		"status": order.Status,
		"total":  order.Total,
	}
	items := make([]map[string]interface{}, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, map[string]interface{}{
			"productId": item.ProductID,
			"quantity":  item.Quantity,
		})
	}
	payload["items"] = items
	return payload
}
