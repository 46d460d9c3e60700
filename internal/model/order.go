package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderProcessed OrderStatus = "Processed"
	// Cancelled exists in historical data but no transition produces it yet.
	OrderCancelled OrderStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Order struct {
	BaseModel
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"customerId"`
	Customer      *Customer       `json:"customer,omitempty" validate:"-"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'unpaid'" json:"paymentStatus"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem snapshots the product price at order time. Rows are
// immutable once created.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"orderId"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"productId"`
	Product   *Product        `json:"product,omitempty" validate:"-"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
}
