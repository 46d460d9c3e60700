package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	BaseModel
	Category  string          `gorm:"type:varchar(100);not null;index" json:"category" validate:"required"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Note      string          `json:"note"`
	Timestamp time.Time       `gorm:"not null;index" json:"timestamp"`
}
