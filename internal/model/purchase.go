package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is a stock-increasing ledger entry. Deleting one reverses
// the increment.
type Purchase struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"productId" validate:"uuid_required"`
	Product   *Product        `json:"product,omitempty" validate:"-"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitCost"`
	TotalCost decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalCost"`
	Note      string          `json:"note"`
	Timestamp time.Time       `gorm:"not null;index" json:"timestamp"`
}
