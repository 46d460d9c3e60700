package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	SKU           string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description   string          `json:"description"`
	Category      string          `gorm:"type:varchar(100)" json:"category"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	StockQuantity int             `gorm:"default:0" json:"stockQuantity"`
	ImageURL      string          `json:"imageUrl"`
	IsDeleted     bool            `gorm:"default:false;index" json:"isDeleted"`
}
