package model

type Customer struct {
	BaseModel
	Name      string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Phone     string `gorm:"type:varchar(30)" json:"phone"`
	Address   string `json:"address"`
	IsDeleted bool   `gorm:"default:false;index" json:"isDeleted"`

	Orders []Order `json:"orders,omitempty"`
}
