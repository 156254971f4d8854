package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ZoneModel mirrors the 'zones' table.
type ZoneModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string          `gorm:"type:varchar(100);not null"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	EstimatedDelay string          `gorm:"type:varchar(50)"`
	IsActive       bool            `gorm:"not null"`
	CreatedAt      time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "zones"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StationID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Station     *StationProfileModel `gorm:"foreignKey:StationID;constraint:OnDelete:CASCADE"`
	TradeName   string               `gorm:"type:varchar(200);not null"`
	Type        string               `gorm:"type:varchar(10);not null;index"`
	Brand       string               `gorm:"type:varchar(100)"`
	Price       decimal.Decimal      `gorm:"type:numeric(10,2);not null"`
	Stock       int                  `gorm:"not null"`
	Description string               `gorm:"type:text"`
	ProductCode string               `gorm:"type:varchar(50)"`
	Available   bool                 `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
