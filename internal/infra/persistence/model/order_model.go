package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientID          uuid.UUID            `gorm:"type:uuid;not null;index"`
	Client            *UserModel           `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	ProductID         uuid.UUID            `gorm:"type:uuid;not null;index"`
	Product           *ProductModel        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	StationID         uuid.UUID            `gorm:"type:uuid;not null;index"`
	Station           *StationProfileModel `gorm:"foreignKey:StationID;constraint:OnDelete:CASCADE"`
	CourierID         *uuid.UUID           `gorm:"type:uuid;index"`
	Courier           *CourierProfileModel `gorm:"foreignKey:CourierID;constraint:OnDelete:SET NULL"`
	Quantity          int                  `gorm:"not null"`
	LineTotal         decimal.Decimal      `gorm:"type:numeric(10,2);not null"`
	DeliveryFee       decimal.Decimal      `gorm:"type:numeric(10,2);not null"`
	GrandTotal        decimal.Decimal      `gorm:"type:numeric(10,2);not null"`
	DeliveryAddress   string               `gorm:"type:text;not null"`
	DeliveryLatitude  *float64             `gorm:"type:numeric(10,8)"`
	DeliveryLongitude *float64             `gorm:"type:numeric(11,8)"`
	Status            string               `gorm:"type:varchar(20);not null;index"`
	Notes             string               `gorm:"type:text"`
	CreatedAt         time.Time            `gorm:"index"`
	DeliveredAt       *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Order     *OrderModel     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Method    string          `gorm:"type:varchar(20);not null"`
	Status    string          `gorm:"type:varchar(20);not null"`
	Reference string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&ZoneModel{},
		&StationProfileModel{},
		&CourierProfileModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&ProductModel{},
		&OrderModel{},
		&PaymentModel{},
	}
}
