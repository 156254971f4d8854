package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType is the bottle size category.
type ProductType string

const (
	ProductType6Kg   ProductType = "6kg"
	ProductType12Kg  ProductType = "12kg"
	ProductType15Kg  ProductType = "15kg"
	ProductTypeOther ProductType = "autre"
)

var productTypes = [...]ProductType{ProductType6Kg, ProductType12Kg, ProductType15Kg, ProductTypeOther}

// IsValid checks if the type is known.
func (t ProductType) IsValid() bool {
	for _, v := range productTypes {
		if t == v {
			return true
		}
	}

	return false
}

// Product is a gas bottle offered by one station.
type Product struct {
	ID          uuid.UUID
	StationID   uuid.UUID
	Station     *StationProfile // Loaded for listings, may be nil.
	TradeName   string
	Type        ProductType
	Brand       string
	Price       decimal.Decimal
	Stock       int
	Description string
	ProductCode string
	Available   bool
	CreatedAt   time.Time
}
