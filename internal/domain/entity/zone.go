package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Zone holds a flat delivery fee and a textual delay estimate.
type Zone struct {
	ID             uuid.UUID
	Name           string
	DeliveryFee    decimal.Decimal
	EstimatedDelay string
	IsActive       bool
	CreatedAt      time.Time
}
