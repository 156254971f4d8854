package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CourierProfile is the delivery side of a courier account.
type CourierProfile struct {
	ID             uuid.UUID
	UserID         uuid.UUID // Owning account.
	Account        *Account  // Loaded for listings, may be nil.
	Vehicle        string
	Plate          string
	ZoneID         *uuid.UUID
	Zone           *Zone
	IsAvailable    bool
	IsApproved     bool
	AverageRating  decimal.Decimal
	DeliveredCount int
}

// OwnerAccountID returns the owning account.
func (c *CourierProfile) OwnerAccountID() uuid.UUID {
	return c.UserID
}
