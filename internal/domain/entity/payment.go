package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how the client pays.
type PaymentMethod string

const (
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
	PaymentMethodCard        PaymentMethod = "carte"
	PaymentMethodCash        PaymentMethod = "especes"
)

// IsValid checks if the method is known.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodMobileMoney, PaymentMethodCard, PaymentMethodCash:
		return true
	default:
		return false
	}
}

// PaymentStatus is independent from the order status.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "en_attente"
	PaymentStatusConfirmed PaymentStatus = "confirme"
	PaymentStatusFailed    PaymentStatus = "echoue"
	PaymentStatusRefunded  PaymentStatus = "rembourse"
)

// IsValid checks if the status is known.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusConfirmed, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Payment records how an order was (or will be) paid. There is at most one per order.
type Payment struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Amount    decimal.Decimal
	Method    PaymentMethod
	Status    PaymentStatus
	Reference string
	CreatedAt time.Time
}

// NewPaymentReference returns "PAY-" followed by eight uppercase hex characters.
func NewPaymentReference() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")

	return "PAY-" + strings.ToUpper(hex[:8])
}
