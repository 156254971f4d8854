package usecase

import (
	"context"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentInput records a payment for an order. A nil Amount defaults
// to the order's grand total.
type CreatePaymentInput struct {
	OrderID uuid.UUID
	Amount  *decimal.Decimal
	Method  entity.PaymentMethod
}

// PaymentUsecase manages the payment ledger. Payments never change orders.
type PaymentUsecase interface {
	List(ctx context.Context, caller policy.Caller) ([]*entity.Payment, error)
	Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Payment, error)
	Create(ctx context.Context, caller policy.Caller, input *CreatePaymentInput) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, caller policy.Caller, id uuid.UUID, status entity.PaymentStatus) (*entity.Payment, error)
}
