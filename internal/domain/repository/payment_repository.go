package repository

import (
	"context"

	"gazexpress/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPaymentNotFound is returned when no payment matches.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentFilter is a visibility scope over payments. None yields an empty result.
type PaymentFilter struct {
	None     bool
	ClientID *uuid.UUID // payments of orders placed by this account
}

// PaymentRepository persists payments, one per order.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
}
