package usecase

import (
	"context"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"

	"github.com/google/uuid"
)

// CreateOrderInput is what a client submits to place an order.
type CreateOrderInput struct {
	ProductID        uuid.UUID
	Quantity         int
	DeliveryAddress  string
	DeliveryLocation *entity.Coordinates
	Notes            string
}

// UpdateOrderInput lists the order fields editable after creation. Nil
// fields are left untouched; totals are re-derived on save.
type UpdateOrderInput struct {
	Quantity         *int
	DeliveryAddress  *string
	DeliveryLocation *entity.Coordinates
	Notes            *string
}

// OrderUsecase drives the order lifecycle.
type OrderUsecase interface {
	Create(ctx context.Context, caller policy.Caller, input *CreateOrderInput) (*entity.Order, error)
	List(ctx context.Context, caller policy.Caller) ([]*entity.Order, error)
	Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)

	// AssignCourier attaches an approved courier and marks the order assigned,
	// whatever its current status.
	AssignCourier(ctx context.Context, caller policy.Caller, orderID, courierID uuid.UUID) (*entity.Order, error)

	// UpdateStatus moves the order along its lifecycle. Delivering stamps the
	// delivery time and credits the assigned courier in the same transaction.
	UpdateStatus(ctx context.Context, caller policy.Caller, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
