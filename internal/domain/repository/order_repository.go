package repository

import (
	"context"

	"gazexpress/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when no order matches.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter is a visibility scope over orders. None yields an empty result.
type OrderFilter struct {
	None      bool
	ClientID  *uuid.UUID
	StationID *uuid.UUID
	CourierID *uuid.UUID
}

// OrderRepository persists orders. Create and Update re-derive both totals
// from the product's current price read through the same handle. Orders are
// never deleted directly; they go with their client, station or product.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
}
