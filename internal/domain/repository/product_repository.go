package repository

import (
	"context"

	"gazexpress/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when no product matches.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter is a visibility scope plus the catalog query filters.
type ProductFilter struct {
	StationID  *uuid.UUID
	PublicOnly bool // available, from an approved station
	Type       *entity.ProductType
	Brand      string // case-insensitive substring
}

// ProductRepository persists the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
