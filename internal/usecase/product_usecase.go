package usecase

import (
	"context"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductQuery holds the optional catalog filters.
type ProductQuery struct {
	Type  *entity.ProductType
	Brand string
}

// ProductInput carries the editable product fields. The owning station is
// always the caller's. Nil fields are left untouched on update.
type ProductInput struct {
	TradeName   *string
	Type        *entity.ProductType
	Brand       *string
	Price       *decimal.Decimal
	Stock       *int
	Description *string
	ProductCode *string
	Available   *bool
}

// ProductUsecase manages the bottle catalog.
type ProductUsecase interface {
	List(ctx context.Context, caller policy.Caller, query ProductQuery) ([]*entity.Product, error)
	Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, caller policy.Caller, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error
}
