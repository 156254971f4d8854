package usecase

import (
	"context"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ZoneInput carries the editable zone fields. Nil fields are left untouched on update.
type ZoneInput struct {
	Name           *string
	DeliveryFee    *decimal.Decimal
	EstimatedDelay *string
	IsActive       *bool
}

// ZoneUsecase manages delivery zones.
type ZoneUsecase interface {
	List(ctx context.Context, caller policy.Caller) ([]*entity.Zone, error)
	Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Zone, error)
	Create(ctx context.Context, caller policy.Caller, input *ZoneInput) (*entity.Zone, error)
	Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *ZoneInput) (*entity.Zone, error)
	Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error
}
