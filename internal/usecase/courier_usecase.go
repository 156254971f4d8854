package usecase

import (
	"context"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"

	"github.com/google/uuid"
)

// CourierInput carries the editable courier profile fields. Nil fields are
// left untouched on update; Vehicle and Plate are required on create.
type CourierInput struct {
	Vehicle     *string
	Plate       *string
	ZoneID      *uuid.UUID
	IsAvailable *bool
}

// CourierUsecase manages courier profiles.
type CourierUsecase interface {
	List(ctx context.Context, caller policy.Caller) ([]*entity.CourierProfile, error)
	ListAvailable(ctx context.Context, caller policy.Caller) ([]*entity.CourierProfile, error)
	Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.CourierProfile, error)
	Create(ctx context.Context, caller policy.Caller, input *CourierInput) (*entity.CourierProfile, error)
	Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *CourierInput) (*entity.CourierProfile, error)
	Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error
	Approve(ctx context.Context, caller policy.Caller, id uuid.UUID, approved bool) (*entity.CourierProfile, error)
}
