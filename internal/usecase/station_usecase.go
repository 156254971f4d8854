package usecase

import (
	"context"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"

	"github.com/google/uuid"
)

// StationInput carries the editable station profile fields. Nil fields are
// left untouched on update; Name is required on create.
type StationInput struct {
	Name         *string
	Address      *string
	Phone        *string
	Email        *string
	OpeningHours *string
	Location     *entity.Coordinates
}

// StationUsecase manages station profiles.
type StationUsecase interface {
	List(ctx context.Context, caller policy.Caller) ([]*entity.StationProfile, error)
	Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.StationProfile, error)
	Create(ctx context.Context, caller policy.Caller, input *StationInput) (*entity.StationProfile, error)
	Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *StationInput) (*entity.StationProfile, error)
	Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error
	Approve(ctx context.Context, caller policy.Caller, id uuid.UUID, approved bool) (*entity.StationProfile, error)
}
