package repository

import (
	"context"

	"gazexpress/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStationNotFound is returned when no station profile matches.
var ErrStationNotFound = errors.New("station not found")

// StationFilter is a visibility scope over station profiles.
type StationFilter struct {
	OwnerID    *uuid.UUID // only the profile owned by this account
	PublicOnly bool       // approved and active
}

// StationRepository persists station profiles.
type StationRepository interface {
	Create(ctx context.Context, station *entity.StationProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StationProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StationProfile, error)
	List(ctx context.Context, filter StationFilter) ([]*entity.StationProfile, error)
	Update(ctx context.Context, station *entity.StationProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
