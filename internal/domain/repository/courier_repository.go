package repository

import (
	"context"

	"gazexpress/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCourierNotFound is returned when no courier profile matches.
var ErrCourierNotFound = errors.New("courier not found")

// CourierFilter is a visibility scope over courier profiles.
type CourierFilter struct {
	OwnerID       *uuid.UUID
	ApprovedOnly  bool
	AvailableOnly bool
}

// CourierRepository persists courier profiles.
type CourierRepository interface {
	Create(ctx context.Context, courier *entity.CourierProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CourierProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CourierProfile, error)
	List(ctx context.Context, filter CourierFilter) ([]*entity.CourierProfile, error)
	Update(ctx context.Context, courier *entity.CourierProfile) error
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementDeliveredCount adds one to the courier's delivered count in place.
	IncrementDeliveredCount(ctx context.Context, id uuid.UUID) error
}
