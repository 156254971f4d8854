package repository

import (
	"context"

	"gazexpress/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrZoneNotFound is returned when no zone matches.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneRepository persists delivery zones.
type ZoneRepository interface {
	Create(ctx context.Context, zone *entity.Zone) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error)
	List(ctx context.Context) ([]*entity.Zone, error)
	Update(ctx context.Context, zone *entity.Zone) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FirstActive returns the oldest active zone, or ErrZoneNotFound.
	FirstActive(ctx context.Context) (*entity.Zone, error)
}
