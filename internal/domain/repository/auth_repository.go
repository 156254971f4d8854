package repository

import (
	"context"

	"gazexpress/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAuthNotFound is returned when no credential matches.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository persists login credentials.
type AuthRepository interface {
	// CreateAuthentication stores a new credential for an account.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication looks a credential up by provider and provider user id.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}
