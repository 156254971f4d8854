// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"gazexpress/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAccountNotFound is returned when no account matches.
var ErrAccountNotFound = errors.New("account not found")

// AccountFilter narrows account listings. Zero value lists everything.
type AccountFilter struct {
	Role        *entity.Role
	PendingOnly bool // station and courier accounts that are not approved yet
}

// AccountRepository persists accounts together with their role profiles.
type AccountRepository interface {
	// Create inserts the account and any profile attached to it.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID loads an account with its profiles.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// List returns accounts ordered by creation time, newest first.
	List(ctx context.Context, filter AccountFilter) ([]*entity.Account, error)

	// Update saves account fields and attached profiles. The approval reset on
	// a role change is enforced against the stored role.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account; profiles cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
