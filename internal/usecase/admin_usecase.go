package usecase

import (
	"context"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"

	"github.com/google/uuid"
)

// UpdateAccountInput lists the fields an admin may change on any account.
// Entering the station or courier role resets approval whatever IsApproved says.
type UpdateAccountInput struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Address    *string
	Location   *entity.Coordinates
	Role       *entity.Role
	IsApproved *bool
	IsActive   *bool
}

// AdminUsecase covers account administration and reporting.
type AdminUsecase interface {
	ListAccounts(ctx context.Context, caller policy.Caller, role *entity.Role) ([]*entity.Account, error)
	GetAccount(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Account, error)
	UpdateAccount(ctx context.Context, caller policy.Caller, id uuid.UUID, input *UpdateAccountInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, caller policy.Caller, id uuid.UUID) error

	// SetApproval approves or rejects an account and mirrors the decision onto
	// its profile. Calling it twice with the same value changes nothing.
	SetApproval(ctx context.Context, caller policy.Caller, id uuid.UUID, approved bool) (*entity.Account, error)

	ListPendingApprovals(ctx context.Context, caller policy.Caller) ([]*entity.Account, error)
	Dashboard(ctx context.Context, caller policy.Caller) (*entity.DashboardStats, error)
}
