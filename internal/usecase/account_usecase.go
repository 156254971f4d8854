// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account. Station and
// courier fields are only read for their role.
type RegisterInput struct {
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	Phone           string
	Role            entity.Role
	Address         string
	Location        *entity.Coordinates

	StationName         string
	StationAddress      string
	StationPhone        string
	StationOpeningHours string

	Vehicle string
	Plate   string
	ZoneID  *uuid.UUID
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string
}

// UpdateProfileInput lists the fields an account may change on itself.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	Location  *entity.Coordinates
}

// --- Output DTOs ---

// RegisterOutput returns the new account and the message shown to the user.
type RegisterOutput struct {
	Account *entity.Account
	Message string
}

// LoginOutput returns the session tokens and the logged-in account.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshTokenOutput returns a new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// --- Usecase Interface ---

// AccountUsecase covers self-service account operations and sessions.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error

	GetProfile(ctx context.Context, caller policy.Caller) (*entity.Account, error)
	UpdateProfile(ctx context.Context, caller policy.Caller, input *UpdateProfileInput) (*entity.Account, error)

	// ResolveCaller turns a token subject into a caller. Missing or inactive
	// accounts are rejected as unauthenticated.
	ResolveCaller(ctx context.Context, accountID uuid.UUID) (policy.Caller, error)
}
