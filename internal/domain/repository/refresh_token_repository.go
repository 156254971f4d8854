package repository

import (
	"context"

	"gazexpress/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores session refresh tokens by hash.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash returns the session, or ErrRefreshTokenExpired once it lapsed.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash ends a session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error
}
