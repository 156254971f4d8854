package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider: email and password.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this authentication record.
	UserID         uuid.UUID // Account the credential belongs to.
	Provider       string    // Always ProviderTypeEmail.
	ProviderUserID string    // The login email.
	PasswordHash   string    // bcrypt hash.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized session.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	UserID    uuid.UUID // Account the session belongs to.
	TokenHash string    // SHA-256 of the raw refresh token.
	ExpiresAt time.Time // After this the token is rejected.
	CreatedAt time.Time
}

// IsExpired reports whether the session has expired at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
