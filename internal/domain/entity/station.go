package entity

import (
	"time"

	"github.com/google/uuid"
)

// StationProfile is the seller side of a station account.
type StationProfile struct {
	ID           uuid.UUID
	UserID       uuid.UUID // Owning account.
	Name         string
	Address      string
	Phone        string
	Email        string
	OpeningHours string
	Location     *Coordinates
	IsActive     bool
	IsApproved   bool
	CreatedAt    time.Time
}

// OwnerAccountID returns the owning account.
func (s *StationProfile) OwnerAccountID() uuid.UUID {
	return s.UserID
}

// IsPublic reports whether the station is listed to everyone.
func (s *StationProfile) IsPublic() bool {
	return s.IsApproved && s.IsActive
}
