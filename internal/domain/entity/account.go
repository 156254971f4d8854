// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a person able to log in. Exactly one role is carried; station and
// courier accounts additionally own a profile once it has been created.
type Account struct {
	ID             uuid.UUID       // Primary key.
	Email          string          // Unique login identifier.
	FirstName      string          // "prenom".
	LastName       string          // "nom".
	Phone          string          // Contact phone number.
	Role           Role            // One of client, livreur, station, admin.
	Address        string          // Postal address.
	Location       *Coordinates    // Optional GPS position.
	IsActive       bool            // Inactive accounts cannot authenticate.
	IsApproved     bool            // Station and courier accounts need admin approval.
	StationProfile *StationProfile // Nil unless the account owns a station profile.
	CourierProfile *CourierProfile // Nil unless the account owns a courier profile.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount builds an account for self-registration with the approval flag
// derived from the role.
func NewAccount(email, firstName, lastName string, role Role) *Account {
	return &Account{
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		Role:       role,
		IsActive:   true,
		IsApproved: !role.RequiresApproval(),
	}
}

// ChangeRole moves the account to a new role and applies the approval reset.
func (a *Account) ChangeRole(role Role) {
	a.IsApproved = ApprovalAfterRoleChange(a.Role, role, a.IsApproved)
	a.Role = role
}

// ApplyApproval sets the account approval flag and mirrors it onto whichever
// profile the account owns. A station's active flag follows its approval.
func (a *Account) ApplyApproval(approved bool) {
	a.IsApproved = approved
	if a.StationProfile != nil {
		a.StationProfile.IsApproved = approved
		a.StationProfile.IsActive = approved
	}
	if a.CourierProfile != nil {
		a.CourierProfile.IsApproved = approved
	}
}

// OwnerAccountID makes an account its own owner.
func (a *Account) OwnerAccountID() uuid.UUID {
	return a.ID
}
