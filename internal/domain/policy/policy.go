// Package policy holds the role and ownership rules deciding who may see or
// change what. Every usecase receives the caller explicitly and asks this
// package; nothing here touches storage.
package policy

import (
	"gazexpress/internal/domain/entity"

	"github.com/google/uuid"
)

// Caller is the identity behind a request. A nil Account means anonymous.
type Caller struct {
	Account *entity.Account
}

// Anonymous is the unauthenticated caller.
var Anonymous = Caller{}

// NewCaller wraps an authenticated account.
func NewCaller(account *entity.Account) Caller {
	return Caller{Account: account}
}

// IsAuthenticated reports whether an active account is behind the call.
func (c Caller) IsAuthenticated() bool {
	return c.Account != nil && c.Account.IsActive
}

// AccountID returns the caller's account id, or uuid.Nil when anonymous.
func (c Caller) AccountID() uuid.UUID {
	if c.Account == nil {
		return uuid.Nil
	}

	return c.Account.ID
}

// Role returns the caller's role, or "" when anonymous.
func (c Caller) Role() entity.Role {
	if !c.IsAuthenticated() {
		return ""
	}

	return c.Account.Role
}

// StationProfile returns the caller's station profile if any.
func (c Caller) StationProfile() *entity.StationProfile {
	if !c.IsAuthenticated() {
		return nil
	}

	return c.Account.StationProfile
}

// CourierProfile returns the caller's courier profile if any.
func (c Caller) CourierProfile() *entity.CourierProfile {
	if !c.IsAuthenticated() {
		return nil
	}

	return c.Account.CourierProfile
}

// Predicate is a yes/no authorization rule over a caller.
type Predicate func(Caller) bool

// IsAuthenticated matches any active account.
func IsAuthenticated(c Caller) bool {
	return c.IsAuthenticated()
}

// IsAdmin matches admin accounts.
func IsAdmin(c Caller) bool {
	return c.Role() == entity.RoleAdmin
}

// IsStation matches station accounts.
func IsStation(c Caller) bool {
	return c.Role() == entity.RoleStation
}

// IsApprovedStation matches station accounts whose profile exists and is approved.
func IsApprovedStation(c Caller) bool {
	profile := c.StationProfile()

	return IsStation(c) && profile != nil && profile.IsApproved
}

// IsCourier matches courier accounts.
func IsCourier(c Caller) bool {
	return c.Role() == entity.RoleCourier
}

// IsApprovedCourier matches courier accounts whose profile exists and is approved.
func IsApprovedCourier(c Caller) bool {
	profile := c.CourierProfile()

	return IsCourier(c) && profile != nil && profile.IsApproved
}

// IsClient matches client accounts.
func IsClient(c Caller) bool {
	return c.Role() == entity.RoleClient
}

// Any matches when at least one predicate does.
func Any(predicates ...Predicate) Predicate {
	return func(c Caller) bool {
		for _, p := range predicates {
			if p(c) {
				return true
			}
		}

		return false
	}
}

// Owned is anything attributable to one account.
type Owned interface {
	OwnerAccountID() uuid.UUID
}

// IsOwnerOrAdmin reports whether the caller is an admin or owns target.
func IsOwnerOrAdmin(c Caller, target Owned) bool {
	if IsAdmin(c) {
		return true
	}
	if !c.IsAuthenticated() || target == nil {
		return false
	}

	return target.OwnerAccountID() == c.Account.ID
}
