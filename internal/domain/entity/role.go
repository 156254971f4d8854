// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the single role carried by an account. Values are the wire values
// used by the mobile clients.
type Role string

const (
	// RoleClient places orders.
	RoleClient Role = "client"
	// RoleCourier delivers orders ("livreur").
	RoleCourier Role = "livreur"
	// RoleStation sells bottles.
	RoleStation Role = "station"
	// RoleAdmin approves accounts and sees everything.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleCourier, RoleStation, RoleAdmin:
		return true
	default:
		return false
	}
}

// RequiresApproval reports whether accounts with this role start unapproved.
func (r Role) RequiresApproval() bool {
	return r == RoleStation || r == RoleCourier
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// ApprovalAfterRoleChange returns the approval flag an account must carry after
// moving from oldRole to newRole. Entering station or courier resets approval
// whatever value was requested alongside the change.
func ApprovalAfterRoleChange(oldRole, newRole Role, requested bool) bool {
	if oldRole != newRole && newRole.RequiresApproval() {
		return false
	}

	return requested
}
