package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAccount_ApprovalByRole(t *testing.T) {
	tests := []struct {
		role     Role
		approved bool
	}{
		{RoleClient, true},
		{RoleCourier, false},
		{RoleStation, false},
		{RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			account := NewAccount("a@b.cd", "Awa", "Diop", tt.role)
			assert.Equal(t, tt.approved, account.IsApproved)
			assert.True(t, account.IsActive)
		})
	}
}

func TestApprovalAfterRoleChange(t *testing.T) {
	tests := []struct {
		name      string
		oldRole   Role
		newRole   Role
		requested bool
		expected  bool
	}{
		{"client to station resets", RoleClient, RoleStation, true, false},
		{"client to courier resets", RoleClient, RoleCourier, true, false},
		{"station to courier resets", RoleStation, RoleCourier, true, false},
		{"courier to client keeps requested", RoleCourier, RoleClient, true, true},
		{"unchanged station keeps requested", RoleStation, RoleStation, true, true},
		{"unchanged client keeps false", RoleClient, RoleClient, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApprovalAfterRoleChange(tt.oldRole, tt.newRole, tt.requested))
		})
	}
}

func TestAccount_ChangeRole(t *testing.T) {
	account := &Account{Role: RoleClient, IsApproved: true}

	account.ChangeRole(RoleStation)

	assert.Equal(t, RoleStation, account.Role)
	assert.False(t, account.IsApproved)
}

func TestAccount_ApplyApproval(t *testing.T) {
	t.Run("station profile follows approval and active", func(t *testing.T) {
		account := &Account{Role: RoleStation, StationProfile: &StationProfile{}}

		account.ApplyApproval(true)
		assert.True(t, account.IsApproved)
		assert.True(t, account.StationProfile.IsApproved)
		assert.True(t, account.StationProfile.IsActive)

		account.ApplyApproval(false)
		assert.False(t, account.IsApproved)
		assert.False(t, account.StationProfile.IsApproved)
		assert.False(t, account.StationProfile.IsActive)
	})

	t.Run("courier profile follows approval", func(t *testing.T) {
		account := &Account{Role: RoleCourier, CourierProfile: &CourierProfile{IsAvailable: true}}

		account.ApplyApproval(true)
		assert.True(t, account.CourierProfile.IsApproved)
		assert.True(t, account.CourierProfile.IsAvailable)
	})

	t.Run("missing profile is ignored", func(t *testing.T) {
		account := &Account{Role: RoleStation}

		assert.NotPanics(t, func() { account.ApplyApproval(true) })
		assert.True(t, account.IsApproved)
	})

	t.Run("idempotent", func(t *testing.T) {
		account := &Account{Role: RoleCourier, CourierProfile: &CourierProfile{}}
		account.ApplyApproval(true)
		account.ApplyApproval(true)
		assert.True(t, account.IsApproved)
		assert.True(t, account.CourierProfile.IsApproved)
	})
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCourier.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}
