// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"testing"
	"time"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	return m.Called(password).Error(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) HashToken(token string) string {
	return m.Called(token).String(0)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// RecordingMetrics is a MetricsRecorder that keeps the events it saw.
type RecordingMetrics struct {
	Created       int
	Assigned      int
	Transitions   [][2]entity.OrderStatus
	Approvals     []bool
	Registrations []entity.Role
}

var _ service.MetricsRecorder = (*RecordingMetrics)(nil)

func (r *RecordingMetrics) OrderCreated() { r.Created++ }

func (r *RecordingMetrics) OrderStatusChanged(from, to entity.OrderStatus) {
	r.Transitions = append(r.Transitions, [2]entity.OrderStatus{from, to})
}

func (r *RecordingMetrics) CourierAssigned() { r.Assigned++ }

func (r *RecordingMetrics) ApprovalDecided(_ entity.Role, approved bool) {
	r.Approvals = append(r.Approvals, approved)
}

func (r *RecordingMetrics) AccountRegistered(role entity.Role) {
	r.Registrations = append(r.Registrations, role)
}
