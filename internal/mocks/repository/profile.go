package repository

import (
	"context"
	"testing"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStationRepository mocks repository.StationRepository.
type MockStationRepository struct {
	mock.Mock
}

func NewMockStationRepository(t *testing.T) *MockStationRepository {
	m := &MockStationRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStationRepository) Create(ctx context.Context, station *entity.StationProfile) error {
	return m.Called(ctx, station).Error(0)
}

func (m *MockStationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StationProfile, error) {
	args := m.Called(ctx, id)
	station, _ := args.Get(0).(*entity.StationProfile)

	return station, args.Error(1)
}

func (m *MockStationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StationProfile, error) {
	args := m.Called(ctx, userID)
	station, _ := args.Get(0).(*entity.StationProfile)

	return station, args.Error(1)
}

func (m *MockStationRepository) List(ctx context.Context, filter repository.StationFilter) ([]*entity.StationProfile, error) {
	args := m.Called(ctx, filter)
	stations, _ := args.Get(0).([]*entity.StationProfile)

	return stations, args.Error(1)
}

func (m *MockStationRepository) Update(ctx context.Context, station *entity.StationProfile) error {
	return m.Called(ctx, station).Error(0)
}

func (m *MockStationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCourierRepository mocks repository.CourierRepository.
type MockCourierRepository struct {
	mock.Mock
}

func NewMockCourierRepository(t *testing.T) *MockCourierRepository {
	m := &MockCourierRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCourierRepository) Create(ctx context.Context, courier *entity.CourierProfile) error {
	return m.Called(ctx, courier).Error(0)
}

func (m *MockCourierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CourierProfile, error) {
	args := m.Called(ctx, id)
	courier, _ := args.Get(0).(*entity.CourierProfile)

	return courier, args.Error(1)
}

func (m *MockCourierRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CourierProfile, error) {
	args := m.Called(ctx, userID)
	courier, _ := args.Get(0).(*entity.CourierProfile)

	return courier, args.Error(1)
}

func (m *MockCourierRepository) List(ctx context.Context, filter repository.CourierFilter) ([]*entity.CourierProfile, error) {
	args := m.Called(ctx, filter)
	couriers, _ := args.Get(0).([]*entity.CourierProfile)

	return couriers, args.Error(1)
}

func (m *MockCourierRepository) Update(ctx context.Context, courier *entity.CourierProfile) error {
	return m.Called(ctx, courier).Error(0)
}

func (m *MockCourierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCourierRepository) IncrementDeliveredCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
