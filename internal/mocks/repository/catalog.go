package repository

import (
	"context"
	"testing"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockZoneRepository mocks repository.ZoneRepository.
type MockZoneRepository struct {
	mock.Mock
}

func NewMockZoneRepository(t *testing.T) *MockZoneRepository {
	m := &MockZoneRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockZoneRepository) Create(ctx context.Context, zone *entity.Zone) error {
	return m.Called(ctx, zone).Error(0)
}

func (m *MockZoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error) {
	args := m.Called(ctx, id)
	zone, _ := args.Get(0).(*entity.Zone)

	return zone, args.Error(1)
}

func (m *MockZoneRepository) List(ctx context.Context) ([]*entity.Zone, error) {
	args := m.Called(ctx)
	zones, _ := args.Get(0).([]*entity.Zone)

	return zones, args.Error(1)
}

func (m *MockZoneRepository) Update(ctx context.Context, zone *entity.Zone) error {
	return m.Called(ctx, zone).Error(0)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockZoneRepository) FirstActive(ctx context.Context) (*entity.Zone, error) {
	args := m.Called(ctx)
	zone, _ := args.Get(0).(*entity.Zone)

	return zone, args.Error(1)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
