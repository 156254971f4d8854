package repository

import (
	"context"
	"testing"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

// MockPaymentRepository mocks repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func NewMockPaymentRepository(t *testing.T) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	payment, _ := args.Get(0).(*entity.Payment)

	return payment, args.Error(1)
}

func (m *MockPaymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, orderID)
	payment, _ := args.Get(0).(*entity.Payment)

	return payment, args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	args := m.Called(ctx, filter)
	payments, _ := args.Get(0).([]*entity.Payment)

	return payments, args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

// MockReportRepository mocks repository.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func NewMockReportRepository(t *testing.T) *MockReportRepository {
	m := &MockReportRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReportRepository) DashboardStats(ctx context.Context, windows repository.ReportWindows) (*entity.DashboardStats, error) {
	args := m.Called(ctx, windows)
	stats, _ := args.Get(0).(*entity.DashboardStats)

	return stats, args.Error(1)
}
