// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"gazexpress/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager. When the
// expectation returns a RepositoryFactory, Execute runs fn against it and
// returns fn's error.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates the mock and asserts expectations on cleanup.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return args.Error(0)
}

// MockRepositoryFactory hands out one mock per repository.
type MockRepositoryFactory struct {
	Accounts      *MockAccountRepository
	Auths         *MockAuthRepository
	RefreshTokens *MockRefreshTokenRepository
	Stations      *MockStationRepository
	Couriers      *MockCourierRepository
	Zones         *MockZoneRepository
	Products      *MockProductRepository
	Orders        *MockOrderRepository
	Payments      *MockPaymentRepository
	Reports       *MockReportRepository
}

// NewMockRepositoryFactory creates a factory whose repositories are all mocks.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	return &MockRepositoryFactory{
		Accounts:      NewMockAccountRepository(t),
		Auths:         NewMockAuthRepository(t),
		RefreshTokens: NewMockRefreshTokenRepository(t),
		Stations:      NewMockStationRepository(t),
		Couriers:      NewMockCourierRepository(t),
		Zones:         NewMockZoneRepository(t),
		Products:      NewMockProductRepository(t),
		Orders:        NewMockOrderRepository(t),
		Payments:      NewMockPaymentRepository(t),
		Reports:       NewMockReportRepository(t),
	}
}

func (f *MockRepositoryFactory) AccountRepo() repository.AccountRepository { return f.Accounts }

func (f *MockRepositoryFactory) AuthRepo() repository.AuthRepository { return f.Auths }

func (f *MockRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.RefreshTokens
}

func (f *MockRepositoryFactory) StationRepo() repository.StationRepository { return f.Stations }

func (f *MockRepositoryFactory) CourierRepo() repository.CourierRepository { return f.Couriers }

func (f *MockRepositoryFactory) ZoneRepo() repository.ZoneRepository { return f.Zones }

func (f *MockRepositoryFactory) ProductRepo() repository.ProductRepository { return f.Products }

func (f *MockRepositoryFactory) OrderRepo() repository.OrderRepository { return f.Orders }

func (f *MockRepositoryFactory) PaymentRepo() repository.PaymentRepository { return f.Payments }

func (f *MockRepositoryFactory) ReportRepo() repository.ReportRepository { return f.Reports }
