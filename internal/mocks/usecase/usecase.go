// Package usecase provides testify mocks for the usecase interfaces used by
// the HTTP handlers.
package usecase

import (
	"context"
	"testing"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/policy"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase mocks usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func NewMockAccountUsecase(t *testing.T) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.RegisterOutput)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.LoginOutput)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.RefreshTokenOutput)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockAccountUsecase) GetProfile(ctx context.Context, caller policy.Caller) (*entity.Account, error) {
	args := m.Called(ctx, caller)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountUsecase) UpdateProfile(ctx context.Context, caller policy.Caller, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	args := m.Called(ctx, caller, input)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountUsecase) ResolveCaller(ctx context.Context, accountID uuid.UUID) (policy.Caller, error) {
	args := m.Called(ctx, accountID)
	caller, _ := args.Get(0).(policy.Caller)

	return caller, args.Error(1)
}

// MockAdminUsecase mocks usecase.AdminUsecase.
type MockAdminUsecase struct {
	mock.Mock
}

func NewMockAdminUsecase(t *testing.T) *MockAdminUsecase {
	m := &MockAdminUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdminUsecase) ListAccounts(ctx context.Context, caller policy.Caller, role *entity.Role) ([]*entity.Account, error) {
	args := m.Called(ctx, caller, role)
	accounts, _ := args.Get(0).([]*entity.Account)

	return accounts, args.Error(1)
}

func (m *MockAdminUsecase) GetAccount(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, caller, id)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAdminUsecase) UpdateAccount(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	args := m.Called(ctx, caller, id, input)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAdminUsecase) DeleteAccount(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *MockAdminUsecase) SetApproval(ctx context.Context, caller policy.Caller, id uuid.UUID, approved bool) (*entity.Account, error) {
	args := m.Called(ctx, caller, id, approved)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAdminUsecase) ListPendingApprovals(ctx context.Context, caller policy.Caller) ([]*entity.Account, error) {
	args := m.Called(ctx, caller)
	accounts, _ := args.Get(0).([]*entity.Account)

	return accounts, args.Error(1)
}

func (m *MockAdminUsecase) Dashboard(ctx context.Context, caller policy.Caller) (*entity.DashboardStats, error) {
	args := m.Called(ctx, caller)
	stats, _ := args.Get(0).(*entity.DashboardStats)

	return stats, args.Error(1)
}

// MockProductUsecase mocks usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

func NewMockProductUsecase(t *testing.T) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductUsecase) List(ctx context.Context, caller policy.Caller, query usecase.ProductQuery) ([]*entity.Product, error) {
	args := m.Called(ctx, caller, query)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductUsecase) Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, caller, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) Create(ctx context.Context, caller policy.Caller, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, caller, input)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, caller, id, input)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

// MockOrderUsecase mocks usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

func NewMockOrderUsecase(t *testing.T) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderUsecase) Create(ctx context.Context, caller policy.Caller, input *usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, caller, input)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderUsecase) List(ctx context.Context, caller policy.Caller) ([]*entity.Order, error) {
	args := m.Called(ctx, caller)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *MockOrderUsecase) Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, caller, id)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderUsecase) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, caller, id, input)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderUsecase) AssignCourier(ctx context.Context, caller policy.Caller, orderID, courierID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, caller, orderID, courierID)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderUsecase) UpdateStatus(ctx context.Context, caller policy.Caller, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, caller, orderID, status)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

// MockPaymentUsecase mocks usecase.PaymentUsecase.
type MockPaymentUsecase struct {
	mock.Mock
}

func NewMockPaymentUsecase(t *testing.T) *MockPaymentUsecase {
	m := &MockPaymentUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentUsecase) List(ctx context.Context, caller policy.Caller) ([]*entity.Payment, error) {
	args := m.Called(ctx, caller)
	payments, _ := args.Get(0).([]*entity.Payment)

	return payments, args.Error(1)
}

func (m *MockPaymentUsecase) Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, caller, id)
	payment, _ := args.Get(0).(*entity.Payment)

	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) Create(ctx context.Context, caller policy.Caller, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	args := m.Called(ctx, caller, input)
	payment, _ := args.Get(0).(*entity.Payment)

	return payment, args.Error(1)
}

func (m *MockPaymentUsecase) UpdateStatus(ctx context.Context, caller policy.Caller, id uuid.UUID, status entity.PaymentStatus) (*entity.Payment, error) {
	args := m.Called(ctx, caller, id, status)
	payment, _ := args.Get(0).(*entity.Payment)

	return payment, args.Error(1)
}
