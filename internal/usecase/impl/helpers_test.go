package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"
	mockRepo "gazexpress/internal/mocks/repository"
	mockSvc "gazexpress/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const txFuncType = "func(repository.RepositoryFactory) error"

var fixedNow = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

// serviceFixtures holds the doubles shared by every service under test.
type serviceFixtures struct {
	txManager *mockRepo.MockTransactionManager
	repos     *mockRepo.MockRepositoryFactory
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
	metrics   *mockSvc.RecordingMetrics
	logger    *slog.Logger
}

func newServiceFixtures(t *testing.T) serviceFixtures {
	t.Helper()

	return serviceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		repos:     mockRepo.NewMockRepositoryFactory(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
		metrics:   &mockSvc.RecordingMetrics{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// inTx runs every transaction against the mocked repositories.
func (f serviceFixtures) inTx() {
	f.txManager.On("Execute", mock.Anything, mock.AnythingOfType(txFuncType)).Return(f.repos)
}

func adminCaller() policy.Caller {
	return policy.NewCaller(&entity.Account{ID: uuid.New(), Role: entity.RoleAdmin, IsActive: true, IsApproved: true})
}

func clientCaller() policy.Caller {
	return policy.NewCaller(&entity.Account{ID: uuid.New(), Role: entity.RoleClient, IsActive: true, IsApproved: true})
}

func stationCaller(approved bool) policy.Caller {
	account := &entity.Account{ID: uuid.New(), Role: entity.RoleStation, IsActive: true, IsApproved: approved}
	account.StationProfile = &entity.StationProfile{
		ID:         uuid.New(),
		UserID:     account.ID,
		Name:       "Station Plateau",
		IsApproved: approved,
		IsActive:   approved,
	}

	return policy.NewCaller(account)
}

func courierCaller(approved bool) policy.Caller {
	account := &entity.Account{ID: uuid.New(), Role: entity.RoleCourier, IsActive: true, IsApproved: approved}
	account.CourierProfile = &entity.CourierProfile{
		ID:          uuid.New(),
		UserID:      account.ID,
		Vehicle:     "moto",
		Plate:       "AB-123-CD",
		IsApproved:  approved,
		IsAvailable: true,
	}

	return policy.NewCaller(account)
}

// requireFieldError asserts err is a validation error naming field.
func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)
	require.Contains(t, validationErr.Fields(), field)
}
