package impl

import (
	"context"
	"testing"
	"time"

	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"
	"gazexpress/internal/domain/repository"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T) (*adminService, serviceFixtures) {
	f := newServiceFixtures(t)
	srv := NewAdminService(AdminServiceParams{
		TxManager: f.txManager,
		Metrics:   f.metrics,
		Logger:    f.logger,
	}).(*adminService)
	srv.now = func() time.Time { return fixedNow }

	return srv, f
}

func pendingStationAccount() *entity.Account {
	account := entity.NewAccount("station@example.com", "Moussa", "Ndiaye", entity.RoleStation)
	account.ID = uuid.New()
	account.StationProfile = &entity.StationProfile{ID: uuid.New(), UserID: account.ID, Name: "Station Plateau"}

	return account
}

func TestAdminService_SetApproval_RoundTrip(t *testing.T) {
	srv, f := createTestAdminService(t)
	ctx := context.Background()
	f.inTx()

	account := pendingStationAccount()
	f.repos.Accounts.On("FindByID", ctx, account.ID).Return(account, nil)
	f.repos.Accounts.On("Update", ctx, account).Return(nil)

	approved, err := srv.SetApproval(ctx, adminCaller(), account.ID, true)

	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.True(t, approved.StationProfile.IsApproved)
	assert.True(t, approved.StationProfile.IsActive)

	rejected, err := srv.SetApproval(ctx, adminCaller(), account.ID, false)

	require.NoError(t, err)
	assert.False(t, rejected.IsApproved)
	assert.False(t, rejected.StationProfile.IsApproved)
	assert.False(t, rejected.StationProfile.IsActive)
	assert.Equal(t, []bool{true, false}, f.metrics.Approvals)
}

func TestAdminService_SetApproval_RequiresAdmin(t *testing.T) {
	srv, _ := createTestAdminService(t)

	_, err := srv.SetApproval(context.Background(), stationCaller(true), uuid.New(), true)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = srv.SetApproval(context.Background(), policy.Anonymous, uuid.New(), true)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAdminService_SetApproval_UnknownAccount(t *testing.T) {
	srv, f := createTestAdminService(t)
	f.inTx()
	id := uuid.New()
	f.repos.Accounts.On("FindByID", mock.Anything, id).Return(nil, repository.ErrAccountNotFound)

	_, err := srv.SetApproval(context.Background(), adminCaller(), id, true)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	assert.Empty(t, f.metrics.Approvals)
}

func TestAdminService_UpdateAccount_RoleChangeResetsApproval(t *testing.T) {
	srv, f := createTestAdminService(t)
	ctx := context.Background()
	f.inTx()

	account := entity.NewAccount("awa@example.com", "Awa", "Diallo", entity.RoleClient)
	account.ID = uuid.New()
	f.repos.Accounts.On("FindByID", ctx, account.ID).Return(account, nil)
	f.repos.Accounts.On("Update", ctx, account).Return(nil)

	role := entity.RoleCourier
	approved := true
	updated, err := srv.UpdateAccount(ctx, adminCaller(), account.ID, &usecase.UpdateAccountInput{
		Role:       &role,
		IsApproved: &approved,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCourier, updated.Role)
	assert.False(t, updated.IsApproved)
}

func TestAdminService_UpdateAccount_SameRoleKeepsRequestedApproval(t *testing.T) {
	srv, f := createTestAdminService(t)
	ctx := context.Background()
	f.inTx()

	account := pendingStationAccount()
	f.repos.Accounts.On("FindByID", ctx, account.ID).Return(account, nil)
	f.repos.Accounts.On("Update", ctx, account).Return(nil)

	role := entity.RoleStation
	approved := true
	firstName := "Moustapha"
	updated, err := srv.UpdateAccount(ctx, adminCaller(), account.ID, &usecase.UpdateAccountInput{
		FirstName:  &firstName,
		Role:       &role,
		IsApproved: &approved,
	})

	require.NoError(t, err)
	assert.True(t, updated.IsApproved)
	assert.True(t, updated.StationProfile.IsApproved)
	assert.Equal(t, "Moustapha", updated.FirstName)
}

func TestAdminService_UpdateAccount_InvalidRole(t *testing.T) {
	srv, _ := createTestAdminService(t)

	role := entity.Role("superviseur")
	_, err := srv.UpdateAccount(context.Background(), adminCaller(), uuid.New(), &usecase.UpdateAccountInput{Role: &role})

	requireFieldError(t, err, "role")
}

func TestAdminService_ListPendingApprovals(t *testing.T) {
	srv, f := createTestAdminService(t)
	f.inTx()

	pending := []*entity.Account{pendingStationAccount()}
	f.repos.Accounts.On("List", mock.Anything, repository.AccountFilter{PendingOnly: true}).Return(pending, nil)

	accounts, err := srv.ListPendingApprovals(context.Background(), adminCaller())

	require.NoError(t, err)
	assert.Equal(t, pending, accounts)
}

func TestAdminService_ListAccounts_ByRole(t *testing.T) {
	srv, f := createTestAdminService(t)
	f.inTx()

	role := entity.RoleClient
	f.repos.Accounts.On("List", mock.Anything, repository.AccountFilter{Role: &role}).Return([]*entity.Account{}, nil)

	accounts, err := srv.ListAccounts(context.Background(), adminCaller(), &role)

	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAdminService_DeleteAccount_NotFound(t *testing.T) {
	srv, f := createTestAdminService(t)
	f.inTx()
	id := uuid.New()
	f.repos.Accounts.On("Delete", mock.Anything, id).Return(repository.ErrAccountNotFound)

	err := srv.DeleteAccount(context.Background(), adminCaller(), id)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAdminService_Dashboard_Windows(t *testing.T) {
	srv, f := createTestAdminService(t)
	f.inTx()

	expected := repository.ReportWindows{
		DayStart:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		WeekStart:  time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
		MonthStart: time.Date(2026, time.February, 13, 0, 0, 0, 0, time.UTC),
	}
	stats := &entity.DashboardStats{TotalOrders: 4, Revenue: decimal.RequireFromString("64.00")}
	f.repos.Reports.On("DashboardStats", mock.Anything, expected).Return(stats, nil)

	got, err := srv.Dashboard(context.Background(), adminCaller())

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestAdminService_Dashboard_RequiresAdmin(t *testing.T) {
	srv, _ := createTestAdminService(t)

	_, err := srv.Dashboard(context.Background(), clientCaller())

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
