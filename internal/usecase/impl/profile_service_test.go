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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStationService(t *testing.T) (*stationService, serviceFixtures) {
	f := newServiceFixtures(t)
	srv := NewStationService(StationServiceParams{
		TxManager: f.txManager,
		Metrics:   f.metrics,
		Logger:    f.logger,
	}).(*stationService)
	srv.now = func() time.Time { return fixedNow }

	return srv, f
}

func createTestCourierService(t *testing.T) (*courierService, serviceFixtures) {
	f := newServiceFixtures(t)
	srv := NewCourierService(CourierServiceParams{
		TxManager: f.txManager,
		Metrics:   f.metrics,
		Logger:    f.logger,
	}).(*courierService)
	srv.now = func() time.Time { return fixedNow }

	return srv, f
}

func TestStationService_List_Scope(t *testing.T) {
	station := stationCaller(false)
	ownerID := station.AccountID()

	tests := []struct {
		name   string
		caller policy.Caller
		filter repository.StationFilter
	}{
		{name: "anonymous", caller: policy.Anonymous, filter: repository.StationFilter{PublicOnly: true}},
		{name: "station", caller: station, filter: repository.StationFilter{OwnerID: &ownerID}},
		{name: "admin", caller: adminCaller(), filter: repository.StationFilter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, f := createTestStationService(t)
			f.inTx()
			f.repos.Stations.On("List", mock.Anything, tt.filter).Return([]*entity.StationProfile{}, nil)

			_, err := srv.List(context.Background(), tt.caller)

			require.NoError(t, err)
		})
	}
}

func TestStationService_Create(t *testing.T) {
	t.Run("first profile", func(t *testing.T) {
		srv, f := createTestStationService(t)
		f.inTx()

		caller := policy.NewCaller(&entity.Account{ID: uuid.New(), Role: entity.RoleStation, IsActive: true})
		f.repos.Stations.On("FindByUserID", mock.Anything, caller.AccountID()).Return(nil, repository.ErrStationNotFound)
		f.repos.Stations.On("Create", mock.Anything, mock.AnythingOfType("*entity.StationProfile")).Return(nil)

		name := "Station Médina"
		station, err := srv.Create(context.Background(), caller, &usecase.StationInput{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, caller.AccountID(), station.UserID)
		assert.False(t, station.IsApproved)
		assert.False(t, station.IsActive)
	})

	t.Run("second profile", func(t *testing.T) {
		srv, f := createTestStationService(t)
		f.inTx()

		caller := stationCaller(true)
		f.repos.Stations.On("FindByUserID", mock.Anything, caller.AccountID()).Return(caller.StationProfile(), nil)

		name := "Station Bis"
		_, err := srv.Create(context.Background(), caller, &usecase.StationInput{Name: &name})

		assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
	})

	t.Run("missing name", func(t *testing.T) {
		srv, _ := createTestStationService(t)

		_, err := srv.Create(context.Background(), stationCaller(false), &usecase.StationInput{})

		requireFieldError(t, err, "nom")
	})
}

func TestStationService_Update_OtherStationIsHidden(t *testing.T) {
	srv, f := createTestStationService(t)
	f.inTx()

	other := &entity.StationProfile{ID: uuid.New(), UserID: uuid.New(), IsApproved: true, IsActive: true}
	f.repos.Stations.On("FindByID", mock.Anything, other.ID).Return(other, nil)

	name := "Renommée"
	_, err := srv.Update(context.Background(), stationCaller(true), other.ID, &usecase.StationInput{Name: &name})

	assert.True(t, errors.Is(err, domainerrors.ErrStationNotFound))
}

func TestStationService_Approve_MirrorsOntoAccount(t *testing.T) {
	srv, f := createTestStationService(t)
	ctx := context.Background()
	f.inTx()

	account := pendingStationAccount()
	f.repos.Stations.On("FindByID", ctx, account.StationProfile.ID).Return(account.StationProfile, nil)
	f.repos.Accounts.On("FindByID", ctx, account.ID).Return(account, nil)
	f.repos.Accounts.On("Update", ctx, account).Return(nil)

	station, err := srv.Approve(ctx, adminCaller(), account.StationProfile.ID, true)

	require.NoError(t, err)
	assert.True(t, station.IsApproved)
	assert.True(t, station.IsActive)
	assert.True(t, account.IsApproved)
	assert.Equal(t, []bool{true}, f.metrics.Approvals)
}

func TestCourierService_Create(t *testing.T) {
	t.Run("unknown zone", func(t *testing.T) {
		srv, f := createTestCourierService(t)
		f.inTx()

		caller := policy.NewCaller(&entity.Account{ID: uuid.New(), Role: entity.RoleCourier, IsActive: true})
		zoneID := uuid.New()
		f.repos.Couriers.On("FindByUserID", mock.Anything, caller.AccountID()).Return(nil, repository.ErrCourierNotFound)
		f.repos.Zones.On("FindByID", mock.Anything, zoneID).Return(nil, repository.ErrZoneNotFound)

		vehicle, plate := "moto", "AB-123-CD"
		_, err := srv.Create(context.Background(), caller, &usecase.CourierInput{Vehicle: &vehicle, Plate: &plate, ZoneID: &zoneID})

		requireFieldError(t, err, "zone")
	})

	t.Run("available by default", func(t *testing.T) {
		srv, f := createTestCourierService(t)
		f.inTx()

		caller := policy.NewCaller(&entity.Account{ID: uuid.New(), Role: entity.RoleCourier, IsActive: true})
		f.repos.Couriers.On("FindByUserID", mock.Anything, caller.AccountID()).Return(nil, repository.ErrCourierNotFound)
		f.repos.Couriers.On("Create", mock.Anything, mock.AnythingOfType("*entity.CourierProfile")).Return(nil)

		vehicle, plate := "moto", " AB-123-CD "
		courier, err := srv.Create(context.Background(), caller, &usecase.CourierInput{Vehicle: &vehicle, Plate: &plate})

		require.NoError(t, err)
		assert.True(t, courier.IsAvailable)
		assert.False(t, courier.IsApproved)
		assert.Equal(t, "AB-123-CD", courier.Plate)
	})

	t.Run("missing plate", func(t *testing.T) {
		srv, _ := createTestCourierService(t)

		vehicle := "moto"
		_, err := srv.Create(context.Background(), courierCaller(false), &usecase.CourierInput{Vehicle: &vehicle})

		requireFieldError(t, err, "immatriculation")
	})
}

func TestCourierService_ListAvailable(t *testing.T) {
	srv, f := createTestCourierService(t)
	f.inTx()
	f.repos.Couriers.On("List", mock.Anything, repository.CourierFilter{ApprovedOnly: true, AvailableOnly: true}).
		Return([]*entity.CourierProfile{}, nil)

	_, err := srv.ListAvailable(context.Background(), stationCaller(true))
	require.NoError(t, err)

	_, err = srv.ListAvailable(context.Background(), policy.Anonymous)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestCourierService_Approve(t *testing.T) {
	srv, f := createTestCourierService(t)
	ctx := context.Background()
	f.inTx()

	account := entity.NewAccount("livreur@example.com", "Ibou", "Sarr", entity.RoleCourier)
	account.ID = uuid.New()
	courier := &entity.CourierProfile{ID: uuid.New(), UserID: account.ID, IsAvailable: true}
	f.repos.Couriers.On("FindByID", ctx, courier.ID).Return(courier, nil)
	f.repos.Accounts.On("FindByID", ctx, account.ID).Return(account, nil)
	f.repos.Accounts.On("Update", ctx, account).Return(nil)

	approved, err := srv.Approve(ctx, adminCaller(), courier.ID, true)

	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.True(t, account.IsApproved)
	assert.Equal(t, account, approved.Account)
}
