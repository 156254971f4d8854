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

func createTestOrderService(t *testing.T) (*orderService, serviceFixtures) {
	f := newServiceFixtures(t)
	srv := NewOrderService(OrderServiceParams{
		TxManager: f.txManager,
		Metrics:   f.metrics,
		Logger:    f.logger,
	}).(*orderService)
	srv.now = func() time.Time { return fixedNow }

	return srv, f
}

func publicProduct(price string) *entity.Product {
	station := &entity.StationProfile{ID: uuid.New(), UserID: uuid.New(), IsApproved: true, IsActive: true}

	return &entity.Product{
		ID:        uuid.New(),
		StationID: station.ID,
		Station:   station,
		TradeName: "Butane 12",
		Type:      entity.ProductType12Kg,
		Price:     decimal.RequireFromString(price),
		Stock:     10,
		Available: true,
	}
}

func TestOrderService_Create_Pricing(t *testing.T) {
	tests := []struct {
		name       string
		zone       *entity.Zone
		zoneErr    error
		lineTotal  string
		grandTotal string
	}{
		{
			name:       "fee from the active zone",
			zone:       &entity.Zone{ID: uuid.New(), DeliveryFee: decimal.RequireFromString("2.00"), IsActive: true},
			lineTotal:  "30.00",
			grandTotal: "32.00",
		},
		{
			name:       "no active zone",
			zoneErr:    repository.ErrZoneNotFound,
			lineTotal:  "30.00",
			grandTotal: "30.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, f := createTestOrderService(t)
			ctx := context.Background()
			f.inTx()

			caller := clientCaller()
			product := publicProduct("10.00")
			f.repos.Products.On("FindByID", ctx, product.ID).Return(product, nil)
			f.repos.Zones.On("FirstActive", ctx).Return(tt.zone, tt.zoneErr)
			f.repos.Orders.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

			order, err := srv.Create(ctx, caller, &usecase.CreateOrderInput{
				ProductID:       product.ID,
				Quantity:        3,
				DeliveryAddress: " Rue 10, Dakar ",
			})

			require.NoError(t, err)
			assert.Equal(t, caller.AccountID(), order.ClientID)
			assert.Equal(t, product.StationID, order.StationID)
			assert.Equal(t, entity.OrderStatusPending, order.Status)
			assert.Equal(t, "Rue 10, Dakar", order.DeliveryAddress)
			assert.Equal(t, tt.lineTotal, order.LineTotal.StringFixed(2))
			assert.Equal(t, tt.grandTotal, order.GrandTotal.StringFixed(2))
			assert.Equal(t, 1, f.metrics.Created)
		})
	}
}

func TestOrderService_Create_Rejections(t *testing.T) {
	t.Run("non client", func(t *testing.T) {
		srv, _ := createTestOrderService(t)

		_, err := srv.Create(context.Background(), stationCaller(true), &usecase.CreateOrderInput{Quantity: 1, DeliveryAddress: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("zero quantity", func(t *testing.T) {
		srv, _ := createTestOrderService(t)

		_, err := srv.Create(context.Background(), clientCaller(), &usecase.CreateOrderInput{Quantity: 0, DeliveryAddress: "x"})

		requireFieldError(t, err, "quantite")
	})

	t.Run("missing address", func(t *testing.T) {
		srv, _ := createTestOrderService(t)

		_, err := srv.Create(context.Background(), clientCaller(), &usecase.CreateOrderInput{Quantity: 2, DeliveryAddress: "  "})

		requireFieldError(t, err, "adresse_livraison")
	})

	t.Run("missing product", func(t *testing.T) {
		srv, f := createTestOrderService(t)
		f.inTx()
		id := uuid.New()
		f.repos.Products.On("FindByID", mock.Anything, id).Return(nil, repository.ErrProductNotFound)

		_, err := srv.Create(context.Background(), clientCaller(), &usecase.CreateOrderInput{
			ProductID:       id,
			Quantity:        1,
			DeliveryAddress: "Rue 10",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
		assert.Zero(t, f.metrics.Created)
	})
}

func TestOrderService_Create_ProductOutsideCatalog(t *testing.T) {
	tests := []struct {
		name   string
		adjust func(p *entity.Product)
	}{
		{name: "unavailable", adjust: func(p *entity.Product) { p.Available = false }},
		{name: "unapproved station", adjust: func(p *entity.Product) { p.Station.IsApproved = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, f := createTestOrderService(t)
			f.inTx()
			product := publicProduct("10.00")
			tt.adjust(product)
			f.repos.Products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
			f.repos.Zones.On("FirstActive", mock.Anything).Return(nil, repository.ErrZoneNotFound)
			f.repos.Orders.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)

			order, err := srv.Create(context.Background(), clientCaller(), &usecase.CreateOrderInput{
				ProductID:       product.ID,
				Quantity:        1,
				DeliveryAddress: "Rue 10",
			})

			require.NoError(t, err)
			assert.Equal(t, product.ID, order.ProductID)
			assert.Equal(t, 1, f.metrics.Created)
		})
	}
}

func TestOrderService_Get_OutsideScope(t *testing.T) {
	srv, f := createTestOrderService(t)
	f.inTx()

	order := &entity.Order{ID: uuid.New(), ClientID: uuid.New(), StationID: uuid.New(), Status: entity.OrderStatusPending}
	f.repos.Orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	_, err := srv.Get(context.Background(), clientCaller(), order.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_List_UsesCallerScope(t *testing.T) {
	srv, f := createTestOrderService(t)
	f.inTx()

	caller := stationCaller(true)
	stationID := caller.StationProfile().ID
	f.repos.Orders.On("List", mock.Anything, repository.OrderFilter{StationID: &stationID}).Return([]*entity.Order{}, nil)

	orders, err := srv.List(context.Background(), caller)

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_Update_OwnerOnly(t *testing.T) {
	srv, f := createTestOrderService(t)
	ctx := context.Background()
	f.inTx()

	caller := stationCaller(true)
	order := &entity.Order{ID: uuid.New(), ClientID: uuid.New(), StationID: caller.StationProfile().ID, Quantity: 1}
	f.repos.Orders.On("FindByID", ctx, order.ID).Return(order, nil)

	quantity := 4
	_, err := srv.Update(ctx, caller, order.ID, &usecase.UpdateOrderInput{Quantity: &quantity})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_AssignCourier(t *testing.T) {
	t.Run("approved courier", func(t *testing.T) {
		srv, f := createTestOrderService(t)
		ctx := context.Background()
		f.inTx()

		caller := stationCaller(true)
		order := &entity.Order{ID: uuid.New(), ClientID: uuid.New(), StationID: caller.StationProfile().ID, Status: entity.OrderStatusPending}
		courier := &entity.CourierProfile{ID: uuid.New(), UserID: uuid.New(), IsApproved: true}
		f.repos.Orders.On("FindByID", ctx, order.ID).Return(order, nil)
		f.repos.Couriers.On("FindByID", ctx, courier.ID).Return(courier, nil)
		f.repos.Orders.On("Update", ctx, order).Return(nil)

		assigned, err := srv.AssignCourier(ctx, caller, order.ID, courier.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusAssigned, assigned.Status)
		require.NotNil(t, assigned.CourierID)
		assert.Equal(t, courier.ID, *assigned.CourierID)
		assert.Equal(t, 1, f.metrics.Assigned)
		assert.Equal(t, [][2]entity.OrderStatus{{entity.OrderStatusPending, entity.OrderStatusAssigned}}, f.metrics.Transitions)
	})

	t.Run("unapproved courier", func(t *testing.T) {
		srv, f := createTestOrderService(t)
		f.inTx()

		order := &entity.Order{ID: uuid.New(), StationID: uuid.New(), Status: entity.OrderStatusPending}
		courier := &entity.CourierProfile{ID: uuid.New(), IsApproved: false}
		f.repos.Orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		f.repos.Couriers.On("FindByID", mock.Anything, courier.ID).Return(courier, nil)

		_, err := srv.AssignCourier(context.Background(), adminCaller(), order.ID, courier.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrCourierNotFound))
		assert.Nil(t, order.CourierID)
	})

	t.Run("another station's order", func(t *testing.T) {
		srv, f := createTestOrderService(t)
		f.inTx()

		order := &entity.Order{ID: uuid.New(), StationID: uuid.New(), Status: entity.OrderStatusPending}
		f.repos.Orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err := srv.AssignCourier(context.Background(), stationCaller(true), order.ID, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})

	t.Run("client", func(t *testing.T) {
		srv, _ := createTestOrderService(t)

		_, err := srv.AssignCourier(context.Background(), clientCaller(), uuid.New(), uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestOrderService_UpdateStatus_DeliveredCreditsCourierEachTime(t *testing.T) {
	srv, f := createTestOrderService(t)
	ctx := context.Background()
	f.inTx()

	caller := courierCaller(true)
	courierID := caller.CourierProfile().ID
	order := &entity.Order{ID: uuid.New(), StationID: uuid.New(), CourierID: &courierID, Status: entity.OrderStatusInTransit}
	f.repos.Orders.On("FindByID", ctx, order.ID).Return(order, nil)
	f.repos.Orders.On("Update", ctx, order).Return(nil)
	f.repos.Couriers.On("IncrementDeliveredCount", ctx, courierID).Return(nil).Twice()

	for range 2 {
		delivered, err := srv.UpdateStatus(ctx, caller, order.ID, entity.OrderStatusDelivered)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusDelivered, delivered.Status)
		require.NotNil(t, delivered.DeliveredAt)
		assert.Equal(t, fixedNow, *delivered.DeliveredAt)
	}
	f.repos.Couriers.AssertNumberOfCalls(t, "IncrementDeliveredCount", 2)
}

func TestOrderService_UpdateStatus_Rules(t *testing.T) {
	t.Run("cancel after delivery", func(t *testing.T) {
		srv, f := createTestOrderService(t)
		f.inTx()

		order := &entity.Order{ID: uuid.New(), StationID: uuid.New(), Status: entity.OrderStatusDelivered}
		f.repos.Orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err := srv.UpdateStatus(context.Background(), adminCaller(), order.ID, entity.OrderStatusCancelled)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
		assert.Equal(t, entity.OrderStatusDelivered, order.Status)
	})

	t.Run("client may cancel", func(t *testing.T) {
		srv, f := createTestOrderService(t)
		f.inTx()

		caller := clientCaller()
		order := &entity.Order{ID: uuid.New(), ClientID: caller.AccountID(), Status: entity.OrderStatusPending}
		f.repos.Orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		f.repos.Orders.On("Update", mock.Anything, order).Return(nil)

		cancelled, err := srv.UpdateStatus(context.Background(), caller, order.ID, entity.OrderStatusCancelled)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	})

	t.Run("client may not advance", func(t *testing.T) {
		srv, f := createTestOrderService(t)
		f.inTx()

		caller := clientCaller()
		order := &entity.Order{ID: uuid.New(), ClientID: caller.AccountID(), Status: entity.OrderStatusPending}
		f.repos.Orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err := srv.UpdateStatus(context.Background(), caller, order.ID, entity.OrderStatusInTransit)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("unknown status", func(t *testing.T) {
		srv, _ := createTestOrderService(t)

		_, err := srv.UpdateStatus(context.Background(), adminCaller(), uuid.New(), entity.OrderStatus("perdue"))

		requireFieldError(t, err, "statut")
	})

	t.Run("anonymous", func(t *testing.T) {
		srv, _ := createTestOrderService(t)

		_, err := srv.UpdateStatus(context.Background(), policy.Anonymous, uuid.New(), entity.OrderStatusDelivered)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}
