package postgres

import (
	"context"
	"testing"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productPriceRows(productID, stationID uuid.UUID, price string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "station_id", "price"}).
		AddRow(productID.String(), stationID.String(), price)
}

func staleOrder(productID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:              uuid.New(),
		ClientID:        uuid.New(),
		ProductID:       productID,
		StationID:       uuid.New(),
		Quantity:        2,
		LineTotal:       decimal.NewFromInt(20),
		DeliveryFee:     decimal.NewFromInt(2),
		GrandTotal:      decimal.NewFromInt(22),
		DeliveryAddress: "Parcelles Assainies",
		Status:          entity.OrderStatusPending,
	}
}

func TestOrderRepository_Update_RepricesFromCurrentPrice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	productID, stationID := uuid.New(), uuid.New()
	order := staleOrder(productID)

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(productPriceRows(productID, stationID, "12.50"))
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), order))

	assert.True(t, order.LineTotal.Equal(decimal.RequireFromString("25")), order.LineTotal.String())
	assert.True(t, order.GrandTotal.Equal(decimal.RequireFromString("27")), order.GrandTotal.String())
	assert.Equal(t, stationID, order.StationID)
}

func TestOrderRepository_Update_NewQuantityRederivesTotals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	productID, stationID := uuid.New(), uuid.New()
	order := staleOrder(productID)
	order.Quantity = 5

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(productPriceRows(productID, stationID, "10.00"))
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), order))

	assert.True(t, order.LineTotal.Equal(decimal.NewFromInt(50)), order.LineTotal.String())
	assert.True(t, order.GrandTotal.Equal(decimal.NewFromInt(52)), order.GrandTotal.String())
}

func TestOrderRepository_Update_ProductGone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	order := staleOrder(uuid.New())

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "station_id", "price"}))

	err := repo.Update(context.Background(), order)

	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
	assert.True(t, order.GrandTotal.Equal(decimal.NewFromInt(22)))
}

func TestOrderRepository_Update_OrderGone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	productID := uuid.New()
	order := staleOrder(productID)

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(productPriceRows(productID, uuid.New(), "10.00"))
	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), order)

	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestOrderRepository_OrdersAreNotDeletable(t *testing.T) {
	_, deletable := NewOrderRepository(nil).(interface {
		Delete(ctx context.Context, id uuid.UUID) error
	})

	assert.False(t, deletable)
}
