package handler

import (
	"net/http"
	"testing"

	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"
	mockusecase "gazexpress/internal/mocks/usecase"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductHandler(t *testing.T) (*ProductHandler, *mockusecase.MockProductUsecase) {
	uc := mockusecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: uc, Logger: discardLogger()}), uc
}

func TestProductHandler_List(t *testing.T) {
	h, uc := createTestProductHandler(t)
	kind := entity.ProductType12Kg
	station := &entity.StationProfile{
		ID:       uuid.New(),
		Name:     "Station Médina",
		Location: &entity.Coordinates{Latitude: 14.68, Longitude: -17.45},
	}
	uc.On("List", mock.Anything, policy.Anonymous, usecase.ProductQuery{Type: &kind, Brand: "Total"}).Return([]*entity.Product{
		{
			ID:        uuid.New(),
			StationID: station.ID,
			Station:   station,
			TradeName: "Total Gaz 12",
			Type:      entity.ProductType12Kg,
			Brand:     "Total",
			Price:     decimal.NewFromInt(2500),
			Stock:     4,
			Available: true,
		},
	}, nil)

	c, rec := newContext(request{
		method: http.MethodGet,
		path:   "/bouteilles",
		query:  "type=12kg&marque=Total",
	})

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	items := listOf(t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "2500.00", items[0]["prix"])
	assert.Equal(t, "Station Médina", items[0]["station_nom"])
	assert.Equal(t, station.ID.String(), items[0]["station"])
	assert.Equal(t, 14.68, items[0]["station_coordonnees"].(map[string]any)["latitude"])
}

func TestProductHandler_List_Empty(t *testing.T) {
	h, uc := createTestProductHandler(t)
	uc.On("List", mock.Anything, mock.Anything, usecase.ProductQuery{}).Return(nil, nil)

	c, rec := newContext(request{method: http.MethodGet, path: "/bouteilles"})

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestProductHandler_Create(t *testing.T) {
	h, uc := createTestProductHandler(t)
	caller := stationCaller()
	uc.On("Create", mock.Anything, caller, mock.MatchedBy(func(in *usecase.ProductInput) bool {
		return in.TradeName != nil && *in.TradeName == "Butane 6" &&
			in.Price != nil && in.Price.Equal(decimal.RequireFromString("1500.5")) &&
			in.Stock != nil && *in.Stock == 10 &&
			in.Available == nil
	})).Return(&entity.Product{
		ID:        uuid.New(),
		TradeName: "Butane 6",
		Type:      entity.ProductType6Kg,
		Price:     decimal.RequireFromString("1500.5"),
		Stock:     10,
	}, nil)

	c, rec := newContext(request{
		method: http.MethodPost,
		path:   "/bouteilles",
		body:   `{"nom_commercial":"Butane 6","type":"6kg","prix":"1500.5","stock":10}`,
		caller: caller,
	})

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	data := dataOf(t, rec)
	assert.Equal(t, "1500.50", data["prix"])
	assert.Equal(t, "", data["station_nom"])
	assert.Nil(t, data["station_coordonnees"])
}

func TestProductHandler_Create_NegativeStock(t *testing.T) {
	h, _ := createTestProductHandler(t)
	c, rec := newContext(request{
		method: http.MethodPost,
		path:   "/bouteilles",
		body:   `{"nom_commercial":"Butane 6","stock":-1}`,
		caller: stationCaller(),
	})

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{
		"stock": "Assurez-vous que cette valeur est supérieure ou égale à 0.",
	}, errorOf(t, rec).Details)
}

func TestProductHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "other station", ucErr: domainerrors.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "unknown", ucErr: domainerrors.ErrProductNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := createTestProductHandler(t)
			id := uuid.New()
			uc.On("Delete", mock.Anything, mock.Anything, id).Return(tt.ucErr)

			c, rec := newContext(request{
				method: http.MethodDelete,
				path:   "/bouteilles/" + id.String(),
				params: map[string]string{"id": id.String()},
				caller: stationCaller(),
			})

			require.NoError(t, h.Delete(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.ucErr == nil {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
