package handler

import (
	"log/slog"
	"net/http"

	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/response"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ZoneHandlerParams holds dependencies for ZoneHandler, injected by Fx.
type ZoneHandlerParams struct {
	fx.In

	ZoneUC usecase.ZoneUsecase
	Logger *slog.Logger
}

// ZoneHandler serves delivery zones.
type ZoneHandler struct {
	zoneUC usecase.ZoneUsecase
	logger *slog.Logger
}

// NewZoneHandler is the constructor for ZoneHandler.
func NewZoneHandler(params ZoneHandlerParams) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: params.ZoneUC,
		logger: params.Logger,
	}
}

// ZoneRequest is the zone body for create and update. frais_livraison
// accepts a JSON number or a decimal string.
type ZoneRequest struct {
	Name           *string          `json:"nom"`
	DeliveryFee    *decimal.Decimal `json:"frais_livraison"`
	EstimatedDelay *string          `json:"delai_estime"`
	IsActive       *bool            `json:"is_active"`
}

func (r *ZoneRequest) input() *usecase.ZoneInput {
	return &usecase.ZoneInput{
		Name:           r.Name,
		DeliveryFee:    r.DeliveryFee,
		EstimatedDelay: r.EstimatedDelay,
		IsActive:       r.IsActive,
	}
}

// List returns every zone.
func (h *ZoneHandler) List(c echo.Context) error {
	zones, err := h.zoneUC.List(c.Request().Context(), middleware.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentZones(zones))
}

// Get returns one zone.
func (h *ZoneHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrZoneNotFound)
	}

	zone, err := h.zoneUC.Get(c.Request().Context(), middleware.GetCaller(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentZone(zone))
}

// Create adds a zone.
func (h *ZoneHandler) Create(c echo.Context) error {
	var req ZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de zone invalides.")
	}

	zone, err := h.zoneUC.Create(c.Request().Context(), middleware.GetCaller(c), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentZone(zone))
}

// Update edits a zone.
func (h *ZoneHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrZoneNotFound)
	}

	var req ZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de zone invalides.")
	}

	zone, err := h.zoneUC.Update(c.Request().Context(), middleware.GetCaller(c), id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentZone(zone))
}

// Delete removes a zone.
func (h *ZoneHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrZoneNotFound)
	}

	if err := h.zoneUC.Delete(c.Request().Context(), middleware.GetCaller(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
