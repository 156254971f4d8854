package handler

import (
	"log/slog"
	"net/http"

	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/response"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StationHandlerParams holds dependencies for StationHandler, injected by Fx.
type StationHandlerParams struct {
	fx.In

	StationUC usecase.StationUsecase
	Logger    *slog.Logger
}

// StationHandler serves station profiles.
type StationHandler struct {
	stationUC usecase.StationUsecase
	logger    *slog.Logger
}

// NewStationHandler is the constructor for StationHandler.
func NewStationHandler(params StationHandlerParams) *StationHandler {
	return &StationHandler{
		stationUC: params.StationUC,
		logger:    params.Logger,
	}
}

// StationRequest is the station profile body for create and update.
type StationRequest struct {
	Name         *string `json:"nom"`
	Address      *string `json:"adresse"`
	Phone        *string `json:"telephone"`
	Email        *string `json:"email" validate:"omitempty,email"`
	OpeningHours *string `json:"horaires"`
	LocationRequest
}

func (r *StationRequest) input() *usecase.StationInput {
	return &usecase.StationInput{
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
		Email:        r.Email,
		OpeningHours: r.OpeningHours,
		Location:     r.coordinates(),
	}
}

// List returns the stations visible to the caller.
func (h *StationHandler) List(c echo.Context) error {
	stations, err := h.stationUC.List(c.Request().Context(), middleware.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentStations(stations))
}

// Get returns one visible station.
func (h *StationHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrStationNotFound)
	}

	station, err := h.stationUC.Get(c.Request().Context(), middleware.GetCaller(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentStation(station))
}

// Create opens the caller's station profile.
func (h *StationHandler) Create(c echo.Context) error {
	var req StationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de station invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	station, err := h.stationUC.Create(c.Request().Context(), middleware.GetCaller(c), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentStation(station))
}

// Update edits a station profile.
func (h *StationHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrStationNotFound)
	}

	var req StationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de station invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	station, err := h.stationUC.Update(c.Request().Context(), middleware.GetCaller(c), id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentStation(station))
}

// Delete removes a station profile.
func (h *StationHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrStationNotFound)
	}

	if err := h.stationUC.Delete(c.Request().Context(), middleware.GetCaller(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Approve approves or rejects a station.
func (h *StationHandler) Approve(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrStationNotFound)
	}

	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Décision d'approbation invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.stationUC.Approve(c.Request().Context(), middleware.GetCaller(c), id, *req.Approved); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: approvalMessage("Station", true, *req.Approved)})
}
