package handler

import (
	"log/slog"
	"net/http"

	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/response"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CourierHandlerParams holds dependencies for CourierHandler, injected by Fx.
type CourierHandlerParams struct {
	fx.In

	CourierUC usecase.CourierUsecase
	Logger    *slog.Logger
}

// CourierHandler serves courier profiles.
type CourierHandler struct {
	courierUC usecase.CourierUsecase
	logger    *slog.Logger
}

// NewCourierHandler is the constructor for CourierHandler.
func NewCourierHandler(params CourierHandlerParams) *CourierHandler {
	return &CourierHandler{
		courierUC: params.CourierUC,
		logger:    params.Logger,
	}
}

// CourierRequest is the courier profile body for create and update.
type CourierRequest struct {
	Vehicle     *string    `json:"vehicule"`
	Plate       *string    `json:"immatriculation"`
	ZoneID      *uuid.UUID `json:"zone_id"`
	IsAvailable *bool      `json:"is_disponible"`
}

func (r *CourierRequest) input() *usecase.CourierInput {
	return &usecase.CourierInput{
		Vehicle:     r.Vehicle,
		Plate:       r.Plate,
		ZoneID:      r.ZoneID,
		IsAvailable: r.IsAvailable,
	}
}

// List returns the couriers visible to the caller.
func (h *CourierHandler) List(c echo.Context) error {
	couriers, err := h.courierUC.List(c.Request().Context(), middleware.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentCouriers(couriers))
}

// ListAvailable returns approved couriers ready for a delivery.
func (h *CourierHandler) ListAvailable(c echo.Context) error {
	couriers, err := h.courierUC.ListAvailable(c.Request().Context(), middleware.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentCouriers(couriers))
}

// Get returns one visible courier.
func (h *CourierHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrCourierNotFound)
	}

	courier, err := h.courierUC.Get(c.Request().Context(), middleware.GetCaller(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentCourier(courier))
}

// Create opens the caller's courier profile.
func (h *CourierHandler) Create(c echo.Context) error {
	var req CourierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de livreur invalides.")
	}

	courier, err := h.courierUC.Create(c.Request().Context(), middleware.GetCaller(c), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentCourier(courier))
}

// Update edits a courier profile.
func (h *CourierHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrCourierNotFound)
	}

	var req CourierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de livreur invalides.")
	}

	courier, err := h.courierUC.Update(c.Request().Context(), middleware.GetCaller(c), id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentCourier(courier))
}

// Delete removes a courier profile.
func (h *CourierHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrCourierNotFound)
	}

	if err := h.courierUC.Delete(c.Request().Context(), middleware.GetCaller(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Approve approves or rejects a courier.
func (h *CourierHandler) Approve(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrCourierNotFound)
	}

	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Décision d'approbation invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.courierUC.Approve(c.Request().Context(), middleware.GetCaller(c), id, *req.Approved); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: approvalMessage("Livreur", false, *req.Approved)})
}
