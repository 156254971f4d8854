package handler

import (
	"log/slog"
	"net/http"

	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/response"
	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves the payment ledger.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CreatePaymentRequest records a payment. montant defaults to the order total.
type CreatePaymentRequest struct {
	OrderID uuid.UUID            `json:"commande" validate:"required"`
	Amount  *decimal.Decimal     `json:"montant"`
	Method  entity.PaymentMethod `json:"methode"`
}

// UpdatePaymentStatusRequest carries the new payment status.
type UpdatePaymentStatusRequest struct {
	Status entity.PaymentStatus `json:"statut" validate:"required"`
}

// List returns the payments visible to the caller.
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.paymentUC.List(c.Request().Context(), middleware.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentPayments(payments))
}

// Get returns one visible payment.
func (h *PaymentHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrPaymentNotFound)
	}

	payment, err := h.paymentUC.Get(c.Request().Context(), middleware.GetCaller(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentPayment(payment))
}

// Create records the payment of an order.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de paiement invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.Create(c.Request().Context(), middleware.GetCaller(c), &usecase.CreatePaymentInput{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentPayment(payment))
}

// UpdateStatus changes a payment's status.
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrPaymentNotFound)
	}

	var req UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Statut de paiement invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.UpdateStatus(c.Request().Context(), middleware.GetCaller(c), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentPayment(payment))
}
