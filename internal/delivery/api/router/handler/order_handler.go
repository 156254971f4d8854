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
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves orders and their lifecycle actions.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest is what a client submits to place an order.
type CreateOrderRequest struct {
	ProductID       uuid.UUID `json:"bouteille_id" validate:"required"`
	Quantity        *int      `json:"quantite"`
	DeliveryAddress string    `json:"adresse_livraison"`
	Notes           string    `json:"notes"`
	LocationRequest
}

// UpdateOrderRequest lists the order fields editable after creation.
type UpdateOrderRequest struct {
	Quantity        *int    `json:"quantite"`
	DeliveryAddress *string `json:"adresse_livraison"`
	Notes           *string `json:"notes"`
	LocationRequest
}

// AssignCourierRequest names the courier to attach.
type AssignCourierRequest struct {
	CourierID uuid.UUID `json:"livreur_id" validate:"required"`
}

// UpdateOrderStatusRequest carries the target status.
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"statut" validate:"required"`
}

// Create places an order for the caller.
func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de commande invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	order, err := h.orderUC.Create(c.Request().Context(), middleware.GetCaller(c), &usecase.CreateOrderInput{
		ProductID:        req.ProductID,
		Quantity:         quantity,
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryLocation: req.coordinates(),
		Notes:            req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentOrder(order))
}

// List returns the orders visible to the caller.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderUC.List(c.Request().Context(), middleware.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentOrders(orders))
}

// Get returns one visible order.
func (h *OrderHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	order, err := h.orderUC.Get(c.Request().Context(), middleware.GetCaller(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentOrder(order))
}

// Update edits an order's quantity, address or notes.
func (h *OrderHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de commande invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Update(c.Request().Context(), middleware.GetCaller(c), id, &usecase.UpdateOrderInput{
		Quantity:         req.Quantity,
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryLocation: req.coordinates(),
		Notes:            req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentOrder(order))
}

// AssignCourier attaches an approved courier to the order.
func (h *OrderHandler) AssignCourier(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	var req AssignCourierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de livreur invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.orderUC.AssignCourier(c.Request().Context(), middleware.GetCaller(c), id, req.CourierID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Livreur assigné avec succès."})
}

// UpdateStatus moves the order along its lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Statut invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.orderUC.UpdateStatus(c.Request().Context(), middleware.GetCaller(c), id, req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Statut mis à jour avec succès."})
}
