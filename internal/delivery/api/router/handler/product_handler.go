package handler

import (
	"log/slog"
	"net/http"

	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/response"
	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the bottle catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest is the bottle body for create and update.
type ProductRequest struct {
	TradeName   *string             `json:"nom_commercial"`
	Type        *entity.ProductType `json:"type"`
	Brand       *string             `json:"marque"`
	Price       *decimal.Decimal    `json:"prix"`
	Stock       *int                `json:"stock" validate:"omitempty,gte=0"`
	Description *string             `json:"description"`
	ProductCode *string             `json:"code_produit"`
	Available   *bool               `json:"disponible"`
}

func (r *ProductRequest) input() *usecase.ProductInput {
	return &usecase.ProductInput{
		TradeName:   r.TradeName,
		Type:        r.Type,
		Brand:       r.Brand,
		Price:       r.Price,
		Stock:       r.Stock,
		Description: r.Description,
		ProductCode: r.ProductCode,
		Available:   r.Available,
	}
}

// List returns the catalog visible to the caller, filtered with ?type= and ?marque=.
func (h *ProductHandler) List(c echo.Context) error {
	query := usecase.ProductQuery{Brand: c.QueryParam("marque")}
	if raw := c.QueryParam("type"); raw != "" {
		t := entity.ProductType(raw)
		query.Type = &t
	}

	products, err := h.productUC.List(c.Request().Context(), middleware.GetCaller(c), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentProducts(products))
}

// Get returns one visible bottle.
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrProductNotFound)
	}

	product, err := h.productUC.Get(c.Request().Context(), middleware.GetCaller(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentProduct(product))
}

// Create adds a bottle to the caller's station.
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de bouteille invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Create(c.Request().Context(), middleware.GetCaller(c), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, presentProduct(product))
}

// Update edits one of the caller's bottles.
func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrProductNotFound)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de bouteille invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Update(c.Request().Context(), middleware.GetCaller(c), id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentProduct(product))
}

// Delete removes one of the caller's bottles.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrProductNotFound)
	}

	if err := h.productUC.Delete(c.Request().Context(), middleware.GetCaller(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
