package handler

import (
	"log/slog"
	"net/http"

	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/response"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/entity"
	"gazexpress/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves account administration and the dashboard.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateAccountRequest lists the fields an admin may change on an account.
type UpdateAccountRequest struct {
	LastName   *string      `json:"nom"`
	FirstName  *string      `json:"prenom"`
	Phone      *string      `json:"telephone"`
	Address    *string      `json:"adresse"`
	Role       *entity.Role `json:"role"`
	IsApproved *bool        `json:"is_approved"`
	IsActive   *bool        `json:"is_active"`
	LocationRequest
}

// ListAccounts lists accounts, optionally filtered with ?role=.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	var role *entity.Role
	if raw := c.QueryParam("role"); raw != "" {
		r := entity.Role(raw)
		role = &r
	}

	accounts, err := h.adminUC.ListAccounts(c.Request().Context(), middleware.GetCaller(c), role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentAccounts(accounts))
}

// GetAccount returns one account.
func (h *AdminHandler) GetAccount(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAccountNotFound)
	}

	account, err := h.adminUC.GetAccount(c.Request().Context(), middleware.GetCaller(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentAccount(account))
}

// UpdateAccount edits any account.
func (h *AdminHandler) UpdateAccount(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAccountNotFound)
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données utilisateur invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.adminUC.UpdateAccount(c.Request().Context(), middleware.GetCaller(c), id, &usecase.UpdateAccountInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		Location:   req.coordinates(),
		Role:       req.Role,
		IsApproved: req.IsApproved,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentAccount(account))
}

// DeleteAccount removes an account.
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAccountNotFound)
	}

	if err := h.adminUC.DeleteAccount(c.Request().Context(), middleware.GetCaller(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ApproveAccount approves or rejects an account.
func (h *AdminHandler) ApproveAccount(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAccountNotFound)
	}

	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Décision d'approbation invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.adminUC.SetApproval(c.Request().Context(), middleware.GetCaller(c), id, *req.Approved); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: approvalMessage("Utilisateur", false, *req.Approved)})
}

// PendingApprovals lists station and courier accounts awaiting a decision.
func (h *AdminHandler) PendingApprovals(c echo.Context) error {
	accounts, err := h.adminUC.ListPendingApprovals(c.Request().Context(), middleware.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentAccounts(accounts))
}

// Dashboard returns the reporting aggregates.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminUC.Dashboard(c.Request().Context(), middleware.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentDashboard(stats))
}
