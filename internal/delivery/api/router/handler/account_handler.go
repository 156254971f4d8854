package handler

import (
	"log/slog"
	"net/http"

	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/response"
	"gazexpress/internal/domain/entity"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves registration, sessions and the caller's own profile.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest is the self-registration body. Station and courier fields
// are only read for their role.
type RegisterRequest struct {
	Email           string      `json:"email" validate:"required,email"`
	Password        string      `json:"password" validate:"required"`
	PasswordConfirm string      `json:"password_confirm" validate:"required"`
	LastName        string      `json:"nom"`
	FirstName       string      `json:"prenom"`
	Phone           string      `json:"telephone"`
	Role            entity.Role `json:"role"`
	Address         string      `json:"adresse"`
	LocationRequest

	StationName  string `json:"station_nom"`
	OpeningHours string `json:"horaires"`

	Vehicle string     `json:"vehicule"`
	Plate   string     `json:"immatriculation"`
	ZoneID  *uuid.UUID `json:"zone_id"`
}

// RegisterResponse carries the new account and the confirmation message.
type RegisterResponse struct {
	User    *AccountResponse `json:"user"`
	Message string           `json:"message"`
}

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries both tokens and the logged-in account.
type LoginResponse struct {
	Access  string           `json:"access"`
	Refresh string           `json:"refresh"`
	User    *AccountResponse `json:"user"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse carries a new access token.
type RefreshResponse struct {
	Access string `json:"access"`
}

// UpdateProfileRequest lists the fields an account may change on itself.
type UpdateProfileRequest struct {
	LastName  *string `json:"nom"`
	FirstName *string `json:"prenom"`
	Phone     *string `json:"telephone"`
	Address   *string `json:"adresse"`
	LocationRequest
}

// Register opens a new account.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données d'inscription invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	role := req.Role
	if role == "" {
		role = entity.RoleClient
	}

	out, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:               req.Email,
		Password:            req.Password,
		PasswordConfirm:     req.PasswordConfirm,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Phone:               req.Phone,
		Role:                role,
		Address:             req.Address,
		Location:            req.coordinates(),
		StationName:         req.StationName,
		StationAddress:      req.Address,
		StationPhone:        req.Phone,
		StationOpeningHours: req.OpeningHours,
		Vehicle:             req.Vehicle,
		Plate:               req.Plate,
		ZoneID:              req.ZoneID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		User:    presentAccount(out.Account),
		Message: out.Message,
	})
}

// Login opens a session.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiants invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Access:  out.AccessToken,
		Refresh: out.RefreshToken,
		User:    presentAccount(out.Account),
	})
}

// RefreshToken issues a new access token from a stored refresh token.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Jeton de rafraîchissement invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.Refresh})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RefreshResponse{Access: out.AccessToken})
}

// Logout revokes a refresh token.
func (h *AccountHandler) Logout(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Jeton de rafraîchissement invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.Refresh}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Déconnexion réussie."})
}

// GetProfile returns the caller's account.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	account, err := h.accountUC.GetProfile(c.Request().Context(), middleware.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentAccount(account))
}

// UpdateProfile edits the caller's account.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de profil invalides.")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.UpdateProfile(c.Request().Context(), middleware.GetCaller(c), &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Location:  req.coordinates(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentAccount(account))
}
