package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "gazexpress/internal/delivery/context"
	"gazexpress/internal/delivery/api/response"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"
	"gazexpress/internal/domain/service"
	"gazexpress/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	AccountUC    usecase.AccountUsecase
	Logger       *slog.Logger
}

// AuthMiddleware turns a bearer access token into a policy.Caller. Role
// checks are left to the usecases.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:  params.TokenService,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		return m.resolve(c, header, next)
	}
}

// OptionalAuthenticate lets anonymous requests through. A token that is
// present but invalid is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			deliverycontext.SetCaller(c, policy.Anonymous)

			return next(c)
		}

		return m.resolve(c, header, next)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context, header string, next echo.HandlerFunc) error {
	tokenString, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || tokenString == "" {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Format du jeton invalide, utilisez Bearer.")
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return response.Unauthorized(c, "TOKEN_INVALID", "Jeton invalide ou expiré.")
	}

	ctx := c.Request().Context()
	caller, err := m.accountUC.ResolveCaller(ctx, claims.UserID)
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			return errors.Wrap(err, "failed to resolve caller")
		}
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected token subject",
			slog.String("account_id", claims.UserID.String()),
			slog.String("reason", appErr.ErrorCode()),
		)

		return response.HandleAppError(c, err)
	}

	deliverycontext.SetCaller(c, caller)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
		slog.String("account_id", caller.AccountID().String()),
		slog.String("role", caller.Role().String()),
	)
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

	return next(c)
}

// GetCaller returns the caller stored by Authenticate or OptionalAuthenticate.
func GetCaller(c echo.Context) policy.Caller {
	return deliverycontext.GetCaller(c)
}
