package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "gazexpress/internal/delivery/context"
	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"
	"gazexpress/internal/domain/repository"
	"gazexpress/internal/domain/service"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	msgRegistered        = "Inscription réussie."
	msgRegisteredPending = "Inscription réussie. Votre compte est en attente d'approbation par l'administrateur."
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      service.MetricsRecorder
	logger       *slog.Logger
	now          func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input, then creates the account, its credential and
// its role profile in one transaction.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	input.Email = normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("role", input.Role.String()), slog.String("email", input.Email))

	if err := srv.validateRegistration(input); err != nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := buildAccount(input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if input.Role == entity.RoleCourier && input.ZoneID != nil {
			if _, err := repoFactory.ZoneRepo().FindByID(ctx, *input.ZoneID); err != nil {
				if errors.Is(err, repository.ErrZoneNotFound) {
					return domainerrors.NewValidationError("zone", "Zone de livraison invalide.")
				}

				return errors.Wrap(err, "failed to find zone")
			}
		}

		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         account.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.metrics.AccountRegistered(account.Role)
	srv.log(ctx).Info("Registration completed", slog.String("role", account.Role.String()), slog.Any("userID", account.ID))

	message := msgRegistered
	if account.Role.RequiresApproval() {
		message = msgRegisteredPending
	}

	return &usecase.RegisterOutput{Account: account, Message: message}, nil
}

func (srv *accountService) validateRegistration(input *usecase.RegisterInput) error {
	fields := domainerrors.FieldErrors{}

	if input.Email == "" {
		fields["email"] = "L'adresse email est requise."
	}

	switch {
	case input.Role == entity.RoleAdmin:
		fields["role"] = "Impossible de s'inscrire en tant qu'administrateur."
	case !input.Role.IsValid():
		fields["role"] = "Rôle invalide."
	case input.Role == entity.RoleStation:
		if strings.TrimSpace(input.StationName) == "" {
			fields["station_nom"] = "Le nom de la station est requis pour les stations."
		}
	case input.Role == entity.RoleCourier:
		if strings.TrimSpace(input.Vehicle) == "" {
			fields["vehicule"] = "Le type de véhicule est requis pour les livreurs."
		}
		if strings.TrimSpace(input.Plate) == "" {
			fields["immatriculation"] = "L'immatriculation est requise pour les livreurs."
		}
	}

	if input.Password != input.PasswordConfirm {
		fields["password_confirm"] = "Les mots de passe ne correspondent pas."
	} else if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		fields["password"] = err.Error()
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationErrors(fields)
	}

	return nil
}

func buildAccount(input *usecase.RegisterInput) *entity.Account {
	account := entity.NewAccount(input.Email, input.FirstName, input.LastName, input.Role)
	account.Phone = input.Phone
	account.Address = input.Address
	account.Location = input.Location

	switch input.Role {
	case entity.RoleStation:
		address := input.StationAddress
		if address == "" {
			address = input.Address
		}
		phone := input.StationPhone
		if phone == "" {
			phone = input.Phone
		}
		account.StationProfile = &entity.StationProfile{
			Name:         strings.TrimSpace(input.StationName),
			Address:      address,
			Phone:        phone,
			Email:        input.Email,
			OpeningHours: input.StationOpeningHours,
			Location:     input.Location,
		}
	case entity.RoleCourier:
		account.CourierProfile = &entity.CourierProfile{
			Vehicle:       strings.TrimSpace(input.Vehicle),
			Plate:         strings.TrimSpace(input.Plate),
			ZoneID:        input.ZoneID,
			IsAvailable:   true,
			AverageRating: decimal.Zero,
		}
	}

	return account
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login checks the credential and opens a session.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	var authRecord *entity.Authentication
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)

		return translate(err, repository.ErrAuthNotFound, domainerrors.ErrInvalidCredentials, "login failed")
	}); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var (
		account                   *entity.Account
		accessToken, refreshToken string
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = repoFactory.AccountRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return translate(err, repository.ErrAccountNotFound, domainerrors.ErrInvalidCredentials, "failed to load account")
		}
		if !account.IsActive {
			return errors.Wrap(domainerrors.ErrAccountInactive, "login refused")
		}

		accessToken, refreshToken, err = srv.tokenService.GenerateTokens(account.ID, account.Role.String())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		session := &entity.RefreshToken{
			UserID:    account.ID,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := repoFactory.RefreshTokenRepo().CreateRefreshToken(ctx, session); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Debug("Account logged in", slog.Any("userID", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// RefreshToken issues a new access token for a stored, unexpired session.
// The refresh token itself is not rotated.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh with invalid token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var accessToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if session.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}

		account, err := repoFactory.AccountRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return translate(err, repository.ErrAccountNotFound, domainerrors.ErrRefreshTokenInvalid, "failed to find account")
		}
		if !account.IsActive {
			return errors.Wrap(domainerrors.ErrAccountInactive, "refresh refused")
		}

		accessToken, err = srv.tokenService.GenerateAccessToken(account.ID, account.Role.String())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout deletes the stored session. Unknown tokens are ignored.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.RefreshTokenRepo().DeleteRefreshTokenByHash(ctx, tokenHash)
		if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to log out", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile reloads the caller's own account.
func (srv *accountService) GetProfile(ctx context.Context, caller policy.Caller) (*entity.Account, error) {
	if err := authorize(caller, policy.IsAuthenticated, "profile requires authentication"); err != nil {
		return nil, err
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = repoFactory.AccountRepo().FindByID(ctx, caller.AccountID())

		return translate(err, repository.ErrAccountNotFound, domainerrors.ErrAccountNotFound, "failed to load profile")
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateProfile changes the caller's contact fields. Role and approval are not
// reachable from here.
func (srv *accountService) UpdateProfile(ctx context.Context, caller policy.Caller, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	if err := authorize(caller, policy.IsAuthenticated, "profile requires authentication"); err != nil {
		return nil, err
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var err error
		account, err = accountRepo.FindByID(ctx, caller.AccountID())
		if err != nil {
			return translate(err, repository.ErrAccountNotFound, domainerrors.ErrAccountNotFound, "failed to load profile")
		}

		applyContactFields(account, input.FirstName, input.LastName, input.Phone, input.Address, input.Location)
		account.UpdatedAt = srv.now()

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", caller.AccountID()), slog.Any("error", err))

		return nil, err
	}

	return account, nil
}

func applyContactFields(account *entity.Account, firstName, lastName, phone, address *string, location *entity.Coordinates) {
	if firstName != nil {
		account.FirstName = *firstName
	}
	if lastName != nil {
		account.LastName = *lastName
	}
	if phone != nil {
		account.Phone = *phone
	}
	if address != nil {
		account.Address = *address
	}
	if location != nil {
		account.Location = location
	}
}

// ResolveCaller loads the account behind a token subject.
func (srv *accountService) ResolveCaller(ctx context.Context, accountID uuid.UUID) (policy.Caller, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = repoFactory.AccountRepo().FindByID(ctx, accountID)

		return translate(err, repository.ErrAccountNotFound, domainerrors.ErrUnauthenticated, "failed to resolve caller")
	})
	if err != nil {
		return policy.Anonymous, err
	}
	if !account.IsActive {
		return policy.Anonymous, errors.Wrap(domainerrors.ErrAccountInactive, "caller account is inactive")
	}

	return policy.NewCaller(account), nil
}
