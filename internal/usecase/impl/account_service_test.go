package impl

import (
	"context"
	"testing"
	"time"

	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"
	"gazexpress/internal/domain/repository"
	"gazexpress/internal/domain/service"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccountService(t *testing.T) (*accountService, serviceFixtures) {
	f := newServiceFixtures(t)
	srv := NewAccountService(AccountServiceParams{
		TxManager:    f.txManager,
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Metrics:      f.metrics,
		Logger:       f.logger,
	}).(*accountService)
	srv.now = func() time.Time { return fixedNow }

	return srv, f
}

func TestAccountService_Register_Client(t *testing.T) {
	srv, f := createTestAccountService(t)
	ctx := context.Background()
	f.inTx()

	input := &usecase.RegisterInput{
		Email:           "  Awa.Diallo@Example.com ",
		Password:        "Motdepasse1!",
		PasswordConfirm: "Motdepasse1!",
		FirstName:       "Awa",
		LastName:        "Diallo",
		Role:            entity.RoleClient,
	}
	accountID := uuid.New()

	f.hasher.On("ValidatePasswordStrength", "Motdepasse1!").Return(nil)
	f.hasher.On("Hash", "Motdepasse1!").Return("hashed", nil)
	f.repos.Auths.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "awa.diallo@example.com").
		Return(nil, repository.ErrAuthNotFound)
	f.repos.Accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Account).ID = accountID }).
		Return(nil)
	f.repos.Auths.On("CreateAuthentication", ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.UserID == accountID && auth.PasswordHash == "hashed" && auth.ProviderUserID == "awa.diallo@example.com"
	})).Return(nil)

	output, err := srv.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "awa.diallo@example.com", output.Account.Email)
	assert.True(t, output.Account.IsApproved)
	assert.True(t, output.Account.IsActive)
	assert.Equal(t, msgRegistered, output.Message)
	assert.Equal(t, []entity.Role{entity.RoleClient}, f.metrics.Registrations)
}

func TestAccountService_Register_StationStartsPending(t *testing.T) {
	srv, f := createTestAccountService(t)
	ctx := context.Background()
	f.inTx()

	input := &usecase.RegisterInput{
		Email:           "station@example.com",
		Password:        "Motdepasse1!",
		PasswordConfirm: "Motdepasse1!",
		Role:            entity.RoleStation,
		Phone:           "+221770000000",
		Address:         "Rue 10, Dakar",
		StationName:     " Station Plateau ",
	}

	f.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	f.hasher.On("Hash", input.Password).Return("hashed", nil)
	f.repos.Auths.On("FindAuthentication", ctx, entity.ProviderTypeEmail, input.Email).Return(nil, repository.ErrAuthNotFound)
	f.repos.Accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	f.repos.Auths.On("CreateAuthentication", ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)

	output, err := srv.Register(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Account.IsApproved)
	assert.Equal(t, msgRegisteredPending, output.Message)
	require.NotNil(t, output.Account.StationProfile)
	assert.Equal(t, "Station Plateau", output.Account.StationProfile.Name)
	assert.Equal(t, "Rue 10, Dakar", output.Account.StationProfile.Address)
	assert.Equal(t, input.Email, output.Account.StationProfile.Email)
	assert.False(t, output.Account.StationProfile.IsApproved)
}

func TestAccountService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    usecase.RegisterInput
		strength error
		field    string
	}{
		{
			name:  "admin self registration",
			input: usecase.RegisterInput{Email: "a@example.com", Password: "Motdepasse1!", PasswordConfirm: "Motdepasse1!", Role: entity.RoleAdmin},
			field: "role",
		},
		{
			name:  "unknown role",
			input: usecase.RegisterInput{Email: "a@example.com", Password: "Motdepasse1!", PasswordConfirm: "Motdepasse1!", Role: "gerant"},
			field: "role",
		},
		{
			name:  "passwords differ",
			input: usecase.RegisterInput{Email: "a@example.com", Password: "Motdepasse1!", PasswordConfirm: "Autre1!", Role: entity.RoleClient},
			field: "password_confirm",
		},
		{
			name:     "weak password",
			input:    usecase.RegisterInput{Email: "a@example.com", Password: "court", PasswordConfirm: "court", Role: entity.RoleClient},
			strength: errors.New("Le mot de passe doit contenir au moins 8 caractères."),
			field:    "password",
		},
		{
			name:  "station without name",
			input: usecase.RegisterInput{Email: "a@example.com", Password: "Motdepasse1!", PasswordConfirm: "Motdepasse1!", Role: entity.RoleStation},
			field: "station_nom",
		},
		{
			name:  "courier without vehicle",
			input: usecase.RegisterInput{Email: "a@example.com", Password: "Motdepasse1!", PasswordConfirm: "Motdepasse1!", Role: entity.RoleCourier, Plate: "AB-1"},
			field: "vehicule",
		},
		{
			name:  "courier without plate",
			input: usecase.RegisterInput{Email: "a@example.com", Password: "Motdepasse1!", PasswordConfirm: "Motdepasse1!", Role: entity.RoleCourier, Vehicle: "moto"},
			field: "immatriculation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, f := createTestAccountService(t)
			if tt.input.Password == tt.input.PasswordConfirm {
				f.hasher.On("ValidatePasswordStrength", tt.input.Password).Return(tt.strength)
			}

			input := tt.input
			_, err := srv.Register(context.Background(), &input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			requireFieldError(t, err, tt.field)
		})
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	srv, f := createTestAccountService(t)
	ctx := context.Background()
	f.inTx()

	input := &usecase.RegisterInput{
		Email:           "awa@example.com",
		Password:        "Motdepasse1!",
		PasswordConfirm: "Motdepasse1!",
		Role:            entity.RoleClient,
	}
	f.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	f.hasher.On("Hash", input.Password).Return("hashed", nil)
	f.repos.Auths.On("FindAuthentication", ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	_, err := srv.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
	assert.Empty(t, f.metrics.Registrations)
}

func TestAccountService_Register_CourierUnknownZone(t *testing.T) {
	srv, f := createTestAccountService(t)
	ctx := context.Background()
	f.inTx()

	zoneID := uuid.New()
	input := &usecase.RegisterInput{
		Email:           "livreur@example.com",
		Password:        "Motdepasse1!",
		PasswordConfirm: "Motdepasse1!",
		Role:            entity.RoleCourier,
		Vehicle:         "moto",
		Plate:           "AB-123-CD",
		ZoneID:          &zoneID,
	}
	f.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	f.hasher.On("Hash", input.Password).Return("hashed", nil)
	f.repos.Auths.On("FindAuthentication", ctx, entity.ProviderTypeEmail, input.Email).Return(nil, repository.ErrAuthNotFound)
	f.repos.Zones.On("FindByID", ctx, zoneID).Return(nil, repository.ErrZoneNotFound)

	_, err := srv.Register(ctx, input)

	requireFieldError(t, err, "zone")
}

func TestAccountService_Login_Success(t *testing.T) {
	srv, f := createTestAccountService(t)
	ctx := context.Background()
	f.inTx()

	account := &entity.Account{ID: uuid.New(), Email: "awa@example.com", Role: entity.RoleClient, IsActive: true}
	f.repos.Auths.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "awa@example.com").
		Return(&entity.Authentication{UserID: account.ID, PasswordHash: "hashed"}, nil)
	f.hasher.On("Check", "Motdepasse1!", "hashed").Return(true)
	f.repos.Accounts.On("FindByID", ctx, account.ID).Return(account, nil)
	f.tokens.On("GenerateTokens", account.ID, "client").Return("access", "refresh", nil)
	f.tokens.On("HashToken", "refresh").Return("refresh-hash")
	f.tokens.On("GetRefreshTokenDuration").Return(24 * time.Hour)
	f.repos.RefreshTokens.On("CreateRefreshToken", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == account.ID &&
			token.TokenHash == "refresh-hash" &&
			token.ExpiresAt.Equal(fixedNow.Add(24*time.Hour))
	})).Return(nil)

	output, err := srv.Login(ctx, &usecase.LoginInput{Email: " AWA@example.com", Password: "Motdepasse1!"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, account, output.Account)
}

func TestAccountService_Login_Failures(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.inTx()
		f.repos.Auths.On("FindAuthentication", mock.Anything, entity.ProviderTypeEmail, "nobody@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := srv.Login(context.Background(), &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.inTx()
		f.repos.Auths.On("FindAuthentication", mock.Anything, entity.ProviderTypeEmail, "awa@example.com").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
		f.hasher.On("Check", "wrong", "hashed").Return(false)

		_, err := srv.Login(context.Background(), &usecase.LoginInput{Email: "awa@example.com", Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("inactive account", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.inTx()
		account := &entity.Account{ID: uuid.New(), Role: entity.RoleClient, IsActive: false}
		f.repos.Auths.On("FindAuthentication", mock.Anything, entity.ProviderTypeEmail, "awa@example.com").
			Return(&entity.Authentication{UserID: account.ID, PasswordHash: "hashed"}, nil)
		f.hasher.On("Check", "Motdepasse1!", "hashed").Return(true)
		f.repos.Accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)

		_, err := srv.Login(context.Background(), &usecase.LoginInput{Email: "awa@example.com", Password: "Motdepasse1!"})

		assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
	})
}

func TestAccountService_RefreshToken(t *testing.T) {
	t.Run("issues a new access token", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.inTx()
		account := &entity.Account{ID: uuid.New(), Role: entity.RoleStation, IsActive: true}
		f.tokens.On("ValidateRefreshToken", "refresh").Return(&service.Claims{UserID: account.ID}, nil)
		f.tokens.On("HashToken", "refresh").Return("refresh-hash")
		f.repos.RefreshTokens.On("FindRefreshTokenByHash", mock.Anything, "refresh-hash").
			Return(&entity.RefreshToken{UserID: account.ID}, nil)
		f.repos.Accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)
		f.tokens.On("GenerateAccessToken", account.ID, "station").Return("new-access", nil)

		output, err := srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
	})

	t.Run("rejects a token issued to someone else", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.inTx()
		f.tokens.On("ValidateRefreshToken", "refresh").Return(&service.Claims{UserID: uuid.New()}, nil)
		f.tokens.On("HashToken", "refresh").Return("refresh-hash")
		f.repos.RefreshTokens.On("FindRefreshTokenByHash", mock.Anything, "refresh-hash").
			Return(&entity.RefreshToken{UserID: uuid.New()}, nil)

		_, err := srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("rejects an expired session", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.inTx()
		f.tokens.On("ValidateRefreshToken", "refresh").Return(&service.Claims{UserID: uuid.New()}, nil)
		f.tokens.On("HashToken", "refresh").Return("refresh-hash")
		f.repos.RefreshTokens.On("FindRefreshTokenByHash", mock.Anything, "refresh-hash").
			Return(nil, repository.ErrRefreshTokenExpired)

		_, err := srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.tokens.On("ValidateRefreshToken", "garbage").Return(nil, errors.New("token is malformed"))

		_, err := srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestAccountService_Logout_UnknownTokenIsIgnored(t *testing.T) {
	srv, f := createTestAccountService(t)
	f.inTx()
	f.tokens.On("HashToken", "refresh").Return("refresh-hash")
	f.repos.RefreshTokens.On("DeleteRefreshTokenByHash", mock.Anything, "refresh-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := srv.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "refresh"})

	assert.NoError(t, err)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	srv, f := createTestAccountService(t)
	ctx := context.Background()
	f.inTx()

	caller := clientCaller()
	stored := &entity.Account{ID: caller.AccountID(), Role: entity.RoleClient, FirstName: "Awa", IsActive: true, IsApproved: true}
	f.repos.Accounts.On("FindByID", ctx, caller.AccountID()).Return(stored, nil)
	f.repos.Accounts.On("Update", ctx, stored).Return(nil)

	phone := "+221780000000"
	location := &entity.Coordinates{Latitude: 14.69, Longitude: -17.44}
	account, err := srv.UpdateProfile(ctx, caller, &usecase.UpdateProfileInput{Phone: &phone, Location: location})

	require.NoError(t, err)
	assert.Equal(t, "Awa", account.FirstName)
	assert.Equal(t, phone, account.Phone)
	assert.Equal(t, location, account.Location)
	assert.Equal(t, entity.RoleClient, account.Role)
	assert.Equal(t, fixedNow, account.UpdatedAt)
}

func TestAccountService_GetProfile_Anonymous(t *testing.T) {
	srv, _ := createTestAccountService(t)

	_, err := srv.GetProfile(context.Background(), policy.Anonymous)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAccountService_ResolveCaller(t *testing.T) {
	t.Run("active account", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.inTx()
		account := &entity.Account{ID: uuid.New(), Role: entity.RoleCourier, IsActive: true}
		f.repos.Accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)

		caller, err := srv.ResolveCaller(context.Background(), account.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleCourier, caller.Role())
	})

	t.Run("deleted account", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.inTx()
		id := uuid.New()
		f.repos.Accounts.On("FindByID", mock.Anything, id).Return(nil, repository.ErrAccountNotFound)

		caller, err := srv.ResolveCaller(context.Background(), id)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		assert.False(t, caller.IsAuthenticated())
	})

	t.Run("inactive account", func(t *testing.T) {
		srv, f := createTestAccountService(t)
		f.inTx()
		account := &entity.Account{ID: uuid.New(), Role: entity.RoleClient, IsActive: false}
		f.repos.Accounts.On("FindByID", mock.Anything, account.ID).Return(account, nil)

		_, err := srv.ResolveCaller(context.Background(), account.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
	})
}
