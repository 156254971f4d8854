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
	"go.uber.org/fx"
)

// stationService implements the StationUsecase interface.
type stationService struct {
	txManager repository.TransactionManager
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// StationServiceParams holds dependencies for StationService, injected by Fx.
type StationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewStationService is the constructor for stationService.
func NewStationService(params StationServiceParams) usecase.StationUsecase {
	return &stationService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *stationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *stationService) List(ctx context.Context, caller policy.Caller) ([]*entity.StationProfile, error) {
	var stations []*entity.StationProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		stations, err = repoFactory.StationRepo().List(ctx, policy.StationScope(caller))

		return errors.Wrap(err, "failed to list stations")
	})
	if err != nil {
		return nil, err
	}

	return stations, nil
}

func (srv *stationService) Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.StationProfile, error) {
	var station *entity.StationProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		station, err = findVisibleStation(ctx, repoFactory, caller, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return station, nil
}

// Create opens the caller's station profile. It starts unapproved and inactive.
func (srv *stationService) Create(ctx context.Context, caller policy.Caller, input *usecase.StationInput) (*entity.StationProfile, error) {
	if err := authorize(caller, policy.IsStation, "creating a station requires the station role"); err != nil {
		return nil, err
	}
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.NewValidationError("nom", "Le nom de la station est requis.")
	}

	station := &entity.StationProfile{UserID: caller.AccountID()}
	applyStationInput(station, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stationRepo := repoFactory.StationRepo()

		if _, err := stationRepo.FindByUserID(ctx, caller.AccountID()); err == nil {
			return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "station profile already exists")
		} else if !errors.Is(err, repository.ErrStationNotFound) {
			return errors.Wrap(err, "failed to check existing station")
		}

		return errors.Wrap(stationRepo.Create(ctx, station), "failed to create station")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Station profile created", slog.Any("stationID", station.ID), slog.Any("userID", station.UserID))

	return station, nil
}

func (srv *stationService) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.StationInput) (*entity.StationProfile, error) {
	if err := authorize(caller, policy.Any(policy.IsStation, policy.IsAdmin), "updating a station requires the station role"); err != nil {
		return nil, err
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.NewValidationError("nom", "Le nom de la station est requis.")
	}

	var station *entity.StationProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		station, err = findOwnedStation(ctx, repoFactory, caller, id)
		if err != nil {
			return err
		}

		applyStationInput(station, input)

		return errors.Wrap(repoFactory.StationRepo().Update(ctx, station), "failed to update station")
	})
	if err != nil {
		return nil, err
	}

	return station, nil
}

func (srv *stationService) Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if err := authorize(caller, policy.Any(policy.IsStation, policy.IsAdmin), "deleting a station requires the station role"); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findOwnedStation(ctx, repoFactory, caller, id); err != nil {
			return err
		}

		return translate(repoFactory.StationRepo().Delete(ctx, id), repository.ErrStationNotFound, domainerrors.ErrStationNotFound, "failed to delete station")
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Station profile deleted", slog.Any("stationID", id))

	return nil
}

// Approve decides on the station and its owning account together.
func (srv *stationService) Approve(ctx context.Context, caller policy.Caller, id uuid.UUID, approved bool) (*entity.StationProfile, error) {
	if err := authorize(caller, policy.IsAdmin, "approval requires admin"); err != nil {
		return nil, err
	}

	var station *entity.StationProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.StationRepo().FindByID(ctx, id)
		if err != nil {
			return translate(err, repository.ErrStationNotFound, domainerrors.ErrStationNotFound, "failed to find station")
		}

		account, err := repoFactory.AccountRepo().FindByID(ctx, found.UserID)
		if err != nil {
			return translate(err, repository.ErrAccountNotFound, domainerrors.ErrAccountNotFound, "failed to find station owner")
		}
		if account.StationProfile == nil {
			account.StationProfile = found
		}

		if err := applyApproval(ctx, repoFactory, account, approved, srv.now()); err != nil {
			return err
		}
		station = account.StationProfile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to approve station", slog.Any("stationID", id), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.ApprovalDecided(entity.RoleStation, approved)
	srv.log(ctx).Info("Station approval decided", slog.Any("stationID", id), slog.Bool("approved", approved))

	return station, nil
}

func findVisibleStation(ctx context.Context, repoFactory repository.RepositoryFactory, caller policy.Caller, id uuid.UUID) (*entity.StationProfile, error) {
	station, err := repoFactory.StationRepo().FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, repository.ErrStationNotFound, domainerrors.ErrStationNotFound, "failed to find station")
	}
	if !policy.CanSeeStation(caller, station) {
		return nil, errors.Wrap(domainerrors.ErrStationNotFound, "station outside caller scope")
	}

	return station, nil
}

func findOwnedStation(ctx context.Context, repoFactory repository.RepositoryFactory, caller policy.Caller, id uuid.UUID) (*entity.StationProfile, error) {
	station, err := findVisibleStation(ctx, repoFactory, caller, id)
	if err != nil {
		return nil, err
	}
	if !policy.IsOwnerOrAdmin(caller, station) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "station not owned by caller")
	}

	return station, nil
}

func applyStationInput(station *entity.StationProfile, input *usecase.StationInput) {
	if input.Name != nil {
		station.Name = strings.TrimSpace(*input.Name)
	}
	if input.Address != nil {
		station.Address = *input.Address
	}
	if input.Phone != nil {
		station.Phone = *input.Phone
	}
	if input.Email != nil {
		station.Email = *input.Email
	}
	if input.OpeningHours != nil {
		station.OpeningHours = *input.OpeningHours
	}
	if input.Location != nil {
		station.Location = input.Location
	}
}
