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

// courierService implements the CourierUsecase interface.
type courierService struct {
	txManager repository.TransactionManager
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// CourierServiceParams holds dependencies for CourierService, injected by Fx.
type CourierServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewCourierService is the constructor for courierService.
func NewCourierService(params CourierServiceParams) usecase.CourierUsecase {
	return &courierService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *courierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *courierService) List(ctx context.Context, caller policy.Caller) ([]*entity.CourierProfile, error) {
	return srv.list(ctx, policy.CourierScope(caller))
}

// ListAvailable returns approved couriers ready to take an order.
func (srv *courierService) ListAvailable(ctx context.Context, caller policy.Caller) ([]*entity.CourierProfile, error) {
	if err := authorize(caller, policy.IsAuthenticated, "available couriers require authentication"); err != nil {
		return nil, err
	}

	return srv.list(ctx, policy.AvailableCourierScope())
}

func (srv *courierService) list(ctx context.Context, filter repository.CourierFilter) ([]*entity.CourierProfile, error) {
	var couriers []*entity.CourierProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		couriers, err = repoFactory.CourierRepo().List(ctx, filter)

		return errors.Wrap(err, "failed to list couriers")
	})
	if err != nil {
		return nil, err
	}

	return couriers, nil
}

func (srv *courierService) Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.CourierProfile, error) {
	var courier *entity.CourierProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		courier, err = findVisibleCourier(ctx, repoFactory, caller, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return courier, nil
}

// Create opens the caller's courier profile. It starts unapproved and available.
func (srv *courierService) Create(ctx context.Context, caller policy.Caller, input *usecase.CourierInput) (*entity.CourierProfile, error) {
	if err := authorize(caller, policy.IsCourier, "creating a courier profile requires the courier role"); err != nil {
		return nil, err
	}
	if err := validateCourierInput(input, true); err != nil {
		return nil, err
	}

	courier := &entity.CourierProfile{
		UserID:        caller.AccountID(),
		IsAvailable:   true,
		AverageRating: decimal.Zero,
	}
	applyCourierInput(courier, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courierRepo := repoFactory.CourierRepo()

		if _, err := courierRepo.FindByUserID(ctx, caller.AccountID()); err == nil {
			return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "courier profile already exists")
		} else if !errors.Is(err, repository.ErrCourierNotFound) {
			return errors.Wrap(err, "failed to check existing courier")
		}

		if err := checkZone(ctx, repoFactory, courier.ZoneID); err != nil {
			return err
		}

		return errors.Wrap(courierRepo.Create(ctx, courier), "failed to create courier")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Courier profile created", slog.Any("courierID", courier.ID), slog.Any("userID", courier.UserID))

	return courier, nil
}

func (srv *courierService) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.CourierInput) (*entity.CourierProfile, error) {
	if err := authorize(caller, policy.Any(policy.IsCourier, policy.IsAdmin), "updating a courier requires the courier role"); err != nil {
		return nil, err
	}
	if err := validateCourierInput(input, false); err != nil {
		return nil, err
	}

	var courier *entity.CourierProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		courier, err = findOwnedCourier(ctx, repoFactory, caller, id)
		if err != nil {
			return err
		}

		applyCourierInput(courier, input)
		if err := checkZone(ctx, repoFactory, input.ZoneID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.CourierRepo().Update(ctx, courier), "failed to update courier")
	})
	if err != nil {
		return nil, err
	}

	return courier, nil
}

func (srv *courierService) Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if err := authorize(caller, policy.Any(policy.IsCourier, policy.IsAdmin), "deleting a courier requires the courier role"); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findOwnedCourier(ctx, repoFactory, caller, id); err != nil {
			return err
		}

		return translate(repoFactory.CourierRepo().Delete(ctx, id), repository.ErrCourierNotFound, domainerrors.ErrCourierNotFound, "failed to delete courier")
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Courier profile deleted", slog.Any("courierID", id))

	return nil
}

// Approve decides on the courier and its owning account together.
func (srv *courierService) Approve(ctx context.Context, caller policy.Caller, id uuid.UUID, approved bool) (*entity.CourierProfile, error) {
	if err := authorize(caller, policy.IsAdmin, "approval requires admin"); err != nil {
		return nil, err
	}

	var courier *entity.CourierProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CourierRepo().FindByID(ctx, id)
		if err != nil {
			return translate(err, repository.ErrCourierNotFound, domainerrors.ErrCourierNotFound, "failed to find courier")
		}

		account, err := repoFactory.AccountRepo().FindByID(ctx, found.UserID)
		if err != nil {
			return translate(err, repository.ErrAccountNotFound, domainerrors.ErrAccountNotFound, "failed to find courier owner")
		}
		if account.CourierProfile == nil {
			account.CourierProfile = found
		}

		if err := applyApproval(ctx, repoFactory, account, approved, srv.now()); err != nil {
			return err
		}
		courier = account.CourierProfile
		courier.Account = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to approve courier", slog.Any("courierID", id), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.ApprovalDecided(entity.RoleCourier, approved)
	srv.log(ctx).Info("Courier approval decided", slog.Any("courierID", id), slog.Bool("approved", approved))

	return courier, nil
}

func findVisibleCourier(ctx context.Context, repoFactory repository.RepositoryFactory, caller policy.Caller, id uuid.UUID) (*entity.CourierProfile, error) {
	courier, err := repoFactory.CourierRepo().FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, repository.ErrCourierNotFound, domainerrors.ErrCourierNotFound, "failed to find courier")
	}
	if !policy.CanSeeCourier(caller, courier) {
		return nil, errors.Wrap(domainerrors.ErrCourierNotFound, "courier outside caller scope")
	}

	return courier, nil
}

func findOwnedCourier(ctx context.Context, repoFactory repository.RepositoryFactory, caller policy.Caller, id uuid.UUID) (*entity.CourierProfile, error) {
	courier, err := findVisibleCourier(ctx, repoFactory, caller, id)
	if err != nil {
		return nil, err
	}
	if !policy.IsOwnerOrAdmin(caller, courier) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "courier not owned by caller")
	}

	return courier, nil
}

func checkZone(ctx context.Context, repoFactory repository.RepositoryFactory, zoneID *uuid.UUID) error {
	if zoneID == nil {
		return nil
	}
	if _, err := repoFactory.ZoneRepo().FindByID(ctx, *zoneID); err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return domainerrors.NewValidationError("zone", "Zone de livraison invalide.")
		}

		return errors.Wrap(err, "failed to find zone")
	}

	return nil
}

func validateCourierInput(input *usecase.CourierInput, creating bool) error {
	fields := domainerrors.FieldErrors{}
	if (creating && input.Vehicle == nil) || (input.Vehicle != nil && strings.TrimSpace(*input.Vehicle) == "") {
		fields["vehicule"] = "Le type de véhicule est requis."
	}
	if (creating && input.Plate == nil) || (input.Plate != nil && strings.TrimSpace(*input.Plate) == "") {
		fields["immatriculation"] = "L'immatriculation est requise."
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationErrors(fields)
	}

	return nil
}

func applyCourierInput(courier *entity.CourierProfile, input *usecase.CourierInput) {
	if input.Vehicle != nil {
		courier.Vehicle = strings.TrimSpace(*input.Vehicle)
	}
	if input.Plate != nil {
		courier.Plate = strings.TrimSpace(*input.Plate)
	}
	if input.ZoneID != nil {
		courier.ZoneID = input.ZoneID
		courier.Zone = nil
	}
	if input.IsAvailable != nil {
		courier.IsAvailable = *input.IsAvailable
	}
}
