package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gazexpress/internal/delivery/context"
	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"
	"gazexpress/internal/domain/repository"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// zoneService implements the ZoneUsecase interface.
type zoneService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ZoneServiceParams holds dependencies for ZoneService, injected by Fx.
type ZoneServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewZoneService is the constructor for zoneService.
func NewZoneService(params ZoneServiceParams) usecase.ZoneUsecase {
	return &zoneService{txManager: params.TxManager, logger: params.Logger}
}

func (srv *zoneService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *zoneService) List(ctx context.Context, caller policy.Caller) ([]*entity.Zone, error) {
	if err := authorize(caller, policy.IsAuthenticated, "zones require authentication"); err != nil {
		return nil, err
	}

	var zones []*entity.Zone
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		zones, err = repoFactory.ZoneRepo().List(ctx)

		return errors.Wrap(err, "failed to list zones")
	})
	if err != nil {
		return nil, err
	}

	return zones, nil
}

func (srv *zoneService) Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Zone, error) {
	if err := authorize(caller, policy.IsAuthenticated, "zones require authentication"); err != nil {
		return nil, err
	}

	var zone *entity.Zone
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		zone, err = repoFactory.ZoneRepo().FindByID(ctx, id)

		return translate(err, repository.ErrZoneNotFound, domainerrors.ErrZoneNotFound, "failed to find zone")
	})
	if err != nil {
		return nil, err
	}

	return zone, nil
}

func (srv *zoneService) Create(ctx context.Context, caller policy.Caller, input *usecase.ZoneInput) (*entity.Zone, error) {
	if err := authorize(caller, policy.IsAdmin, "creating zones requires admin"); err != nil {
		return nil, err
	}
	if err := validateZoneInput(input, true); err != nil {
		return nil, err
	}

	zone := &entity.Zone{IsActive: true, DeliveryFee: decimal.Zero}
	applyZoneInput(zone, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.ZoneRepo().Create(ctx, zone), "failed to create zone")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Zone created", slog.Any("zoneID", zone.ID), slog.String("name", zone.Name))

	return zone, nil
}

func (srv *zoneService) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.ZoneInput) (*entity.Zone, error) {
	if err := authorize(caller, policy.IsAdmin, "updating zones requires admin"); err != nil {
		return nil, err
	}
	if err := validateZoneInput(input, false); err != nil {
		return nil, err
	}

	var zone *entity.Zone
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		zoneRepo := repoFactory.ZoneRepo()

		var err error
		zone, err = zoneRepo.FindByID(ctx, id)
		if err != nil {
			return translate(err, repository.ErrZoneNotFound, domainerrors.ErrZoneNotFound, "failed to find zone")
		}

		applyZoneInput(zone, input)

		return errors.Wrap(zoneRepo.Update(ctx, zone), "failed to update zone")
	})
	if err != nil {
		return nil, err
	}

	return zone, nil
}

func (srv *zoneService) Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if err := authorize(caller, policy.IsAdmin, "deleting zones requires admin"); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return translate(repoFactory.ZoneRepo().Delete(ctx, id), repository.ErrZoneNotFound, domainerrors.ErrZoneNotFound, "failed to delete zone")
	})
}

func validateZoneInput(input *usecase.ZoneInput, creating bool) error {
	fields := domainerrors.FieldErrors{}
	if (creating && input.Name == nil) || (input.Name != nil && strings.TrimSpace(*input.Name) == "") {
		fields["nom"] = "Le nom de la zone est requis."
	}
	if input.DeliveryFee != nil && input.DeliveryFee.IsNegative() {
		fields["frais_livraison"] = "Les frais de livraison ne peuvent pas être négatifs."
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationErrors(fields)
	}

	return nil
}

func applyZoneInput(zone *entity.Zone, input *usecase.ZoneInput) {
	if input.Name != nil {
		zone.Name = strings.TrimSpace(*input.Name)
	}
	if input.DeliveryFee != nil {
		zone.DeliveryFee = *input.DeliveryFee
	}
	if input.EstimatedDelay != nil {
		zone.EstimatedDelay = *input.EstimatedDelay
	}
	if input.IsActive != nil {
		zone.IsActive = *input.IsActive
	}
}
