package postgres

import (
	"context"

	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/repository"
	"gazexpress/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// zoneRepository implements the repository.ZoneRepository interface.
type zoneRepository struct {
	db *gorm.DB
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB) repository.ZoneRepository {
	return &zoneRepository{db: db}
}

func (repo *zoneRepository) Create(ctx context.Context, zone *entity.Zone) error {
	zoneM := fromZoneDomain(zone)

	if err := repo.db.WithContext(ctx).Create(zoneM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create zone")
	}

	zone.ID = zoneM.ID
	zone.CreatedAt = zoneM.CreatedAt

	return nil
}

func (repo *zoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error) {
	var zoneM model.ZoneModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrZoneNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toZoneDomain(&zoneM), nil
}

func (repo *zoneRepository) List(ctx context.Context) ([]*entity.Zone, error) {
	var zoneModels []*model.ZoneModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&zoneModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	zones := make([]*entity.Zone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zones = append(zones, toZoneDomain(zoneM))
	}

	return zones, nil
}

func (repo *zoneRepository) Update(ctx context.Context, zone *entity.Zone) error {
	zoneM := fromZoneDomain(zone)

	result := repo.db.WithContext(ctx).
		Model(zoneM).
		Select("name", "delivery_fee", "estimated_delay", "is_active").
		Updates(zoneM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update zone")
	}
	if result.RowsAffected == 0 {
		return repository.ErrZoneNotFound
	}

	return nil
}

func (repo *zoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ZoneModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrZoneNotFound
	}

	return nil
}

// FirstActive returns the oldest active zone.
func (repo *zoneRepository) FirstActive(ctx context.Context) (*entity.Zone, error) {
	var zoneM model.ZoneModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrZoneNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toZoneDomain(&zoneM), nil
}

// --- Mapper Functions ---

func toZoneDomain(data *model.ZoneModel) *entity.Zone {
	if data == nil {
		return nil
	}

	return &entity.Zone{
		ID:             data.ID,
		Name:           data.Name,
		DeliveryFee:    data.DeliveryFee,
		EstimatedDelay: data.EstimatedDelay,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
	}
}

func fromZoneDomain(data *entity.Zone) *model.ZoneModel {
	if data == nil {
		return nil
	}

	return &model.ZoneModel{
		ID:             data.ID,
		Name:           data.Name,
		DeliveryFee:    data.DeliveryFee,
		EstimatedDelay: data.EstimatedDelay,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
	}
}
