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

var stationColumns = []string{
	"name", "address", "phone", "email", "opening_hours",
	"latitude", "longitude", "is_active", "is_approved",
}

// stationRepository implements the repository.StationRepository interface.
type stationRepository struct {
	db *gorm.DB
}

// NewStationRepository is the constructor for stationRepository.
func NewStationRepository(db *gorm.DB) repository.StationRepository {
	return &stationRepository{db: db}
}

func (repo *stationRepository) Create(ctx context.Context, station *entity.StationProfile) error {
	return createStation(ctx, repo.db, station)
}

func (repo *stationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StationProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *stationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StationProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *stationRepository) List(ctx context.Context, filter repository.StationFilter) ([]*entity.StationProfile, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.PublicOnly {
		query = query.Where("is_approved = ? AND is_active = ?", true, true)
	}

	var stationModels []*model.StationProfileModel
	if err := query.Find(&stationModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	stations := make([]*entity.StationProfile, 0, len(stationModels))
	for _, stationM := range stationModels {
		stations = append(stations, toStationDomain(stationM))
	}

	return stations, nil
}

func (repo *stationRepository) Update(ctx context.Context, station *entity.StationProfile) error {
	return saveStation(ctx, repo.db, station)
}

func (repo *stationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StationProfileModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrStationNotFound
	}

	return nil
}

func (repo *stationRepository) findOne(ctx context.Context, where string, arg any) (*entity.StationProfile, error) {
	var stationM model.StationProfileModel

	if err := repo.db.WithContext(ctx).Where(where, arg).First(&stationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStationNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toStationDomain(&stationM), nil
}

func createStation(ctx context.Context, db *gorm.DB, station *entity.StationProfile) error {
	stationM := fromStationDomain(station)

	if err := db.WithContext(ctx).Create(stationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("station profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create station profile")
	}

	station.ID = stationM.ID
	station.CreatedAt = stationM.CreatedAt

	return nil
}

func saveStation(ctx context.Context, db *gorm.DB, station *entity.StationProfile) error {
	stationM := fromStationDomain(station)

	result := db.WithContext(ctx).Model(stationM).Select(stationColumns).Updates(stationM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update station profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStationDomain(data *model.StationProfileModel) *entity.StationProfile {
	if data == nil {
		return nil
	}

	return &entity.StationProfile{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Address:      data.Address,
		Phone:        data.Phone,
		Email:        data.Email,
		OpeningHours: data.OpeningHours,
		Location:     entity.NewCoordinates(data.Latitude, data.Longitude),
		IsActive:     data.IsActive,
		IsApproved:   data.IsApproved,
		CreatedAt:    data.CreatedAt,
	}
}

func fromStationDomain(data *entity.StationProfile) *model.StationProfileModel {
	if data == nil {
		return nil
	}

	lat, lng := splitCoordinates(data.Location)

	return &model.StationProfileModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Address:      data.Address,
		Phone:        data.Phone,
		Email:        data.Email,
		OpeningHours: data.OpeningHours,
		Latitude:     lat,
		Longitude:    lng,
		IsActive:     data.IsActive,
		IsApproved:   data.IsApproved,
		CreatedAt:    data.CreatedAt,
	}
}
