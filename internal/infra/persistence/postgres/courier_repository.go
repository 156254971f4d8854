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
	"gorm.io/gorm/clause"
)

var courierColumns = []string{
	"vehicle", "plate", "zone_id", "is_available", "is_approved", "average_rating", "delivered_count",
}

// courierRepository implements the repository.CourierRepository interface.
type courierRepository struct {
	db *gorm.DB
}

// NewCourierRepository is the constructor for courierRepository.
func NewCourierRepository(db *gorm.DB) repository.CourierRepository {
	return &courierRepository{db: db}
}

func (repo *courierRepository) Create(ctx context.Context, courier *entity.CourierProfile) error {
	return createCourier(ctx, repo.db, courier)
}

func (repo *courierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CourierProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *courierRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CourierProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

// List returns couriers with their zone and account attached.
func (repo *courierRepository) List(ctx context.Context, filter repository.CourierFilter) ([]*entity.CourierProfile, error) {
	query := repo.db.WithContext(ctx).Preload("Zone").Order("created_at DESC")
	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.ApprovedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}

	var courierModels []*model.CourierProfileModel
	if err := query.Find(&courierModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	couriers := make([]*entity.CourierProfile, 0, len(courierModels))
	for _, courierM := range courierModels {
		couriers = append(couriers, toCourierDomain(courierM))
	}

	if err := repo.attachAccounts(ctx, couriers); err != nil {
		return nil, err
	}

	return couriers, nil
}

func (repo *courierRepository) Update(ctx context.Context, courier *entity.CourierProfile) error {
	return saveCourier(ctx, repo.db, courier)
}

func (repo *courierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CourierProfileModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourierNotFound
	}

	return nil
}

// IncrementDeliveredCount adds one to the delivered count in a single statement.
func (repo *courierRepository) IncrementDeliveredCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourierProfileModel{}).
		Where("id = ?", id).
		UpdateColumn("delivered_count", gorm.Expr("delivered_count + ?", 1))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment delivered count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourierNotFound
	}

	return nil
}

func (repo *courierRepository) findOne(ctx context.Context, where string, arg any) (*entity.CourierProfile, error) {
	var courierM model.CourierProfileModel

	if err := repo.db.WithContext(ctx).Preload("Zone").Where(where, arg).First(&courierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourierNotFound
		}

		return nil, errors.WithStack(err)
	}

	courier := toCourierDomain(&courierM)
	if err := repo.attachAccounts(ctx, []*entity.CourierProfile{courier}); err != nil {
		return nil, err
	}

	return courier, nil
}

// attachAccounts loads the owning accounts in one query.
func (repo *courierRepository) attachAccounts(ctx context.Context, couriers []*entity.CourierProfile) error {
	if len(couriers) == 0 {
		return nil
	}

	userIDs := make([]uuid.UUID, 0, len(couriers))
	for _, c := range couriers {
		userIDs = append(userIDs, c.UserID)
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&userModels).Error; err != nil {
		return errors.WithStack(err)
	}

	byID := make(map[uuid.UUID]*entity.Account, len(userModels))
	for _, userM := range userModels {
		byID[userM.ID] = toAccountDomain(userM)
	}
	for _, c := range couriers {
		c.Account = byID[c.UserID]
	}

	return nil
}

func createCourier(ctx context.Context, db *gorm.DB, courier *entity.CourierProfile) error {
	courierM := fromCourierDomain(courier)

	if err := db.WithContext(ctx).Omit(clause.Associations).Create(courierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("courier profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or zone reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create courier profile")
	}

	courier.ID = courierM.ID

	return nil
}

func saveCourier(ctx context.Context, db *gorm.DB, courier *entity.CourierProfile) error {
	courierM := fromCourierDomain(courier)

	result := db.WithContext(ctx).Model(courierM).Select(courierColumns).Omit(clause.Associations).Updates(courierM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrZoneNotFound.WrapMessage("invalid zone reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update courier profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourierNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCourierDomain(data *model.CourierProfileModel) *entity.CourierProfile {
	if data == nil {
		return nil
	}

	return &entity.CourierProfile{
		ID:             data.ID,
		UserID:         data.UserID,
		Vehicle:        data.Vehicle,
		Plate:          data.Plate,
		ZoneID:         data.ZoneID,
		Zone:           toZoneDomain(data.Zone),
		IsAvailable:    data.IsAvailable,
		IsApproved:     data.IsApproved,
		AverageRating:  data.AverageRating,
		DeliveredCount: data.DeliveredCount,
	}
}

func fromCourierDomain(data *entity.CourierProfile) *model.CourierProfileModel {
	if data == nil {
		return nil
	}

	return &model.CourierProfileModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Vehicle:        data.Vehicle,
		Plate:          data.Plate,
		ZoneID:         data.ZoneID,
		IsAvailable:    data.IsAvailable,
		IsApproved:     data.IsApproved,
		AverageRating:  data.AverageRating,
		DeliveredCount: data.DeliveredCount,
	}
}
