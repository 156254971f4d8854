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

var accountColumns = []string{
	"email", "first_name", "last_name", "phone", "role", "address",
	"latitude", "longitude", "is_active", "is_approved", "updated_at",
}

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts the account and any profile attached to it.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	userM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = userM.ID
	account.CreatedAt = userM.CreatedAt
	account.UpdatedAt = userM.UpdatedAt

	if account.StationProfile != nil {
		account.StationProfile.UserID = account.ID
		if err := createStation(ctx, repo.db, account.StationProfile); err != nil {
			return err
		}
	}
	if account.CourierProfile != nil {
		account.CourierProfile.UserID = account.ID
		if err := createCourier(ctx, repo.db, account.CourierProfile); err != nil {
			return err
		}
	}

	return nil
}

// FindByID loads an account with its profiles.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("StationProfile").
		Preload("CourierProfile").
		Preload("CourierProfile.Zone").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&userM), nil
}

// List returns accounts ordered by creation time, newest first.
func (repo *accountRepository) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	query := repo.db.WithContext(ctx).
		Preload("StationProfile").
		Preload("CourierProfile").
		Order("created_at DESC")

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.PendingOnly {
		query = query.Where("role IN ? AND is_approved = ?", []string{entity.RoleStation.String(), entity.RoleCourier.String()}, false)
	}

	var userModels []*model.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	accounts := make([]*entity.Account, 0, len(userModels))
	for _, userM := range userModels {
		accounts = append(accounts, toAccountDomain(userM))
	}

	return accounts, nil
}

// Update saves account fields and attached profiles. Entering the station or
// courier role resets approval, whatever the caller set.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	var stored model.UserModel
	if err := repo.db.WithContext(ctx).Select("id", "role").Where("id = ?", account.ID).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrAccountNotFound
		}

		return errors.WithStack(err)
	}

	account.IsApproved = entity.ApprovalAfterRoleChange(entity.Role(stored.Role), account.Role, account.IsApproved)

	userM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).
		Model(userM).
		Select(accountColumns).
		Omit(clause.Associations).
		Updates(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	account.UpdatedAt = userM.UpdatedAt

	if account.StationProfile != nil {
		if err := saveStation(ctx, repo.db, account.StationProfile); err != nil {
			return err
		}
	}
	if account.CourierProfile != nil {
		if err := saveCourier(ctx, repo.db, account.CourierProfile); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes the account; profiles, credentials and orders cascade.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.UserModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:             data.ID,
		Email:          data.Email,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Phone:          data.Phone,
		Role:           entity.Role(data.Role),
		Address:        data.Address,
		Location:       entity.NewCoordinates(data.Latitude, data.Longitude),
		IsActive:       data.IsActive,
		IsApproved:     data.IsApproved,
		StationProfile: toStationDomain(data.StationProfile),
		CourierProfile: toCourierDomain(data.CourierProfile),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.UserModel {
	if data == nil {
		return nil
	}

	lat, lng := splitCoordinates(data.Location)

	return &model.UserModel{
		ID:         data.ID,
		Email:      data.Email,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Phone:      data.Phone,
		Role:       data.Role.String(),
		Address:    data.Address,
		Latitude:   lat,
		Longitude:  lng,
		IsActive:   data.IsActive,
		IsApproved: data.IsApproved,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func splitCoordinates(c *entity.Coordinates) (lat, lng *float64) {
	if c == nil {
		return nil, nil
	}
	la, lo := c.Latitude, c.Longitude

	return &la, &lo
}
