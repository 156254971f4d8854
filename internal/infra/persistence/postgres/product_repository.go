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

var productColumns = []string{
	"trade_name", "type", "brand", "price", "stock", "description", "product_code", "available",
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStationNotFound.WrapMessage("invalid station reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).Preload("Station").Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProductDomain(&productM), nil
}

// List returns products matching the scope and catalog filters, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Preload("Station").Order("products.created_at DESC")

	if filter.StationID != nil {
		query = query.Where("products.station_id = ?", *filter.StationID)
	}
	if filter.PublicOnly {
		query = query.
			Joins("JOIN station_profiles ON station_profiles.id = products.station_id").
			Where("products.available = ? AND station_profiles.is_approved = ?", true, true)
	}
	if filter.Type != nil {
		query = query.Where("products.type = ?", string(*filter.Type))
	}
	if filter.Brand != "" {
		query = query.Where("products.brand ILIKE ?", "%"+filter.Brand+"%")
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(productM).Select(productColumns).Omit(clause.Associations).Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		StationID:   data.StationID,
		Station:     toStationDomain(data.Station),
		TradeName:   data.TradeName,
		Type:        entity.ProductType(data.Type),
		Brand:       data.Brand,
		Price:       data.Price,
		Stock:       data.Stock,
		Description: data.Description,
		ProductCode: data.ProductCode,
		Available:   data.Available,
		CreatedAt:   data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		StationID:   data.StationID,
		TradeName:   data.TradeName,
		Type:        string(data.Type),
		Brand:       data.Brand,
		Price:       data.Price,
		Stock:       data.Stock,
		Description: data.Description,
		ProductCode: data.ProductCode,
		Available:   data.Available,
		CreatedAt:   data.CreatedAt,
	}
}
