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

var orderColumns = []string{
	"product_id", "station_id", "courier_id", "quantity", "line_total", "delivery_fee", "grand_total",
	"delivery_address", "delivery_latitude", "delivery_longitude", "status", "notes", "delivered_at",
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create prices the order from the product and inserts it.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if err := repo.price(ctx, order); err != nil {
		return err
	}

	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.preloaded(ctx).Where("orders.id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOrderDomain(&orderM), nil
}

// List returns the orders in scope, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	if filter.None {
		return []*entity.Order{}, nil
	}

	query := repo.preloaded(ctx).Order("orders.created_at DESC")
	if filter.ClientID != nil {
		query = query.Where("orders.client_id = ?", *filter.ClientID)
	}
	if filter.StationID != nil {
		query = query.Where("orders.station_id = ?", *filter.StationID)
	}
	if filter.CourierID != nil {
		query = query.Where("orders.courier_id = ?", *filter.CourierID)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update re-prices the order from the product and saves it.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	if err := repo.price(ctx, order); err != nil {
		return err
	}

	orderM := fromOrderDomain(order)
	result := repo.db.WithContext(ctx).Model(orderM).Select(orderColumns).Omit(clause.Associations).Updates(orderM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// price reads the product's current price through the same handle and derives
// both totals. The station always follows the product.
func (repo *orderRepository) price(ctx context.Context, order *entity.Order) error {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Select("id", "station_id", "price").
		Where("id = ?", order.ProductID).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrProductNotFound
		}

		return errors.WithStack(err)
	}

	order.StationID = productM.StationID
	order.ApplyPricing(productM.Price)

	return nil
}

func (repo *orderRepository) preloaded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Client").
		Preload("Product").
		Preload("Product.Station").
		Preload("Courier").
		Preload("Courier.Zone")
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:               data.ID,
		ClientID:         data.ClientID,
		Client:           toAccountDomain(data.Client),
		ProductID:        data.ProductID,
		Product:          toProductDomain(data.Product),
		StationID:        data.StationID,
		CourierID:        data.CourierID,
		Courier:          toCourierDomain(data.Courier),
		Quantity:         data.Quantity,
		LineTotal:        data.LineTotal,
		DeliveryFee:      data.DeliveryFee,
		GrandTotal:       data.GrandTotal,
		DeliveryAddress:  data.DeliveryAddress,
		DeliveryLocation: entity.NewCoordinates(data.DeliveryLatitude, data.DeliveryLongitude),
		Status:           entity.OrderStatus(data.Status),
		Notes:            data.Notes,
		CreatedAt:        data.CreatedAt,
		DeliveredAt:      data.DeliveredAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lat, lng := splitCoordinates(data.DeliveryLocation)

	return &model.OrderModel{
		ID:                data.ID,
		ClientID:          data.ClientID,
		ProductID:         data.ProductID,
		StationID:         data.StationID,
		CourierID:         data.CourierID,
		Quantity:          data.Quantity,
		LineTotal:         data.LineTotal,
		DeliveryFee:       data.DeliveryFee,
		GrandTotal:        data.GrandTotal,
		DeliveryAddress:   data.DeliveryAddress,
		DeliveryLatitude:  lat,
		DeliveryLongitude: lng,
		Status:            string(data.Status),
		Notes:             data.Notes,
		CreatedAt:         data.CreatedAt,
		DeliveredAt:       data.DeliveredAt,
	}
}
