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

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPaymentAlreadyExists.WrapMessage("payment already recorded")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *paymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	return repo.findOne(ctx, "order_id = ?", orderID)
}

// List returns the payments in scope, newest first.
func (repo *paymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	if filter.None {
		return []*entity.Payment{}, nil
	}

	query := repo.db.WithContext(ctx).Order("payments.created_at DESC")
	if filter.ClientID != nil {
		query = query.
			Joins("JOIN orders ON orders.id = payments.order_id").
			Where("orders.client_id = ?", *filter.ClientID)
	}

	var paymentModels []*model.PaymentModel
	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	result := repo.db.WithContext(ctx).
		Model(paymentM).
		Select("amount", "method", "status").
		Omit(clause.Associations).
		Updates(paymentM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

func (repo *paymentRepository) findOne(ctx context.Context, where string, arg any) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).Where(where, arg).First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPaymentDomain(&paymentM), nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Amount:    data.Amount,
		Method:    entity.PaymentMethod(data.Method),
		Status:    entity.PaymentStatus(data.Status),
		Reference: data.Reference,
		CreatedAt: data.CreatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Amount:    data.Amount,
		Method:    string(data.Method),
		Status:    string(data.Status),
		Reference: data.Reference,
		CreatedAt: data.CreatedAt,
	}
}
