package impl

import (
	"context"
	"log/slog"

	deliverycontext "gazexpress/internal/delivery/context"
	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"
	"gazexpress/internal/domain/repository"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager    repository.TransactionManager
	logger       *slog.Logger
	newReference func() string
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:    params.TxManager,
		logger:       params.Logger,
		newReference: entity.NewPaymentReference,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *paymentService) List(ctx context.Context, caller policy.Caller) ([]*entity.Payment, error) {
	if err := authorize(caller, policy.IsAuthenticated, "payments require authentication"); err != nil {
		return nil, err
	}

	var payments []*entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		payments, err = repoFactory.PaymentRepo().List(ctx, policy.PaymentScope(caller))

		return errors.Wrap(err, "failed to list payments")
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (srv *paymentService) Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Payment, error) {
	if err := authorize(caller, policy.IsAuthenticated, "payments require authentication"); err != nil {
		return nil, err
	}

	var payment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		payment, err = repoFactory.PaymentRepo().FindByID(ctx, id)
		if err != nil {
			return translate(err, repository.ErrPaymentNotFound, domainerrors.ErrPaymentNotFound, "failed to find payment")
		}
		if policy.IsAdmin(caller) {
			return nil
		}

		order, err := repoFactory.OrderRepo().FindByID(ctx, payment.OrderID)
		if err != nil {
			return translate(err, repository.ErrOrderNotFound, domainerrors.ErrPaymentNotFound, "failed to find paid order")
		}
		if !policy.IsOwnerOrAdmin(caller, order) {
			return errors.Wrap(domainerrors.ErrPaymentNotFound, "payment outside caller scope")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// Create records the single payment of an order, paid by its client or
// entered by an admin.
func (srv *paymentService) Create(ctx context.Context, caller policy.Caller, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	if err := authorize(caller, policy.IsAuthenticated, "payments require authentication"); err != nil {
		return nil, err
	}
	if !input.Method.IsValid() {
		return nil, domainerrors.NewValidationError("methode", "Méthode de paiement invalide.")
	}
	if input.Amount != nil && !input.Amount.IsPositive() {
		return nil, domainerrors.NewValidationError("montant", "Le montant doit être supérieur à zéro.")
	}

	var payment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := findVisibleOrder(ctx, repoFactory, caller, input.OrderID)
		if err != nil {
			return err
		}
		if !policy.IsOwnerOrAdmin(caller, order) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the client pays an order")
		}

		paymentRepo := repoFactory.PaymentRepo()
		if _, err := paymentRepo.FindByOrderID(ctx, order.ID); err == nil {
			return errors.Wrap(domainerrors.ErrPaymentAlreadyExists, "order already paid")
		} else if !errors.Is(err, repository.ErrPaymentNotFound) {
			return errors.Wrap(err, "failed to check existing payment")
		}

		amount := order.GrandTotal
		if input.Amount != nil {
			amount = *input.Amount
		}
		payment = &entity.Payment{
			OrderID:   order.ID,
			Amount:    amount,
			Method:    input.Method,
			Status:    entity.PaymentStatusPending,
			Reference: srv.newReference(),
		}

		return errors.Wrap(paymentRepo.Create(ctx, payment), "failed to create payment")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create payment", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Payment recorded", slog.Any("paymentID", payment.ID), slog.String("reference", payment.Reference))

	return payment, nil
}

// UpdateStatus changes the payment status only; the order is left alone.
func (srv *paymentService) UpdateStatus(ctx context.Context, caller policy.Caller, id uuid.UUID, status entity.PaymentStatus) (*entity.Payment, error) {
	if err := authorize(caller, policy.IsAdmin, "payment status requires admin"); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError("statut", domainerrors.ErrInvalidStatus.Message())
	}

	var payment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()

		var err error
		payment, err = paymentRepo.FindByID(ctx, id)
		if err != nil {
			return translate(err, repository.ErrPaymentNotFound, domainerrors.ErrPaymentNotFound, "failed to find payment")
		}

		payment.Status = status

		return translate(paymentRepo.Update(ctx, payment), repository.ErrPaymentNotFound, domainerrors.ErrPaymentNotFound, "failed to update payment")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Payment status changed", slog.Any("paymentID", id), slog.String("status", string(status)))

	return payment, nil
}
