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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places a pending order. Only a missing product is refused; catalog
// visibility does not apply. The station follows the product and the fee
// comes from the oldest active zone, or zero when there is none.
func (srv *orderService) Create(ctx context.Context, caller policy.Caller, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := authorize(caller, policy.IsClient, "ordering requires the client role"); err != nil {
		return nil, err
	}
	if err := validateOrderFields(&input.Quantity, &input.DeliveryAddress); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID)
		if err != nil {
			return translate(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to find product")
		}

		fee := decimal.Zero
		zone, err := repoFactory.ZoneRepo().FirstActive(ctx)
		switch {
		case err == nil:
			fee = zone.DeliveryFee
		case !errors.Is(err, repository.ErrZoneNotFound):
			return errors.Wrap(err, "failed to find active zone")
		}

		order = &entity.Order{
			ClientID:         caller.AccountID(),
			ProductID:        product.ID,
			Product:          product,
			StationID:        product.StationID,
			Quantity:         input.Quantity,
			DeliveryFee:      fee,
			DeliveryAddress:  strings.TrimSpace(input.DeliveryAddress),
			DeliveryLocation: input.DeliveryLocation,
			Status:           entity.OrderStatusPending,
			Notes:            input.Notes,
		}
		order.ApplyPricing(product.Price)

		return translate(repoFactory.OrderRepo().Create(ctx, order), repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to create order")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create order", slog.Any("userID", caller.AccountID()), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.OrderCreated()
	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("stationID", order.StationID),
		slog.String("grandTotal", order.GrandTotal.StringFixed(2)))

	return order, nil
}

func (srv *orderService) List(ctx context.Context, caller policy.Caller) ([]*entity.Order, error) {
	if err := authorize(caller, policy.IsAuthenticated, "orders require authentication"); err != nil {
		return nil, err
	}

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.OrderRepo().List(ctx, policy.OrderScope(caller))

		return errors.Wrap(err, "failed to list orders")
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (srv *orderService) Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Order, error) {
	if err := authorize(caller, policy.IsAuthenticated, "orders require authentication"); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = findVisibleOrder(ctx, repoFactory, caller, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// Update edits delivery details or quantity. Totals are re-derived from the
// product's current price when saved.
func (srv *orderService) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	if err := authorize(caller, policy.IsAuthenticated, "orders require authentication"); err != nil {
		return nil, err
	}
	if err := validateOrderFields(input.Quantity, input.DeliveryAddress); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = findVisibleOrder(ctx, repoFactory, caller, id)
		if err != nil {
			return err
		}
		if !policy.IsOwnerOrAdmin(caller, order) {
			return errors.Wrap(domainerrors.ErrForbidden, "order not owned by caller")
		}

		if input.Quantity != nil {
			order.Quantity = *input.Quantity
		}
		if input.DeliveryAddress != nil {
			order.DeliveryAddress = strings.TrimSpace(*input.DeliveryAddress)
		}
		if input.DeliveryLocation != nil {
			order.DeliveryLocation = input.DeliveryLocation
		}
		if input.Notes != nil {
			order.Notes = *input.Notes
		}

		return translate(repoFactory.OrderRepo().Update(ctx, order), repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to update order")
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// AssignCourier sets the courier and moves the order to assigned. The current
// status is not checked and concurrent assignments are last-write-wins.
func (srv *orderService) AssignCourier(ctx context.Context, caller policy.Caller, orderID, courierID uuid.UUID) (*entity.Order, error) {
	if err := authorize(caller, policy.Any(policy.IsAdmin, policy.IsStation), "assigning a courier requires admin or station"); err != nil {
		return nil, err
	}

	var (
		order    *entity.Order
		previous entity.OrderStatus
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = findVisibleOrder(ctx, repoFactory, caller, orderID)
		if err != nil {
			return err
		}
		if !policy.CanAssignCourier(caller, order) {
			return errors.Wrap(domainerrors.ErrForbidden, "order not handled by caller")
		}

		courier, err := repoFactory.CourierRepo().FindByID(ctx, courierID)
		if err != nil {
			return translate(err, repository.ErrCourierNotFound, domainerrors.ErrCourierNotFound, "failed to find courier")
		}
		if !courier.IsApproved {
			return errors.Wrap(domainerrors.ErrCourierNotFound, "courier is not approved")
		}

		previous = order.Status
		order.AssignCourier(courier)

		return translate(repoFactory.OrderRepo().Update(ctx, order), repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to assign courier")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to assign courier", slog.Any("orderID", orderID), slog.Any("courierID", courierID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.CourierAssigned()
	srv.metrics.OrderStatusChanged(previous, order.Status)
	srv.log(ctx).Info("Courier assigned", slog.Any("orderID", orderID), slog.Any("courierID", courierID))

	return order, nil
}

// UpdateStatus applies a status change. Delivering credits the assigned
// courier each time it is requested, in the same transaction as the order write.
func (srv *orderService) UpdateStatus(ctx context.Context, caller policy.Caller, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if err := authorize(caller, policy.IsAuthenticated, "orders require authentication"); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError("statut", domainerrors.ErrInvalidStatus.Message())
	}

	var (
		order    *entity.Order
		previous entity.OrderStatus
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = findVisibleOrder(ctx, repoFactory, caller, orderID)
		if err != nil {
			return err
		}
		if !policy.CanChangeOrderStatus(caller, order, status) {
			return errors.Wrap(domainerrors.ErrForbidden, "status change not allowed for caller")
		}

		previous = order.Status
		if !order.SetStatus(status, srv.now()) {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot move order from %s to %s", previous, status)
		}

		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return translate(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to update order status")
		}

		if status == entity.OrderStatusDelivered && order.CourierID != nil {
			err := repoFactory.CourierRepo().IncrementDeliveredCount(ctx, *order.CourierID)

			return translate(err, repository.ErrCourierNotFound, domainerrors.ErrCourierNotFound, "failed to credit courier")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update order status",
			slog.Any("orderID", orderID),
			slog.String("status", string(status)),
			slog.Any("error", err))

		return nil, err
	}

	srv.metrics.OrderStatusChanged(previous, status)
	srv.log(ctx).Info("Order status changed",
		slog.Any("orderID", orderID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))

	return order, nil
}

func findVisibleOrder(ctx context.Context, repoFactory repository.RepositoryFactory, caller policy.Caller, id uuid.UUID) (*entity.Order, error) {
	order, err := repoFactory.OrderRepo().FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find order")
	}
	if !policy.CanSeeOrder(caller, order) {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order outside caller scope")
	}

	return order, nil
}

func validateOrderFields(quantity *int, address *string) error {
	fields := domainerrors.FieldErrors{}
	if quantity != nil && *quantity < 1 {
		fields["quantite"] = "La quantité doit être au moins 1."
	}
	if address != nil && strings.TrimSpace(*address) == "" {
		fields["adresse_livraison"] = "L'adresse de livraison est requise."
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationErrors(fields)
	}

	return nil
}
