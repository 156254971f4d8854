package impl

import (
	"context"
	"log/slog"
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
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) ListAccounts(ctx context.Context, caller policy.Caller, role *entity.Role) ([]*entity.Account, error) {
	if err := authorize(caller, policy.IsAdmin, "listing accounts requires admin"); err != nil {
		return nil, err
	}
	if role != nil && !role.IsValid() {
		return nil, domainerrors.NewValidationError("role", "Rôle invalide.")
	}

	return srv.listAccounts(ctx, repository.AccountFilter{Role: role})
}

func (srv *adminService) ListPendingApprovals(ctx context.Context, caller policy.Caller) ([]*entity.Account, error) {
	if err := authorize(caller, policy.IsAdmin, "listing pending approvals requires admin"); err != nil {
		return nil, err
	}

	return srv.listAccounts(ctx, repository.AccountFilter{PendingOnly: true})
}

func (srv *adminService) listAccounts(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	var accounts []*entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		accounts, err = repoFactory.AccountRepo().List(ctx, filter)

		return errors.Wrap(err, "failed to list accounts")
	})
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func (srv *adminService) GetAccount(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Account, error) {
	if err := authorize(caller, policy.IsAdmin, "reading accounts requires admin"); err != nil {
		return nil, err
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = repoFactory.AccountRepo().FindByID(ctx, id)

		return translate(err, repository.ErrAccountNotFound, domainerrors.ErrAccountNotFound, "failed to find account")
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateAccount applies an admin edit. The requested approval is applied
// first and the role change second, so entering station or courier always
// ends unapproved.
func (srv *adminService) UpdateAccount(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	if err := authorize(caller, policy.IsAdmin, "updating accounts requires admin"); err != nil {
		return nil, err
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.NewValidationError("role", "Rôle invalide.")
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var err error
		account, err = accountRepo.FindByID(ctx, id)
		if err != nil {
			return translate(err, repository.ErrAccountNotFound, domainerrors.ErrAccountNotFound, "failed to find account")
		}

		applyContactFields(account, input.FirstName, input.LastName, input.Phone, input.Address, input.Location)
		if input.IsActive != nil {
			account.IsActive = *input.IsActive
		}

		approvalTouched := input.IsApproved != nil
		approved := account.IsApproved
		if approvalTouched {
			approved = *input.IsApproved
		}
		if input.Role != nil && *input.Role != account.Role {
			approved = entity.ApprovalAfterRoleChange(account.Role, *input.Role, approved)
			account.Role = *input.Role
			approvalTouched = true
		}
		if approvalTouched {
			account.ApplyApproval(approved)
		}
		account.UpdatedAt = srv.now()

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update account", slog.Any("userID", id), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Account updated", slog.Any("userID", id), slog.String("role", account.Role.String()))

	return account, nil
}

func (srv *adminService) DeleteAccount(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if err := authorize(caller, policy.IsAdmin, "deleting accounts requires admin"); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.AccountRepo().Delete(ctx, id)

		return translate(err, repository.ErrAccountNotFound, domainerrors.ErrAccountNotFound, "failed to delete account")
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Account deleted", slog.Any("userID", id))

	return nil
}

func (srv *adminService) SetApproval(ctx context.Context, caller policy.Caller, id uuid.UUID, approved bool) (*entity.Account, error) {
	if err := authorize(caller, policy.IsAdmin, "approval requires admin"); err != nil {
		return nil, err
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = repoFactory.AccountRepo().FindByID(ctx, id)
		if err != nil {
			return translate(err, repository.ErrAccountNotFound, domainerrors.ErrAccountNotFound, "failed to find account")
		}

		return applyApproval(ctx, repoFactory, account, approved, srv.now())
	})
	if err != nil {
		srv.log(ctx).Error("Failed to set approval", slog.Any("userID", id), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.ApprovalDecided(account.Role, approved)
	srv.log(ctx).Info("Approval decided", slog.Any("userID", id), slog.Bool("approved", approved))

	return account, nil
}

// applyApproval mirrors the decision onto the account and its profile and
// saves both through the account repository.
func applyApproval(ctx context.Context, repoFactory repository.RepositoryFactory, account *entity.Account, approved bool, now time.Time) error {
	account.ApplyApproval(approved)
	account.UpdatedAt = now

	if err := repoFactory.AccountRepo().Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to save approval")
	}

	return nil
}

// Dashboard counts orders by calendar date: today, and since the local
// midnights 7 and 30 days back.
func (srv *adminService) Dashboard(ctx context.Context, caller policy.Caller) (*entity.DashboardStats, error) {
	if err := authorize(caller, policy.IsAdmin, "dashboard requires admin"); err != nil {
		return nil, err
	}

	now := srv.now()
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	windows := repository.ReportWindows{
		DayStart:   today,
		WeekStart:  today.AddDate(0, 0, -7),
		MonthStart: today.AddDate(0, 0, -30),
	}

	var stats *entity.DashboardStats
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		stats, err = repoFactory.ReportRepo().DashboardStats(ctx, windows)

		return errors.Wrap(err, "failed to compute dashboard")
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
