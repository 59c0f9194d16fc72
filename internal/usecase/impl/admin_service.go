package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "erpauth/internal/delivery/context"
	"erpauth/internal/domain/entity"
	domainerrors "erpauth/internal/domain/errors"
	"erpauth/internal/domain/repository"
	"erpauth/internal/domain/service"
	"erpauth/internal/errors"
	"erpauth/internal/usecase"
)

type adminService struct {
	accountRepo repository.AccountRepository
	now         service.Clock
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Clock       service.Clock `optional:"true"`
	Logger      *slog.Logger
}

// NewAdminService creates the account administration usecase.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	clock := params.Clock
	if clock == nil {
		clock = service.SystemClock()
	}

	return &adminService{
		accountRepo: params.AccountRepo,
		now:         clock,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats returns account counters evaluated at the current time.
func (srv *adminService) Stats(ctx context.Context) (*entity.AccountStats, error) {
	stats, err := srv.accountRepo.Stats(ctx, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account stats")
	}

	return stats, nil
}

// SetActive activates or deactivates an account. Deactivation takes effect on the next
// login or token verification; issued tokens are not revoked.
func (srv *adminService) SetActive(ctx context.Context, accountID uuid.UUID, active bool) (*entity.Account, error) {
	account, err := srv.accountRepo.SetActive(ctx, accountID, active, srv.now())
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("account not found")
		}

		return nil, errors.Wrap(err, "failed to update account status")
	}

	srv.log(ctx).Info("Account status changed",
		slog.String("account_id", account.ID.String()),
		slog.Bool("active", active),
	)

	return account, nil
}
