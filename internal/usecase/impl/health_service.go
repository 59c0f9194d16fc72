package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"erpauth/config"
	deliverycontext "erpauth/internal/delivery/context"
	"erpauth/internal/domain/repository"
	"erpauth/internal/domain/service"
	"erpauth/internal/usecase"
)

const healthPingTimeout = 3 * time.Second

type healthService struct {
	accountRepo repository.AccountRepository
	cfg         *config.Config
	now         service.Clock
	startedAt   time.Time
	logger      *slog.Logger
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Config      *config.Config
	Clock       service.Clock `optional:"true"`
	Logger      *slog.Logger
}

// NewHealthService creates the health usecase. Uptime is measured from construction.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	clock := params.Clock
	if clock == nil {
		clock = service.SystemClock()
	}

	return &healthService{
		accountRepo: params.AccountRepo,
		cfg:         params.Config,
		now:         clock,
		startedAt:   clock(),
		logger:      params.Logger,
	}
}

// Check pings the store with a short timeout.
func (srv *healthService) Check(ctx context.Context) *usecase.HealthReport {
	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	now := srv.now()
	report := &usecase.HealthReport{
		Healthy:     true,
		Environment: srv.cfg.Env.Env,
		Version:     srv.cfg.Env.Version,
		StoreDriver: srv.cfg.Store.Driver,
		Uptime:      now.Sub(srv.startedAt),
		CheckedAt:   now,
	}

	if err := srv.accountRepo.Ping(pingCtx); err != nil {
		report.Healthy = false
		report.StoreError = err
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Store health check failed", slog.Any("error", err))
	}

	return report
}
