package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"erpauth/internal/domain/entity"
)

// AdminUsecase defines account administration operations.
type AdminUsecase interface {
	Stats(ctx context.Context) (*entity.AccountStats, error)
	SetActive(ctx context.Context, accountID uuid.UUID, active bool) (*entity.Account, error)
}

// HealthReport describes the service and store state.
type HealthReport struct {
	Healthy     bool
	Environment string
	Version     string
	StoreDriver string
	StoreError  error
	Uptime      time.Duration
	CheckedAt   time.Time
}

// HealthUsecase reports liveness of the service and its store.
type HealthUsecase interface {
	Check(ctx context.Context) *HealthReport
}
