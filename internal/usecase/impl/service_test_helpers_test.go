package impl

import (
	"io"
	"log/slog"
	"time"

	"erpauth/config"
	"erpauth/internal/domain/service"
)

var testNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(allowedDomains ...string) *config.Config {
	cfg := &config.Config{
		Store: config.StoreConfig{Driver: config.DriverSQLite},
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxLoginAttempts:  5,
			LockDuration:      2 * time.Hour,
			TokenTTL:          24 * time.Hour,
			AllowedDomains:    allowedDomains,
			PasswordMinLength: 6,
		},
	}
	cfg.Env.Env = "test"
	cfg.Env.Version = "0.0.1-test"

	return cfg
}

// fixedClock returns a clock pinned to *now so tests can move time.
func fixedClock(now *time.Time) service.Clock {
	return func() time.Time { return *now }
}
