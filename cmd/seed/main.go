// Command seed registers the accounts listed in a YAML fixture, skipping those that already exist.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"erpauth/config"
	"erpauth/internal/domain/lifecycle"
	"erpauth/internal/domain/service"
	"erpauth/internal/infra/auth"
	logs "erpauth/internal/infra/log"
	"erpauth/internal/infra/persistence"
	"erpauth/internal/seed"
	"erpauth/internal/usecase/impl"
)

func main() {
	fixturePath := flag.String("fixture", "config/seed.yaml", "path to the YAML account fixture")
	flag.Parse()

	if err := run(*fixturePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fixturePath string) error {
	fixture, err := seed.LoadFixture(fixturePath)
	if err != nil {
		return err
	}

	var seeder *seed.Seeder
	var logger *slog.Logger
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			service.SystemClock,
			persistence.NewAccountRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAuthService,
			seed.NewSeeder,
		),
		fx.Populate(&seeder, &logger),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		if err := app.Stop(stopCtx); err != nil {
			logger.Error("Failed to stop", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := seeder.Run(ctx, fixture.Accounts)
	if err != nil {
		return err
	}

	logger.Info("Seeding finished",
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)

	return nil
}
