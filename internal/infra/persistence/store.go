// Package persistence wires the configured credential store into the application.
package persistence

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"erpauth/config"
	"erpauth/internal/domain/lifecycle"
	"erpauth/internal/domain/repository"
	"erpauth/internal/errors"
	"erpauth/internal/infra/persistence/gormstore"
	"erpauth/internal/infra/persistence/mongo"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewAccountRepository opens the store selected by store.driver and registers its lifecycle hooks.
func NewAccountRepository(params Params) (repository.AccountRepository, error) {
	cfg := params.Config

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := gormstore.OpenPostgres(cfg.Postgres, params.Logger, cfg.Env.Debug)
		if err != nil {
			return nil, err
		}

		return newGormRepository(params, db)
	case config.DriverSQLite:
		db, err := gormstore.OpenSQLite(cfg.SQLite.Path, params.Logger, cfg.Env.Debug)
		if err != nil {
			return nil, err
		}

		return newGormRepository(params, db)
	case config.DriverMongo:
		return newMongoRepository(params)
	default:
		return nil, errors.Wrapf(config.ErrConfigInvalid, "unknown store driver %q", cfg.Store.Driver)
	}
}

func newGormRepository(params Params, db *gorm.DB) (repository.AccountRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	driver := params.Config.Store.Driver
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", driver)
			}

			if params.Config.Store.AutoMigrate {
				if err := gormstore.AutoMigrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger.With(slog.String("driver", driver)), sqlDB, dbPoolMonitorInterval)

			params.Logger.Info("Credential store ready", slog.String("driver", driver))

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return gormstore.NewAccountRepository(db), nil
}

func newMongoRepository(params Params) (repository.AccountRepository, error) {
	cfg := params.Config.Mongo

	connectCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, cfg)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database)
	collection := mongo.CollectionName(cfg)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if !params.Config.Store.AutoMigrate {
				return nil
			}

			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := mongo.EnsureIndexes(ctx, db, collection); err != nil {
				return err
			}
			params.Logger.Info("Credential store ready", slog.String("driver", config.DriverMongo))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return mongo.NewAccountRepository(client, db, collection), nil
}
