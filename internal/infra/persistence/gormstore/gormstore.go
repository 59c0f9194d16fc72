// Package gormstore implements the credential store on GORM. The same repository runs on
// PostgreSQL, with optional read replicas, and on SQLite for local development and tests.
package gormstore

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"erpauth/config"
	"erpauth/internal/errors"
	"erpauth/internal/infra/persistence/model"
)

func gormConfig(logger *slog.Logger, driver string, debug bool) *gorm.Config {
	return &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// Multi-statement mutations open an explicit transaction.
		SkipDefaultTransaction: true,
		Logger:                 NewGormLogger(logger, driver, debug),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func postgresDSN(conn config.ConnectionConfig, cfg *config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		conn.Host, conn.Port, conn.UserName, conn.Password, cfg.Database, sslMode)
}

// OpenPostgres connects to the primary and registers any replicas with dbresolver.
// Reads that must observe the latest lockout state pin themselves to the primary.
func OpenPostgres(cfg *config.PostgresConfig, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("postgres config is required")
	}

	db, err := gorm.Open(postgres.Open(postgresDSN(cfg.Master, cfg)), gormConfig(logger, config.DriverPostgres, debug))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PostgreSQL")
	}

	if len(cfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(cfg.Replicas))
		for _, replica := range cfg.Replicas {
			replicas = append(replicas, postgres.Open(postgresDSN(replica, cfg)))
		}

		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})
		if cfg.MaxIdleConns > 0 {
			resolver = resolver.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.MaxOpenConns > 0 {
			resolver = resolver.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			resolver = resolver.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}

		if err := db.Use(resolver); err != nil {
			return nil, errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// OpenSQLite opens a pure-Go SQLite database. ":memory:" yields a private in-memory store.
func OpenSQLite(path string, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig(logger, config.DriverSQLite, debug))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// SQLite serialises writers; a single connection also keeps ":memory:" databases shared.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// AutoMigrate creates or updates the accounts table and its indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.AccountModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate accounts")
	}

	return nil
}
