// Package mongo implements the credential store on MongoDB.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"erpauth/config"
	"erpauth/internal/errors"
)

const (
	defaultCollection     = "accounts"
	defaultConnectTimeout = 10 * time.Second
	defaultRetryInterval  = 2 * time.Second
)

var (
	ErrFailedToConnect   = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)

// Connect creates a client and waits until the server answers a ping,
// retrying up to cfg.RetryAttempts times.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*mongo.Client, error) {
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = defaultRetryInterval
	}
	attempts := max(cfg.RetryAttempts, 1)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if cfg.MaxPoolSize > 0 {
		opts = opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts = opts.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.MaxConnIdleTime > 0 {
		opts = opts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, errors.Join(ErrFailedToConnect, ctx.Err())
			case <-time.After(retryInterval):
			}
		}

		client, err := mongo.Connect(opts)
		if err != nil {
			lastErr = err

			continue
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			lastErr = err
			_ = client.Disconnect(context.WithoutCancel(ctx))

			continue
		}

		return client, nil
	}

	return nil, errors.Join(ErrFailedToConnect, lastErr)
}

// CollectionName returns the configured collection or the default one.
func CollectionName(cfg *config.MongoConfig) string {
	if cfg == nil || cfg.Collection == "" {
		return defaultCollection
	}

	return cfg.Collection
}

// Healthcheck performs a lightweight ping against the primary.
func Healthcheck(ctx context.Context, client *mongo.Client) error {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}

	return nil
}
