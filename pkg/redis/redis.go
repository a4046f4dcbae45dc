// Package redis connects go-redis clients from configuration and exposes a
// readiness check for them.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")
	ErrInvalidURL         = errors.New("failed to parse redis connection URL")
	ErrNotReady           = errors.New("redis did not become ready in time")
	ErrHealthcheckFailed  = errors.New("redis healthcheck failed")
)

// Config is only needed when RATE_LIMIT_STORE=redis, so the URL is optional.
type Config struct {
	URL            string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"`
}

// Connect pings the server until it answers, up to RetryAttempts times within
// ConnectTimeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, ErrEmptyConnectionURL
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)
	var lastErr error
	for attempt := range max(1, cfg.RetryAttempts) {
		if attempt > 0 {
			t := time.NewTimer(cfg.RetryInterval)
			select {
			case <-ctx.Done():
				t.Stop()
				_ = client.Close()
				return nil, errors.Join(ErrNotReady, ctx.Err(), lastErr)
			case <-t.C:
			}
		}
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
	}
	_ = client.Close()
	return nil, errors.Join(ErrNotReady, lastErr)
}

// Healthcheck pings client; it plugs into httpserver.Readiness.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
