// Command signup serves the account registration and payment card forms.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/signup/locales"
	"github.com/dmitrymomot/signup/pkg/config"
	"github.com/dmitrymomot/signup/pkg/httpserver"
	"github.com/dmitrymomot/signup/pkg/i18n"
	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/metrics"
	"github.com/dmitrymomot/signup/pkg/ratelimiter"
	"github.com/dmitrymomot/signup/pkg/redis"
	"github.com/dmitrymomot/signup/pkg/requestid"
	"github.com/dmitrymomot/signup/pkg/webhook"
	"github.com/dmitrymomot/signup/svc/submission"
)

var errUnknownLimiterStore = errors.New("unknown rate limit store")

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("signup stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, closeLog := newLogger(cfg)
	defer closeLog()
	logger.SetAsDefault(log)

	tr, err := i18n.Load(locales.FS,
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithMissingLogger(log),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	m := metrics.New()
	checks := map[string]httpserver.Check{}

	store, closeStore, err := newLimiterStore(ctx, cfg, checks)
	if err != nil {
		return err
	}
	defer closeStore()

	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	dispatcher, err := newDispatcher(cfg.Submission, log, m)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string) {
			log.Info("signup ready",
				slog.String("addr", addr),
				slog.String("rate_limit_store", cfg.RateLimitStore),
				slog.Any("languages", tr.Languages()),
			)
		}),
	)

	return srv.Run(ctx, newRouter(deps{
		cfg:        cfg,
		log:        log,
		translator: tr,
		metrics:    m,
		limiter:    limiter,
		dispatcher: dispatcher,
		checks:     checks,
	}))
}

// newLogger follows APP_ENV unless LOG_LEVEL or LOG_FORMAT are set, and tees
// into a rotating file when LOG_FILE is.
func newLogger(cfg Config) (*slog.Logger, func()) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
		logger.WithRedactedKeys("password", "confirmPassword", "cvv"),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}

	closeFn := func() {}
	if fw := logger.NewFileWriter(cfg.LogFile); fw != nil {
		opts = append(opts, logger.WithOutput(io.MultiWriter(os.Stdout, fw)))
		closeFn = func() { _ = fw.Close() }
	}
	return logger.New(opts...), closeFn
}

// newLimiterStore picks the token store. The redis store registers a
// readiness check.
func newLimiterStore(ctx context.Context, cfg Config, checks map[string]httpserver.Check) (ratelimiter.Store, func(), error) {
	switch cfg.RateLimitStore {
	case storeMemory, "":
		s := ratelimiter.NewMemoryStore()
		return s, s.Close, nil
	case storeRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect rate limit store: %w", err)
		}
		checks["redis"] = redis.Healthcheck(client)
		return ratelimiter.NewRedisStore(client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errUnknownLimiterStore, cfg.RateLimitStore)
	}
}

// newDispatcher always logs submissions and forwards them to the webhook when
// one is configured.
func newDispatcher(cfg submission.Config, log *slog.Logger, rec submission.Recorder) (*submission.Dispatcher, error) {
	sinks := []submission.Sink{submission.NewLogSink(log)}

	if cfg.WebhookURL != "" {
		client, err := webhook.New(cfg.WebhookURL,
			webhook.WithSecret(cfg.WebhookSecret),
			webhook.WithMaxRetries(cfg.WebhookRetries),
			webhook.WithBreaker(webhook.NewBreaker(5, 30*time.Second)),
			webhook.OnAttempt(func(a webhook.Attempt) {
				if a.Err != nil {
					log.Warn("webhook attempt failed",
						slog.String("event_id", a.EventID),
						logger.RetryCount(a.Number),
						slog.Int("status_code", a.StatusCode),
						logger.Duration(a.Duration),
						logger.Error(a.Err),
					)
				}
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("webhook sink: %w", err)
		}
		sinks = append(sinks, submission.NewWebhookSink(client))
	}

	return submission.NewDispatcher(sinks,
		submission.WithTimeout(cfg.Timeout),
		submission.WithLogger(log),
		submission.WithRecorder(rec),
	)
}
