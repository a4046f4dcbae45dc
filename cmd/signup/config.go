package main

import (
	"time"

	"github.com/dmitrymomot/signup/pkg/httpserver"
	"github.com/dmitrymomot/signup/pkg/logger"
	"github.com/dmitrymomot/signup/pkg/ratelimiter"
	"github.com/dmitrymomot/signup/pkg/redis"
	"github.com/dmitrymomot/signup/svc/submission"
	"github.com/dmitrymomot/signup/views"
)

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"signup"`
	// LogLevel and LogFormat override the environment defaults when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	// TrustProxy resolves client IPs from proxy headers. Enable only behind a proxy that sets them.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`

	RateLimitStore string        `env:"RATE_LIMIT_STORE" envDefault:"memory"`
	ReadyTimeout   time.Duration `env:"READY_TIMEOUT" envDefault:"2s"`

	LogFile    logger.FileConfig
	HTTP       httpserver.Config
	Redis      redis.Config
	RateLimit  ratelimiter.Config
	Submission submission.Config
	Views      views.Config
}
