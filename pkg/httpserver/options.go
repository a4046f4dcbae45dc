package httpserver

import (
	"log/slog"
	"time"
)

type Option func(*options)

type options struct {
	addr              string
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
	onStart           []func(addr string)
	onStop            []func()
}

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty addr")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return func(o *options) { o.readHeaderTimeout = d }
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { o.readTimeout = d }
}

// WithWriteTimeout bounds a whole response. Datastar responses are short
// lived streams, so the default fits them too.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { o.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) { o.idleTimeout = d }
}

func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: shutdown timeout must be positive")
	}
	return func(o *options) { o.shutdownTimeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStartHook runs h once the listener is bound, with its actual address.
func WithStartHook(h func(addr string)) Option {
	return func(o *options) { o.onStart = append(o.onStart, h) }
}

// WithStopHook runs h after in-flight requests have drained.
func WithStopHook(h func()) Option {
	return func(o *options) { o.onStop = append(o.onStop, h) }
}
