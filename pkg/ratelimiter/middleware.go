package ratelimiter

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"strings"
)

const maxKeyLength = 64

// KeyFunc names the bucket of a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// Composite joins the non-empty keys with ":" and hashes long results.
//
//	ratelimiter.Composite(ratelimiter.Route(), clientip.Key)
func Composite(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if k := fn(r); k != "" {
				parts = append(parts, k)
			}
		}
		key := strings.Join(parts, ":")
		if len(key) <= maxKeyLength {
			return key
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(key))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// Route keys by method and path, so each form gets its own budget.
func Route() KeyFunc {
	return func(r *http.Request) string {
		return r.Method + " " + r.URL.Path
	}
}

type middlewareConfig struct {
	onLimited func(w http.ResponseWriter, r *http.Request, res Result)
	onError   func(w http.ResponseWriter, r *http.Request, err error) bool
}

type MiddlewareOption func(*middlewareConfig)

// WithLimitedHandler renders the rejection. The default writes a plain 429.
func WithLimitedHandler(fn func(w http.ResponseWriter, r *http.Request, res Result)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onLimited = fn
		}
	}
}

// WithStoreErrorHandler decides what happens when the store fails. Returning
// true lets the request through. The default fails open.
func WithStoreErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error) bool) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// Middleware takes one token per request and sets the X-RateLimit-* headers.
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		onLimited: func(w http.ResponseWriter, r *http.Request, res Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(http.ResponseWriter, *http.Request, error) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), k)
			if err != nil {
				if cfg.onError(w, r, err) {
					next.ServeHTTP(w, r)
				}
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				secs := int(math.Ceil(res.RetryAfter().Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(1, secs)))
				cfg.onLimited(w, r, res)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
