package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/locales"
	"github.com/dmitrymomot/signup/pkg/httpserver"
	"github.com/dmitrymomot/signup/pkg/i18n"
	"github.com/dmitrymomot/signup/pkg/metrics"
	"github.com/dmitrymomot/signup/pkg/ratelimiter"
	"github.com/dmitrymomot/signup/svc/submission"
)

type testApp struct {
	handler http.Handler
	sink    *submission.MemorySink
}

func newTestApp(t *testing.T, capacity int, checks map[string]httpserver.Check) testApp {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tr, err := i18n.Load(locales.FS)
	require.NoError(t, err)

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       capacity,
		RefillRate:     1,
		RefillInterval: time.Hour,
	})
	require.NoError(t, err)

	m := metrics.New()
	sink := submission.NewMemorySink()
	dispatcher, err := submission.NewDispatcher([]submission.Sink{sink},
		submission.WithTimeout(time.Second),
		submission.WithLogger(log),
		submission.WithRecorder(m),
	)
	require.NoError(t, err)

	if checks == nil {
		checks = map[string]httpserver.Check{}
	}

	h := newRouter(deps{
		cfg:        Config{Env: "test", ReadyTimeout: time.Second},
		log:        log,
		translator: tr,
		metrics:    m,
		limiter:    limiter,
		dispatcher: dispatcher,
		checks:     checks,
	})
	return testApp{handler: h, sink: sink}
}

func (a testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func registrationForm() *http.Request {
	values := url.Values{
		"firstName":       {"Ann"},
		"lastName":        {"Lee"},
		"email":           {"Ann@Example.com"},
		"phone":           {"555 010 0000"},
		"address":         {"1 Main St"},
		"password":        {"secret123"},
		"confirmPassword": {"secret123"},
	}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRouter_Pages(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, 10, nil)

	t.Run("landing", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/?flash=account_created", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Welcome")
		assert.Contains(t, w.Body.String(), `id="toast-container"`)
	})

	t.Run("spanish landing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
		w := app.do(req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `lang="es"`)
	})

	t.Run("register and login forms", func(t *testing.T) {
		for _, path := range []string{"/register", "/login", "/cards/new"} {
			w := app.do(httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
		}
	})

	t.Run("unknown page", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page not found")
	})
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, 10, nil)

	w := app.do(registrationForm())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?flash=account_created", w.Header().Get("Location"))

	subs := app.sink.All()
	require.Len(t, subs, 1)
	assert.Equal(t, submission.KindRegistration, subs[0].Kind)
	assert.Equal(t, "Ann@example.com", subs[0].Payload["email"])
	assert.NotContains(t, subs[0].Payload, "password")
}

func TestRouter_CardAPI(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, 10, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cards",
		strings.NewReader(`{"cardNumber":"4242424242424242","expiryDate":"1230","cvv":"123","cardholderName":"Ann Lee"}`))
	req.Header.Set("Content-Type", "application/json")
	w := app.do(req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"brand":"visa"`)
	assert.NotContains(t, w.Body.String(), "4242424242424242")

	subs := app.sink.All()
	require.Len(t, subs, 1)
	assert.Equal(t, submission.KindCard, subs[0].Kind)
	assert.NotContains(t, subs[0].Payload, "cvv")
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, 1, nil)

	w := app.do(registrationForm())
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = app.do(registrationForm())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, app.sink.All(), 1)

	// Pages are not limited.
	w = app.do(httptest.NewRequest(http.MethodGet, "/register", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_API(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, 10, nil)

	w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), `"not_found"`)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	t.Run("liveness and metrics", func(t *testing.T) {
		app := newTestApp(t, 10, nil)

		assert.Equal(t, http.StatusOK, app.do(httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code)
		app.do(registrationForm())

		w := app.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signup_submissions_total")
		assert.Contains(t, w.Body.String(), "signup_http_requests_total")
	})

	t.Run("readiness reports failing checks", func(t *testing.T) {
		app := newTestApp(t, 10, map[string]httpserver.Check{
			"redis": func(context.Context) error { return errors.New("down") },
		})

		w := app.do(httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
