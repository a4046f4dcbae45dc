package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/modules/account"
	"github.com/dmitrymomot/signup/modules/billing"
	"github.com/dmitrymomot/signup/modules/landing"
	"github.com/dmitrymomot/signup/pkg/clientip"
	"github.com/dmitrymomot/signup/pkg/environment"
	"github.com/dmitrymomot/signup/pkg/httpserver"
	"github.com/dmitrymomot/signup/pkg/i18n"
	"github.com/dmitrymomot/signup/pkg/metrics"
	"github.com/dmitrymomot/signup/pkg/ratelimiter"
	"github.com/dmitrymomot/signup/pkg/requestid"
	"github.com/dmitrymomot/signup/views"
)

// deps are the long lived components the router is built from.
type deps struct {
	cfg        Config
	log        *slog.Logger
	translator *i18n.Translator
	metrics    *metrics.Metrics
	limiter    *ratelimiter.Bucket
	dispatcher account.Dispatcher
	checks     map[string]httpserver.Check
}

func newRouter(d deps) http.Handler {
	resolver := clientip.Resolver{}
	if d.cfg.TrustProxy {
		resolver.TrustedHeaders = clientip.ProxyHeaders
	}

	v := views.New(d.translator, d.cfg.Views)
	pageErrors := handler.NewErrorHandler(d.log, v.ErrorHandlerConfig())
	apiErrors := handler.NewJSONErrorHandler(d.log)

	limitKey := ratelimiter.Composite(clientip.Key, ratelimiter.Route())
	limitPages := ratelimiter.Middleware(d.limiter, limitKey,
		ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
			pageErrors(handler.NewContext(w, r), handler.ErrTooManyRequests)
		}),
	)
	limitAPI := ratelimiter.Middleware(d.limiter, limitKey,
		ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
			apiErrors(handler.NewContext(w, r), handler.ErrTooManyRequests)
		}),
	)

	accountSvc := account.NewService(v.AccountViews(), d.dispatcher,
		account.WithTranslator(d.translator),
		account.WithRecorder(d.metrics),
		account.WithLogger(d.log),
		account.WithErrorHandler(pageErrors),
		account.WithAPIErrorHandler(apiErrors),
		account.WithSubmitMiddleware(limitPages),
	)
	billingSvc := billing.NewService(v.BillingViews(), d.dispatcher,
		billing.WithTranslator(d.translator),
		billing.WithRecorder(d.metrics),
		billing.WithLogger(d.log),
		billing.WithErrorHandler(pageErrors),
		billing.WithAPIErrorHandler(apiErrors),
		billing.WithSubmitMiddleware(limitPages),
	)
	landingSvc := landing.NewService(v.LandingViews(), pageErrors)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(resolver),
		environment.Middleware(environment.Parse(d.cfg.Env)),
		d.metrics.Middleware,
		i18n.Middleware(d.translator),
	)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		pageErrors(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		pageErrors(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(d.log, d.cfg.ReadyTimeout, d.checks))
	r.Handle("/metrics", d.metrics.Handler())

	landingSvc.Routes(r)
	accountSvc.Routes(r)
	billingSvc.Routes(r)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(limitAPI)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			apiErrors(handler.NewContext(w, r), handler.ErrNotFound)
		})
		accountSvc.API(r)
		billingSvc.API(r)
	})

	return r
}
