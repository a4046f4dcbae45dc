// Package metrics defines the Prometheus collectors of the signup service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	reg *prometheus.Registry

	ValidationFailures *prometheus.CounterVec
	Submissions        *prometheus.CounterVec
	SubmissionDuration *prometheus.HistogramVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New registers every collector, plus the Go and process collectors, on a
// fresh registry so tests can build as many instances as they need.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "signup_validation_failures_total",
			Help: "Form fields rejected by validation",
		}, []string{"form", "field"}),
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "signup_submissions_total",
			Help: "Validated submissions handed to sinks, by outcome",
		}, []string{"kind", "outcome"}),
		SubmissionDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "signup_submission_duration_seconds",
			Help:    "Time to deliver a submission to all sinks",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "signup_http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "signup_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "route"}),
	}
}

// FieldErrors counts one failure per invalid field of form.
func (m *Metrics) FieldErrors(form string, fields []string) {
	for _, f := range fields {
		m.ValidationFailures.WithLabelValues(form, f).Inc()
	}
}

// Submission records the outcome and latency of one dispatch.
func (m *Metrics) Submission(kind, outcome string, d time.Duration) {
	m.Submissions.WithLabelValues(kind, outcome).Inc()
	m.SubmissionDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Middleware records request counts and latency labelled by the chi route
// pattern, so path parameters do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	return s.ResponseWriter.Write(b)
}

// Flush keeps datastar streams working behind the middleware.
func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
