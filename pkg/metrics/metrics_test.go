package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.FieldErrors("card", []string{"cvv", "expiryDate"})
	m.FieldErrors("card", []string{"cvv"})
	m.Submission("registration", "delivered", 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("card", "cvv")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("card", "expiryDate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("registration", "delivered")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SubmissionDuration))
}

func TestMetrics_Middleware(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Post("/cards/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})
	r.Get("/metrics", m.Handler().ServeHTTP)

	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/cards/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/cards/{id}", "422")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, _ := io.ReadAll(w.Body)
	assert.Contains(t, string(body), "signup_http_requests_total")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNew_Independent(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		metrics.New()
		metrics.New()
	})
}
