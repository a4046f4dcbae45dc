package environment_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signup/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, environment.Production, environment.Parse("PROD"))
	assert.Equal(t, environment.Production, environment.Parse("production"))
	assert.Equal(t, environment.Staging, environment.Parse("stage"))
	assert.Equal(t, environment.Development, environment.Parse(""))
	assert.Equal(t, environment.Development, environment.Parse("qa"))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	h := environment.Middleware(environment.Production)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
		assert.True(t, environment.IsProduction(r.Context()))
		assert.False(t, environment.IsDevelopment(r.Context()))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, environment.Production, got)
}
