package landing_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signup/modules/landing"
)

func TestService(t *testing.T) {
	t.Parallel()

	var got landing.PageParams
	svc := landing.NewService(landing.Views{
		Page: func(p landing.PageParams) templ.Component {
			got = p
			return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "welcome")
				return err
			})
		},
	}, nil)

	r := chi.NewRouter()
	svc.Routes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?flash=login_success", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "welcome", w.Body.String())
	assert.Equal(t, "login_success", got.Flash)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}
