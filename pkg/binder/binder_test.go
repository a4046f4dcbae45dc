package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/binder"
)

type cardRequest struct {
	CardNumber string   `form:"cardNumber" json:"cardNumber"`
	CVV        string   `form:"cvv" json:"cvv"`
	Remember   bool     `form:"remember" json:"remember"`
	Tags       []string `form:"tag" json:"tags"`
	Internal   string   `form:"-" json:"-"`
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds urlencoded body", func(t *testing.T) {
		body := url.Values{
			"cardNumber": {"4242 4242"},
			"cvv":        {"123"},
			"remember":   {"on"},
			"tag":        {"a", "b"},
			"Internal":   {"nope"},
		}
		req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got cardRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, cardRequest{CardNumber: "4242 4242", CVV: "123", Remember: true, Tags: []string{"a", "b"}}, got)
	})

	t.Run("binds multipart body", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("cvv", "999"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/cards", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got cardRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "999", got.CVV)
	})

	t.Run("ignores query string on post", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cards?cvv=111", strings.NewReader("cardNumber=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got cardRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Empty(t, got.CVV)
	})

	t.Run("not applicable", func(t *testing.T) {
		var got cardRequest

		get := httptest.NewRequest(http.MethodGet, "/cards/new", nil)
		assert.ErrorIs(t, binder.Form()(get, &got), binder.ErrBinderNotApplicable)

		noType := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader("x"))
		assert.ErrorIs(t, binder.Form()(noType, &got), binder.ErrBinderNotApplicable)

		jsonReq := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader("{}"))
		jsonReq.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, binder.Form()(jsonReq, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("rejects other media types", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader("x"))
		req.Header.Set("Content-Type", "text/plain")

		var got cardRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("rejects bad bool", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader("remember=maybe"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got cardRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrInvalidForm)
	})

	t.Run("rejects non pointer target", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader("cvv=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := binder.Form()(req, cardRequest{})
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	newReq := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/cards", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		return req
	}

	t.Run("binds and strips control characters", func(t *testing.T) {
		var got cardRequest
		require.NoError(t, binder.JSON()(newReq(`{"cardNumber":"4242\u0000","cvv":"123"}`), &got))
		assert.Equal(t, "4242", got.CardNumber)
		assert.Equal(t, "123", got.CVV)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var got cardRequest
		assert.ErrorIs(t, binder.JSON()(newReq(`{"pan":"1"}`), &got), binder.ErrInvalidJSON)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		var got cardRequest
		assert.ErrorIs(t, binder.JSON()(newReq(`{"cvv":"1"}{"cvv":"2"}`), &got), binder.ErrInvalidJSON)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		var got cardRequest
		assert.ErrorIs(t, binder.JSON()(newReq(``), &got), binder.ErrInvalidJSON)
	})

	t.Run("not applicable to forms", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("cvv=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got cardRequest
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrBinderNotApplicable)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("reads body signals and ignores unknown ones", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cards/format",
			strings.NewReader(`{"cardNumber":"42424242","cvv":"12","brand":"visa"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(binder.DatastarRequestHeader, "true")

		var got cardRequest
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "42424242", got.CardNumber)
		assert.Equal(t, "12", got.CVV)
	})

	t.Run("reads query signals on get", func(t *testing.T) {
		q := url.Values{"datastar": {`{"cvv":"777"}`}}
		req := httptest.NewRequest(http.MethodGet, "/cards/new?"+q.Encode(), nil)
		req.Header.Set(binder.DatastarRequestHeader, "true")

		var got cardRequest
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "777", got.CVV)
	})

	t.Run("not applicable without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cards/format", strings.NewReader(`{}`))

		var got cardRequest
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("not applicable to datastar form posts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader("cvv=123"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set(binder.DatastarRequestHeader, "true")

		var got cardRequest
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/cards/format", strings.NewReader(`{`))
		req.Header.Set(binder.DatastarRequestHeader, "true")

		var got cardRequest
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrInvalidSignals)
	})
}
