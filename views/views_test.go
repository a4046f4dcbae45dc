package views_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/locales"
	"github.com/dmitrymomot/signup/modules/account"
	"github.com/dmitrymomot/signup/modules/billing"
	"github.com/dmitrymomot/signup/modules/landing"
	"github.com/dmitrymomot/signup/pkg/form"
	"github.com/dmitrymomot/signup/pkg/i18n"
	"github.com/dmitrymomot/signup/views"
)

func newViews(t *testing.T) *views.Views {
	t.Helper()
	tr, err := i18n.Load(locales.FS)
	require.NoError(t, err)
	return views.New(tr, views.Config{DatastarURL: "/datastar.js"})
}

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, c.Render(ctx, &b))
	return b.String()
}

func spanish() context.Context {
	return i18n.WithLocale(context.Background(), "es")
}

func TestLanding(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	t.Run("english", func(t *testing.T) {
		t.Parallel()
		html := render(t, context.Background(), v.Landing(landing.PageParams{}))

		assert.True(t, len(html) > 15 && html[:15] == "<!DOCTYPE html>")
		assert.Contains(t, html, `<html lang="en">`)
		assert.Contains(t, html, "Welcome")
		assert.Contains(t, html, "Get started with your account")
		assert.Contains(t, html, `href="/register"`)
		assert.Contains(t, html, `href="/login"`)
		assert.Contains(t, html, "By continuing, you agree to our Terms of Service and Privacy Policy.")
		assert.Contains(t, html, `<script src="/datastar.js" type="module"></script>`)
		assert.NotContains(t, html, "tailwind", "empty script url is skipped")
		assert.NotContains(t, html, `id="flash"`)
	})

	t.Run("spanish", func(t *testing.T) {
		t.Parallel()
		html := render(t, spanish(), v.Landing(landing.PageParams{}))

		assert.Contains(t, html, `<html lang="es">`)
		assert.Contains(t, html, "Bienvenido")
	})

	t.Run("known flash", func(t *testing.T) {
		t.Parallel()
		html := render(t, context.Background(), v.Landing(landing.PageParams{Flash: "account_created"}))
		assert.Contains(t, html, "Account created successfully!")
	})

	t.Run("unknown flash is ignored", func(t *testing.T) {
		t.Parallel()
		html := render(t, context.Background(), v.Landing(landing.PageParams{Flash: "<script>alert(1)</script>"}))
		assert.NotContains(t, html, `id="flash"`)
		assert.NotContains(t, html, "alert(1)")
	})
}

func TestRegisterForm(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	st := form.New(account.RegistrationFields{
		FirstName:       "<b>Ann</b>",
		Email:           "ann@",
		Password:        "abc",
		ConfirmPassword: "abd",
	})
	require.False(t, st.Validate(account.ValidateRegistration))

	html := render(t, context.Background(), v.RegisterForm(account.RegisterFormParams{Form: st}))

	assert.Contains(t, html, `<form action="/register"`)
	assert.Contains(t, html, `id="register-form"`)
	assert.Contains(t, html, `data-indicator="registering"`)
	assert.Contains(t, html, "data-on-submit__prevent=")
	assert.Contains(t, html, "Passwords do not match")
	assert.Contains(t, html, "Password must be at least 8 characters")
	assert.Contains(t, html, "Invalid email address")
	assert.Contains(t, html, `id="email-error"`)
	assert.Contains(t, html, `value="&lt;b&gt;Ann&lt;/b&gt;"`)
	assert.Contains(t, html, `value="ann@"`)
	assert.NotContains(t, html, `value="abc"`)
	assert.NotContains(t, html, `value="abd"`)
	assert.Contains(t, html, `href="/cards/new"`)
	assert.Contains(t, html, "Add Credit Card")
	assert.Contains(t, html, "Already have an account? Sign in")
	assert.NotContains(t, html, "<!DOCTYPE html>", "fragment only")
}

func TestRegisterPage(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	html := render(t, context.Background(), v.RegisterPage(account.RegisterPageParams{
		Form:  form.New(account.RegistrationFields{}),
		Flash: "card_added",
	}))

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `id="toast-container"`)
	assert.Contains(t, html, `<div id="modal"></div>`)
	assert.Contains(t, html, "Credit card added successfully!")
	for _, name := range []string{"firstName", "lastName", "email", "phone", "address", "password", "confirmPassword"} {
		assert.Contains(t, html, `name="`+name+`"`)
		assert.Contains(t, html, `data-bind="`+name+`"`)
	}
	assert.Contains(t, html, `type="tel"`)
	assert.NotContains(t, html, "aria-invalid")
}

func TestLoginPage(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	html := render(t, context.Background(), v.LoginPage(account.LoginPageParams{
		Form: form.New(account.LoginFields{Email: "a@b.co", RememberMe: true}),
	}))

	assert.Contains(t, html, `id="login-form"`)
	assert.Contains(t, html, `value="a@b.co"`)
	assert.Contains(t, html, `checked`)
	assert.Contains(t, html, "Remember me")
	assert.Contains(t, html, "Forgot password?")
	assert.Contains(t, html, "Sign in")
	assert.Contains(t, html, "Don&#39;t have an account? Sign up")
}

func TestAttributeRendering(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	html := render(t, context.Background(), v.LoginForm(account.LoginFormParams{
		Form: form.New(account.LoginFields{Email: `a"b@c.co`}),
	}))

	assert.Contains(t, html, ` required`, "true renders a bare attribute")
	assert.NotContains(t, html, `checked`, "false is dropped")
	assert.NotContains(t, html, `="false"`)
	assert.NotContains(t, html, `aria-invalid`)
	assert.Contains(t, html, `value="a&#34;b@c.co"`)
	assert.Contains(t, html, `value=""`, "empty value is kept")
}

func TestCardForm(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	st := form.New(billing.CardFields{CardNumber: "4242424242424242", ExpiryDate: "12", CVV: "1"}.Normalize())
	require.False(t, st.Validate(billing.ValidateCard))

	html := render(t, context.Background(), v.CardForm(billing.CardParams{Form: st, Brand: billing.BrandVisa}))

	assert.Contains(t, html, `id="card-form"`)
	assert.Contains(t, html, `value="4242 4242 4242 4242"`)
	assert.Contains(t, html, `maxlength="19"`)
	assert.Contains(t, html, `maxlength="5"`)
	assert.Contains(t, html, `maxlength="4"`)
	assert.Contains(t, html, `placeholder="MM/YY"`)
	assert.Contains(t, html, "Invalid expiry date")
	assert.Contains(t, html, "Invalid CVV")
	assert.NotContains(t, html, "Invalid card number")
	assert.Contains(t, html, `name="cvv" placeholder="123" required type="text" value=""`)
	assert.Contains(t, html, `data-signals="{&#34;cardBrand&#34;:&#34;visa&#34;,&#34;cardBrandLabel&#34;:&#34;Visa&#34;}"`)
	assert.Contains(t, html, `data-on-input__debounce.150ms=`)
	assert.Contains(t, html, `data-text="$cardBrandLabel"`)
	assert.Contains(t, html, "Add Card")
	assert.Contains(t, html, `href="/cards/close"`)
}

func TestCardModal(t *testing.T) {
	t.Parallel()
	v := newViews(t)
	p := billing.CardParams{Form: form.New(billing.CardFields{})}

	modal := render(t, spanish(), v.CardModal(p))
	assert.Contains(t, modal, `<div id="modal">`)
	assert.Contains(t, modal, `role="dialog"`)
	assert.Contains(t, modal, "Añadir tarjeta")
	assert.Contains(t, modal, `placeholder="MM/AA"`)
	assert.NotContains(t, modal, "<html")

	page := render(t, context.Background(), v.CardPage(p))
	assert.Contains(t, page, "<html")
	assert.Contains(t, page, `id="card-form"`)

	assert.Equal(t, `<div id="modal"></div>`, render(t, context.Background(), v.ModalClosed()))

	toast := render(t, spanish(), v.CardAdded())
	assert.Contains(t, toast, `data-toast="success"`)
	assert.Contains(t, toast, "¡Tarjeta añadida correctamente!")
}

func TestErrorViews(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	t.Run("page", func(t *testing.T) {
		t.Parallel()
		html := render(t, context.Background(), v.ErrorPage(handler.ErrorPageParams{
			Error:      "Too many attempts, please wait a moment",
			StatusCode: http.StatusTooManyRequests,
			RequestID:  "req-1",
			RetryURL:   "/register",
		}))

		assert.Contains(t, html, "429")
		assert.Contains(t, html, "Something went wrong")
		assert.Contains(t, html, "Too many attempts, please wait a moment")
		assert.Contains(t, html, "Request ID: req-1")
		assert.Contains(t, html, `href="/register"`)
	})

	t.Run("toast", func(t *testing.T) {
		t.Parallel()
		html := render(t, context.Background(), v.ErrorToast(handler.ErrorToastParams{Message: "Slow down", Type: "warning"}))
		assert.Contains(t, html, `data-toast="warning"`)
		assert.Contains(t, html, "Slow down")

		html = render(t, context.Background(), v.ErrorToast(handler.ErrorToastParams{Message: "x", Type: "bogus"}))
		assert.Contains(t, html, `data-toast="info"`)
	})

	t.Run("translate", func(t *testing.T) {
		t.Parallel()
		cfg := v.ErrorHandlerConfig()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "Too many attempts, please wait a moment", cfg.Translate(r, "too_many_requests"))
		assert.Equal(t, "no_such_key", cfg.Translate(r, "no_such_key"))

		r = r.WithContext(spanish())
		assert.Equal(t, "Demasiados intentos, espera un momento", cfg.Translate(r, "too_many_requests"))
		assert.Equal(t, "#toast-container", cfg.ToastTarget)
	})
}

func TestAdapters(t *testing.T) {
	t.Parallel()
	v := newViews(t)

	av := v.AccountViews()
	assert.NotNil(t, av.RegisterPage)
	assert.NotNil(t, av.RegisterForm)
	assert.NotNil(t, av.LoginPage)
	assert.NotNil(t, av.LoginForm)

	bv := v.BillingViews()
	assert.NotNil(t, bv.CardPage)
	assert.NotNil(t, bv.CardModal)
	assert.NotNil(t, bv.CardForm)
	assert.NotNil(t, bv.ModalClosed)
	assert.NotNil(t, bv.CardAdded)

	assert.NotNil(t, v.LandingViews().Page)
}

func TestNilTranslatorRendersKeys(t *testing.T) {
	t.Parallel()

	html := render(t, context.Background(), views.New(nil, views.Config{}).Landing(landing.PageParams{}))
	assert.Contains(t, html, "landing.title")
}
