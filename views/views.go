// Package views renders the HTML of the signup UI as templ components. Forms
// work as plain HTML posts and are enhanced with datastar attributes: submits
// and the card modal go through datastar actions, and the server answers with
// element and signal patches.
package views

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/modules/account"
	"github.com/dmitrymomot/signup/modules/billing"
	"github.com/dmitrymomot/signup/modules/landing"
	"github.com/dmitrymomot/signup/pkg/i18n"
)

// Config is read from the environment.
type Config struct {
	DatastarURL string `env:"VIEWS_DATASTAR_URL" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"`
	TailwindURL string `env:"VIEWS_TAILWIND_URL" envDefault:"https://cdn.tailwindcss.com"`
}

type Views struct {
	tr  *i18n.Translator
	cfg Config
}

// New returns views translated by tr. A nil tr renders translation keys.
func New(tr *i18n.Translator, cfg Config) *Views {
	return &Views{tr: tr, cfg: cfg}
}

type translateFunc func(key string, args ...string) string

func (v *Views) translator(ctx context.Context) translateFunc {
	if v.tr == nil {
		return func(key string, _ ...string) string { return key }
	}
	lang := i18n.Locale(ctx)
	return func(key string, args ...string) string {
		return v.tr.T(lang, key, args...)
	}
}

// localized defers building a component until render time, when the request
// language is known.
func (v *Views) localized(build func(t translateFunc) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(v.translator(ctx)).Render(ctx, w)
	})
}

// Notices a redirect may ask for with ?flash=. Anything else is ignored.
var flashKeys = map[string]string{
	"account_created": "flash.account_created",
	"login_success":   "flash.login_success",
	"card_added":      "flash.card_added",
}

func (v *Views) LandingViews() landing.Views {
	return landing.Views{Page: v.Landing}
}

func (v *Views) AccountViews() account.Views {
	return account.Views{
		RegisterPage: v.RegisterPage,
		RegisterForm: v.RegisterForm,
		LoginPage:    v.LoginPage,
		LoginForm:    v.LoginForm,
	}
}

func (v *Views) BillingViews() billing.Views {
	return billing.Views{
		CardPage:    v.CardPage,
		CardModal:   v.CardModal,
		CardForm:    v.CardForm,
		ModalClosed: v.ModalClosed,
		CardAdded:   v.CardAdded,
	}
}

// ErrorHandlerConfig plugs the error page and toast into handler.NewErrorHandler.
func (v *Views) ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  v.ErrorPage,
		ErrorToast: v.ErrorToast,
		Translate: func(r *http.Request, key string) string {
			t := v.translator(r.Context())
			full := "errors." + key
			if msg := t(full); msg != full {
				return msg
			}
			return key
		},
		ToastTarget: "#" + toastContainerID,
		ToastMode:   handler.PatchPrepend,
	}
}
