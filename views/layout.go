package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/pkg/i18n"
)

const (
	toastContainerID = "toast-container"
	modalID          = "modal"
)

const (
	pageClass  = "min-h-screen bg-gradient-to-br from-blue-50 to-indigo-50 py-12 px-4 sm:px-6 lg:px-8"
	panelClass = "max-w-md mx-auto bg-white rounded-xl shadow-lg overflow-hidden px-8 py-6"
	titleClass = "text-2xl font-bold text-gray-900 text-center mb-6"
	linkClass  = "text-sm text-blue-600 hover:text-blue-500"
	buttonBase = "w-full flex justify-center py-3 px-4 border rounded-md shadow-sm text-sm font-medium focus:outline-none focus:ring-2 focus:ring-offset-2 transition-colors duration-200"
	primary    = buttonBase + " border-transparent text-white bg-blue-600 hover:bg-blue-700 focus:ring-blue-500 disabled:bg-blue-400"
	secondary  = buttonBase + " border-gray-300 text-gray-700 bg-white hover:bg-gray-50 focus:ring-blue-500 disabled:bg-gray-100"
)

// layout wraps body in the document shell. Every page carries the toast
// container and an empty modal slot for datastar patches.
func (v *Views) layout(title string, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		t := v.translator(ctx)
		page := el("html", attrs{"lang": i18n.Locale(ctx)},
			el("head", nil,
				void("meta", attrs{"charset": "utf-8"}),
				void("meta", attrs{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
				el("title", nil, text(title+" · "+t("app.name"))),
				when(v.cfg.TailwindURL != "", el("script", attrs{"src": v.cfg.TailwindURL})),
				when(v.cfg.DatastarURL != "", el("script", attrs{"type": "module", "src": v.cfg.DatastarURL})),
			),
			el("body", attrs{"class": "antialiased"},
				el("div", attrs{"id": toastContainerID, "class": "fixed top-4 right-4 z-50 space-y-2", "aria-live": "polite"}),
				group(body...),
				el("div", attrs{"id": modalID}),
			),
		)
		return page.Render(ctx, w)
	})
}

func (v *Views) flash(t translateFunc, code string) templ.Component {
	key, ok := flashKeys[code]
	if !ok {
		return nil
	}
	return el("div", attrs{"id": "flash", "role": "status", "class": "mb-4 rounded-md bg-green-50 p-3 text-sm text-green-800"},
		text(t(key)),
	)
}

var toastClasses = map[string]string{
	"success": "bg-green-600",
	"info":    "bg-blue-600",
	"warning": "bg-yellow-500",
	"error":   "bg-red-600",
}

func toast(kind, message string) templ.Component {
	class, ok := toastClasses[kind]
	if !ok {
		kind, class = "info", toastClasses["info"]
	}
	return el("div", attrs{
		"class":      "toast toast-" + kind + " rounded-md px-4 py-3 text-sm text-white shadow-lg " + class,
		"role":       "alert",
		"data-toast": kind,
	}, text(message))
}

// ErrorToast is patched into the toast container for failed datastar actions.
func (v *Views) ErrorToast(p handler.ErrorToastParams) templ.Component {
	return toast(p.Type, p.Message)
}

// ErrorPage is the full page for failed plain requests.
func (v *Views) ErrorPage(p handler.ErrorPageParams) templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		return v.layout(t("errors.title"),
			el("main", attrs{"class": pageClass},
				el("div", attrs{"class": panelClass + " text-center"},
					el("p", attrs{"class": "text-5xl font-bold text-blue-600"}, text(strconv.Itoa(p.StatusCode))),
					el("h1", attrs{"class": "mt-4 " + titleClass}, text(t("errors.title"))),
					el("p", attrs{"class": "text-gray-600"}, text(p.Error)),
					when(p.RequestID != "", el("p", attrs{"class": "mt-2 text-xs text-gray-400"},
						text(t("errors.request_id", "id", p.RequestID)),
					)),
					el("div", attrs{"class": "mt-6 space-y-3"},
						when(p.RetryURL != "", el("a", attrs{"href": p.RetryURL, "class": primary}, text(t("errors.retry")))),
						el("a", attrs{"href": "/", "class": secondary}, text(t("errors.home"))),
					),
				),
			),
		)
	})
}
