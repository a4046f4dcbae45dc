package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/signup/modules/landing"
)

func (v *Views) Landing(p landing.PageParams) templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		return v.layout(t("landing.title"),
			el("main", attrs{"class": "min-h-screen bg-gradient-to-br from-blue-50 to-indigo-50 flex items-center justify-center p-4"},
				el("div", attrs{"class": "max-w-md w-full bg-white rounded-xl shadow-lg p-8 text-center"},
					v.flash(t, p.Flash),
					el("h1", attrs{"class": "text-3xl font-bold text-gray-900"}, text(t("landing.title"))),
					el("p", attrs{"class": "mt-2 text-gray-600"}, text(t("landing.subtitle"))),
					el("div", attrs{"class": "mt-8 space-y-4"},
						el("a", attrs{"href": "/register", "class": primary}, text(t("landing.create_account"))),
						el("a", attrs{"href": "/login", "class": secondary}, text(t("landing.login"))),
					),
					el("p", attrs{"class": "mt-6 text-xs text-gray-500"}, text(t("landing.terms"))),
				),
			),
		)
	})
}
