package views

import (
	"maps"
	"strconv"

	"github.com/a-h/templ"
)

const (
	inputClass      = "mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 shadow-sm focus:border-blue-500 focus:outline-none focus:ring-blue-500"
	inputErrorClass = "mt-1 block w-full rounded-md border border-red-500 px-3 py-2 shadow-sm focus:border-red-500 focus:outline-none focus:ring-red-500"
)

// field is one labelled input. Inputs bind a datastar signal of the same
// name, so a re-rendered form keeps what the user typed.
type field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Error       string
	MaxLength   int
	Extra       attrs
}

func (f field) render() templ.Component {
	typ := f.Type
	if typ == "" {
		typ = "text"
	}
	a := attrs{
		"id":          f.Name,
		"name":        f.Name,
		"type":        typ,
		"value":       f.Value,
		"placeholder": f.Placeholder,
		"required":    true,
		"data-bind":   f.Name,
		"class":       inputClass,
	}
	if f.MaxLength > 0 {
		a["maxlength"] = strconv.Itoa(f.MaxLength)
	}
	if f.Error != "" {
		a["class"] = inputErrorClass
		a["aria-invalid"] = "true"
		a["aria-describedby"] = f.Name + "-error"
	}
	maps.Copy(a, f.Extra)

	return el("div", attrs{"class": "relative"},
		el("label", attrs{"for": f.Name, "class": "block text-sm font-medium text-gray-700"}, text(f.Label)),
		void("input", a),
		when(f.Error != "", el("p", attrs{"id": f.Name + "-error", "class": "mt-1 text-sm text-red-600"}, text(f.Error))),
	)
}

// formAttrs posts the form through datastar as form data, so the same binder
// serves enhanced and plain submits. indicator names the signal that is true
// while the request is in flight.
func formAttrs(id, action, indicator string) attrs {
	return attrs{
		"id":                      id,
		"method":                  "post",
		"action":                  action,
		"novalidate":              true,
		"class":                   "space-y-6",
		"data-indicator":          indicator,
		"data-on-submit__prevent": "@post('" + action + "', {contentType: 'form'})",
	}
}

func submitButton(label, indicator string) templ.Component {
	return el("button", attrs{"type": "submit", "class": primary, "data-attr-disabled": "$" + indicator},
		el("span", attrs{"data-show": "!$" + indicator}, text(label)),
		el("span", attrs{
			"data-show":   "$" + indicator,
			"style":       "display: none",
			"class":       "h-5 w-5 animate-spin rounded-full border-2 border-white border-t-transparent",
			"aria-hidden": "true",
		}),
	)
}

// actionLink is a plain link that datastar turns into a GET action.
func actionLink(href, class string, children ...templ.Component) templ.Component {
	return el("a", attrs{
		"href":                   href,
		"class":                  class,
		"data-on-click__prevent": "@get('" + href + "')",
	}, children...)
}
