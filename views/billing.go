package views

import (
	"encoding/json"
	"maps"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signup/modules/billing"
)

const cardFormID = "card-form"

// formatOnInput reformats number and expiry through POST /cards/format while
// typing; the response patches the bound signals.
var formatOnInput = attrs{"data-on-input__debounce.150ms": "@post('/cards/format', {contentType: 'form'})"}

func (v *Views) CardPage(p billing.CardParams) templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		return v.layout(t("billing.card.title"),
			el("main", attrs{"class": pageClass},
				el("div", attrs{"class": panelClass},
					el("h1", attrs{"class": titleClass}, text(t("billing.card.title"))),
					v.CardForm(p),
				),
			),
		)
	})
}

// CardModal replaces the #modal slot of the current page.
func (v *Views) CardModal(p billing.CardParams) templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		return el("div", attrs{"id": modalID},
			el("div", attrs{"class": "fixed inset-0 bg-black bg-opacity-50 flex items-center justify-center p-4", "role": "dialog", "aria-modal": "true"},
				el("div", attrs{"class": "bg-white rounded-xl shadow-lg max-w-md w-full p-6"},
					el("div", attrs{"class": "flex items-center justify-between mb-6"},
						el("h2", attrs{"class": "text-xl font-bold text-gray-900"}, text(t("billing.card.title"))),
						actionLink("/cards/close", "text-gray-400 hover:text-gray-500",
							el("span", attrs{"aria-hidden": "true"}, text("×")),
							el("span", attrs{"class": "sr-only"}, text(t("billing.card.close"))),
						),
					),
					v.CardForm(p),
				),
			),
		)
	})
}

// CardForm is the #card-form fragment. The CVV is never written back.
func (v *Views) CardForm(p billing.CardParams) templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		f, errs := p.Form.Fields, p.Form.Errors
		signals, _ := json.Marshal(map[string]string{
			"cardBrand":      string(p.Brand),
			"cardBrandLabel": p.Brand.Label(),
		})

		a := formAttrs(cardFormID, "/cards", "addingCard")
		a["class"] = "space-y-4"
		a["data-signals"] = string(signals)

		return el("form", a,
			field{
				Name: billing.FieldCardNumber, Label: t("billing.card.card_number"), Value: f.CardNumber,
				Placeholder: t("billing.card.card_number_placeholder"), Error: errs.Get(billing.FieldCardNumber), MaxLength: 19,
				Extra: withAttrs(formatOnInput, attrs{"inputmode": "numeric", "autocomplete": "cc-number"}),
			}.render(),
			el("p", attrs{"id": "card-brand", "class": "text-xs text-gray-500", "data-text": "$cardBrandLabel"}, text(p.Brand.Label())),
			el("div", attrs{"class": "grid grid-cols-2 gap-4"},
				field{
					Name: billing.FieldExpiryDate, Label: t("billing.card.expiry_date"), Value: f.ExpiryDate,
					Placeholder: t("billing.card.expiry_date_placeholder"), Error: errs.Get(billing.FieldExpiryDate), MaxLength: 5,
					Extra: withAttrs(formatOnInput, attrs{"inputmode": "numeric", "autocomplete": "cc-exp"}),
				}.render(),
				field{
					Name: billing.FieldCVV, Label: t("billing.card.cvv"),
					Placeholder: t("billing.card.cvv_placeholder"), Error: errs.Get(billing.FieldCVV), MaxLength: 4,
					Extra: attrs{"inputmode": "numeric", "autocomplete": "cc-csc"},
				}.render(),
			),
			field{
				Name: billing.FieldCardholderName, Label: t("billing.card.cardholder_name"), Value: f.CardholderName,
				Placeholder: t("billing.card.cardholder_name_placeholder"), Error: errs.Get(billing.FieldCardholderName),
				Extra: attrs{"autocomplete": "cc-name"},
			}.render(),
			el("div", attrs{"class": "flex space-x-4"},
				submitButton(t("billing.card.submit"), "addingCard"),
				actionLink("/cards/close", secondary, text(t("billing.card.cancel"))),
			),
		)
	})
}

// ModalClosed empties the #modal slot.
func (v *Views) ModalClosed() templ.Component {
	return el("div", attrs{"id": modalID})
}

func (v *Views) CardAdded() templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		return toast("success", t("flash.card_added"))
	})
}

func withAttrs(sets ...attrs) attrs {
	out := attrs{}
	for _, s := range sets {
		maps.Copy(out, s)
	}
	return out
}
