package form

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/signup/pkg/validator"
)

// FieldErrors maps a field name to its message. A missing entry means the field is valid.
type FieldErrors map[string]string

// FromValidation converts validator output into FieldErrors, keeping the first
// message per field. Errors that are not validation errors yield an empty map.
func FromValidation(err error) FieldErrors {
	fe := FieldErrors{}
	for _, ve := range validator.ExtractValidationErrors(err) {
		if _, ok := fe[ve.Field]; !ok {
			fe[ve.Field] = ve.Message
		}
	}
	return fe
}

// Translated is like FromValidation but renders each message through t using the
// rule's translation key. t returns the key itself when it has no translation, in
// which case the rule's message is kept.
func Translated(err error, t func(key string, values map[string]any) string) FieldErrors {
	fe := FieldErrors{}
	for _, ve := range validator.ExtractValidationErrors(err) {
		if _, ok := fe[ve.Field]; ok {
			continue
		}
		msg := ve.Message
		if t != nil && ve.TranslationKey != "" {
			if tr := t(ve.TranslationKey, ve.TranslationValues); tr != "" && tr != ve.TranslationKey {
				msg = tr
			}
		}
		fe[ve.Field] = msg
	}
	return fe
}

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Fields returns the invalid field names in sorted order.
func (fe FieldErrors) Fields() []string {
	return slices.Sorted(maps.Keys(fe))
}
