package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required rejects empty and whitespace-only values.
func Required(field, value string) Rule {
	return newRule(field, "validation.required", "field is required", func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MinLenString counts characters, not bytes.
func MinLenString(field, value string, min int) Rule {
	return newRule(field, "validation.min_length", fmt.Sprintf("must be at least %d characters long", min),
		func() bool { return utf8.RuneCountInString(value) >= min },
		"min", min,
	)
}

func MaxLenString(field, value string, max int) Rule {
	return newRule(field, "validation.max_length", fmt.Sprintf("must be at most %d characters long", max),
		func() bool { return utf8.RuneCountInString(value) <= max },
		"max", max,
	)
}

// EqualString compares byte for byte, e.g. a password and its confirmation.
func EqualString(field, value, other string) Rule {
	return newRule(field, "validation.mismatch", "values do not match", func() bool {
		return value == other
	})
}
