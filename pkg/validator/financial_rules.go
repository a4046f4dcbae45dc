package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	expiryRegex = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRegex    = regexp.MustCompile(`^\d{3,4}$`)
)

// CardNumberLength passes when value holds exactly length ASCII digits once
// whitespace is removed. Checksums are not verified.
func CardNumberLength(field, value string, length int) Rule {
	return newRule(field, "validation.card_number", "must be a valid card number",
		func() bool {
			digits := strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}
				return r
			}, value)
			if len(digits) != length {
				return false
			}
			return strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) < 0
		},
		"length", length,
	)
}

// ValidExpiry checks the MM/YY shape only. Month range and expiry in the past
// are accepted.
func ValidExpiry(field, value string) Rule {
	return newRule(field, "validation.expiry_date", "must be in MM/YY format", func() bool {
		return expiryRegex.MatchString(value)
	})
}

func ValidCVV(field, value string) Rule {
	return newRule(field, "validation.cvv", "must be 3 or 4 digits", func() bool {
		return cvvRegex.MatchString(value)
	})
}
