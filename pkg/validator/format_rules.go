package validator

import "regexp"

// Something@something.something with a single @ between parts. Whitespace
// follows the browser's notion: ASCII space and controls, vertical tab, every
// Unicode space separator and the byte order mark.
var emailShapeRegex = regexp.MustCompile(`^[^\s\x{0B}\p{Z}\x{FEFF}@]+@[^\s\x{0B}\p{Z}\x{FEFF}@]+\.[^\s\x{0B}\p{Z}\x{FEFF}@]+$`)

// ValidEmail checks the address shape only. It accepts anything a browser-side
// check would accept and does not parse RFC 5322 display names.
func ValidEmail(field, value string) Rule {
	return newRule(field, "validation.email", "must be a valid email address", func() bool {
		return emailShapeRegex.MatchString(value)
	})
}
