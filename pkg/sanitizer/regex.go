package sanitizer

import "regexp"

// Go's \D and \s are ASCII only, which is what form input normalization expects.
var (
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
