package validator

import (
	"fmt"
	"regexp"
)

// MatchesPattern validates value against a precompiled expression.
// Empty values are checked like any other input.
func MatchesPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return newRule(field, "validation.regex_pattern", fmt.Sprintf("must match %s pattern", description),
		func() bool { return re.MatchString(value) },
		"pattern", re.String(),
		"description", description,
	)
}

// MatchesRegex compiles pattern on each call. Use MatchesPattern on hot paths.
func MatchesRegex(field, value, pattern, description string) Rule {
	return MatchesPattern(field, value, regexp.MustCompile(pattern), description)
}
