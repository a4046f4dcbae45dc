package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength truncates to maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveWhitespace drops every whitespace character.
func RemoveWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, "")
}

// RemoveExtraWhitespace collapses whitespace runs into one space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars keeps printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// KeepDigits keeps only ASCII digits 0-9.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// SingleLine folds line breaks into spaces and normalizes whitespace.
func SingleLine(s string) string {
	return RemoveExtraWhitespace(RemoveControlChars(s))
}
