package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signup/pkg/sanitizer"
)

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"trim", sanitizer.Trim, "\t a b \n", "a b"},
		{"trim to lower", sanitizer.TrimToLower, "  ABC ", "abc"},
		{"remove whitespace", sanitizer.RemoveWhitespace, " 4242 4242\t42 ", "4242424242"},
		{"remove extra whitespace", sanitizer.RemoveExtraWhitespace, "  a   b \n c ", "a b c"},
		{"remove control chars", sanitizer.RemoveControlChars, "a\x00b\x07c\n", "abc\n"},
		{"keep digits", sanitizer.KeepDigits, "12/3a4-5", "12345"},
		{"keep digits ascii only", sanitizer.KeepDigits, "٣4", "4"},
		{"single line", sanitizer.SingleLine, "12 Main St\r\nApt 4", "12 Main St Apt 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hé", sanitizer.MaxLength("héllo", 2))
	assert.Equal(t, "abc", sanitizer.MaxLength("abc", 5))
	assert.Equal(t, "", sanitizer.MaxLength("abc", 0))
}
