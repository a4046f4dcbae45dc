package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signup/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("applies transforms in order", func(t *testing.T) {
		got := sanitizer.Apply("  Hello    World  ",
			sanitizer.RemoveExtraWhitespace,
			sanitizer.ToLower,
			func(s string) string { return sanitizer.MaxLength(s, 8) },
		)
		assert.Equal(t, "hello wo", got)
	})

	t.Run("returns value without transforms", func(t *testing.T) {
		assert.Equal(t, "as is", sanitizer.Apply("as is"))
	})

	t.Run("works with non string types", func(t *testing.T) {
		double := func(n int) int { return n * 2 }
		assert.Equal(t, 12, sanitizer.Apply(3, double, double))
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, strings.ToUpper)
	assert.Equal(t, "ABC", clean("  abc "))
	assert.Equal(t, "", clean(""))
}
