package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signup/pkg/validator"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"required empty", validator.Required("f", ""), false},
		{"required spaces", validator.Required("f", "   "), false},
		{"required value", validator.Required("f", "x"), true},
		{"min len exact", validator.MinLenString("f", "12345678", 8), true},
		{"min len short", validator.MinLenString("f", "1234567", 8), false},
		{"min len counts runes", validator.MinLenString("f", "ñññññññ", 8), false},
		{"min len multibyte ok", validator.MinLenString("f", "пароль12", 8), true},
		{"max len", validator.MaxLenString("f", "ab", 2), true},
		{"max len over", validator.MaxLenString("f", "abc", 2), false},
		{"equal", validator.EqualString("f", "secret", "secret"), true},
		{"equal is case sensitive", validator.EqualString("f", "Secret", "secret"), false},
		{"equal empty", validator.EqualString("f", "", ""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}

func TestMatchesPattern(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^a+$`)
	assert.True(t, validator.MatchesPattern("f", "aaa", re, "a").Check())
	assert.False(t, validator.MatchesPattern("f", "", re, "a").Check())
	assert.True(t, validator.MatchesRegex("f", "", `^$`, "empty").Check())

	rule := validator.MatchesPattern("f", "b", re, "letters")
	assert.Equal(t, "must match letters pattern", rule.Error.Message)
	assert.Equal(t, `^a+$`, rule.Error.TranslationValues["pattern"])
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.co", "user.name+tag@example.com", "x@y.z.w"}
	invalid := []string{
		"", "a@b@c.d", "plain", "a@b", "a b@c.d", "@b.c", "a@.", "a@b.",
		"jane\u00a0doe@example.com",
		"jane\vdoe@example.com",
		"jane@exa\u2003mple.com",
		"jane@example.com\ufeff",
		"jane\u2028doe@example.com",
		"jane@example.co\u3000m",
	}

	for _, v := range valid {
		assert.True(t, validator.ValidEmail("email", v).Check(), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.ValidEmail("email", v).Check(), v)
	}
}

func TestCardNumberLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"4242 4242 4242 4242", true},
		{"4242424242424242", true},
		{" 4242\t4242 4242 4242 ", true},
		{"4242 4242 4242 424", false},
		{"4242 4242 4242 42424", false},
		{"4242-4242-4242-4242", false},
		{"4242 4242 4242 424a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.CardNumberLength("cardNumber", tt.value, 16).Check())
		})
	}
}

func TestExpiryAndCVV(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidExpiry("e", "12/34").Check())
	assert.True(t, validator.ValidExpiry("e", "99/99").Check(), "month range is not checked")
	assert.False(t, validator.ValidExpiry("e", "1/34").Check())
	assert.False(t, validator.ValidExpiry("e", "1234").Check())
	assert.False(t, validator.ValidExpiry("e", "12/345").Check())

	assert.True(t, validator.ValidCVV("c", "123").Check())
	assert.True(t, validator.ValidCVV("c", "1234").Check())
	assert.False(t, validator.ValidCVV("c", "12").Check())
	assert.False(t, validator.ValidCVV("c", "12345").Check())
	assert.False(t, validator.ValidCVV("c", "12a").Check())
}
