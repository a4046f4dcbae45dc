package form_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/form"
	"github.com/dmitrymomot/signup/pkg/validator"
)

type loginFields struct {
	Email    string `form:"email"`
	Password string `form:"password,omitempty"`
	Attempts int    `form:"attempts"`
}

func requireEmail(f loginFields) form.FieldErrors {
	return form.FromValidation(validator.Apply(validator.Required("email", f.Email)))
}

func TestFromValidation(t *testing.T) {
	t.Parallel()

	t.Run("keeps first message per field", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", "").WithMessage("", "first"),
			validator.Required("email", "").WithMessage("", "second"),
			validator.Required("cvv", "").WithMessage("", "Invalid CVV"),
		)

		fe := form.FromValidation(err)
		assert.Equal(t, form.FieldErrors{"email": "first", "cvv": "Invalid CVV"}, fe)
		assert.Equal(t, []string{"cvv", "email"}, fe.Fields())
	})

	t.Run("nil and foreign errors produce empty map", func(t *testing.T) {
		assert.True(t, form.FromValidation(nil).IsEmpty())
		assert.True(t, form.FromValidation(errors.New("boom")).IsEmpty())
		assert.NotNil(t, form.FromValidation(nil))
	})
}

func TestTranslated(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.Required("email", "").WithMessage("form.email", "Invalid email address"),
		validator.Required("cvv", "").WithMessage("form.cvv", "Invalid CVV"),
	)
	tr := func(key string, _ map[string]any) string {
		if key == "form.email" {
			return "Correo no válido"
		}
		return key
	}

	fe := form.Translated(err, tr)
	assert.Equal(t, "Correo no válido", fe.Get("email"))
	assert.Equal(t, "Invalid CVV", fe.Get("cvv"), "untranslated key falls back to message")

	assert.Equal(t, form.FromValidation(err), form.Translated(err, nil))
}

func TestState_Validate(t *testing.T) {
	t.Parallel()

	t.Run("replaces errors wholesale", func(t *testing.T) {
		st := form.New(loginFields{})
		st.Errors["stale"] = "left over"

		assert.False(t, st.Validate(requireEmail))
		assert.Equal(t, form.FieldErrors{"email": "field is required"}, st.Errors)

		st.Fields.Email = "a@b.c"
		assert.True(t, st.Validate(requireEmail))
		assert.True(t, st.Errors.IsEmpty())
	})

	t.Run("nil result becomes empty map", func(t *testing.T) {
		st := form.New(loginFields{})
		assert.True(t, st.Validate(func(loginFields) form.FieldErrors { return nil }))
		require.NotNil(t, st.Errors)
	})
}

func TestState_Set(t *testing.T) {
	t.Parallel()

	t.Run("updates field and clears only its error", func(t *testing.T) {
		st := form.New(loginFields{})
		st.Errors = form.FieldErrors{"email": "bad", "password": "bad"}

		require.NoError(t, st.Set("email", "a@b.c"))
		assert.Equal(t, "a@b.c", st.Fields.Email)
		assert.False(t, st.Errors.Has("email"))
		assert.True(t, st.Errors.Has("password"))
	})

	t.Run("tag options are ignored", func(t *testing.T) {
		st := form.New(loginFields{})
		require.NoError(t, st.Set("password", "secret"))
		assert.Equal(t, "secret", st.Fields.Password)
	})

	t.Run("rejects unknown and non string fields", func(t *testing.T) {
		st := form.New(loginFields{})
		assert.ErrorIs(t, st.Set("nope", "x"), form.ErrUnknownField)
		assert.ErrorIs(t, st.Set("attempts", "3"), form.ErrUnknownField)
	})

	t.Run("clear error", func(t *testing.T) {
		st := form.New(loginFields{})
		st.Errors["email"] = "bad"
		st.ClearError("email")
		assert.True(t, st.Errors.IsEmpty())
	})
}

func TestState_ClearErrorDoesNotMutateRenderedMap(t *testing.T) {
	t.Parallel()

	st := form.New(loginFields{})
	st.Validate(requireEmail)
	rendered := st.Errors

	require.NoError(t, st.Set("email", "a@b.c"))
	assert.True(t, rendered.Has("email"))
	assert.False(t, st.Errors.Has("email"))
}
