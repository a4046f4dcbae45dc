package form

import (
	"reflect"
	"strings"
)

// State is the exclusively owned state of one form instance: the current
// field values and the errors of the last validation pass.
type State[T any] struct {
	Fields T
	Errors FieldErrors
}

// New returns a state with empty errors.
func New[T any](fields T) *State[T] {
	return &State[T]{Fields: fields, Errors: FieldErrors{}}
}

// Validate runs validate over the current fields and replaces Errors with the
// result. Stale entries from earlier passes never survive. Reports whether the
// form is valid.
func (s *State[T]) Validate(validate func(T) FieldErrors) bool {
	errs := validate(s.Fields)
	if errs == nil {
		errs = FieldErrors{}
	}
	s.Errors = errs
	return errs.IsEmpty()
}

// Set assigns value to the string field tagged form:"name" and clears that
// field's error only. Other errors stay until the next Validate.
func (s *State[T]) Set(name, value string) error {
	v := reflect.ValueOf(&s.Fields).Elem()
	if v.Kind() != reflect.Struct {
		return ErrUnknownField
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, _, _ := strings.Cut(sf.Tag.Get("form"), ",")
		if tag != name || !sf.IsExported() || sf.Type.Kind() != reflect.String {
			continue
		}
		v.Field(i).SetString(value)
		s.ClearError(name)
		return nil
	}

	return ErrUnknownField
}

// ClearError swaps Errors for a copy without name. Maps handed out earlier
// are never modified.
func (s *State[T]) ClearError(name string) {
	if !s.Errors.Has(name) {
		return
	}
	next := make(FieldErrors, len(s.Errors)-1)
	for field, msg := range s.Errors {
		if field != name {
			next[field] = msg
		}
	}
	s.Errors = next
}
