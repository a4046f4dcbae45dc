package form

import "errors"

var ErrUnknownField = errors.New("form: unknown field")
