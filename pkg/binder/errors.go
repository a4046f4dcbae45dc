package binder

import "errors"

var (
	// ErrBinderNotApplicable tells handler.Wrap to try the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidJSON          = errors.New("failed to parse JSON request body")
	ErrInvalidSignals       = errors.New("failed to read datastar signals")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
)
