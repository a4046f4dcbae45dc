package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/signup/pkg/sanitizer"
)

// DefaultMaxJSONSize is the maximum accepted JSON body.
const DefaultMaxJSONSize = 1 << 20

// JSON binds a strict application/json body: unknown fields, trailing data and
// bodies over DefaultMaxJSONSize are rejected. Control characters are stripped
// from every decoded string.
//
// Datastar posts signals as JSON too; put Signals before JSON when a route
// serves both.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrBinderNotApplicable
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return ErrBinderNotApplicable
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: body too large (max %d bytes)", ErrInvalidJSON, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		cleanStrings(reflect.ValueOf(v))
		return nil
	}
}

func cleanStrings(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !rv.IsNil() {
			cleanStrings(rv.Elem())
		}
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(sanitizer.RemoveControlChars(rv.String()))
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			cleanStrings(rv.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			cleanStrings(rv.Index(i))
		}
	}
}
