package binder

import (
	"fmt"
	"mime"
	"net/http"
	"reflect"

	"github.com/starfederation/datastar-go/datastar"
)

// DatastarRequestHeader is set by the datastar client on every backend action.
const DatastarRequestHeader = "Datastar-Request"

func isFormMedia(mediaType string) bool {
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

// Signals binds datastar signals into json-tagged fields. GET actions carry
// them in the datastar query parameter, other methods in the JSON body.
// Non-datastar requests are not applicable. Signals the target does not
// declare are ignored, since datastar sends the whole signal tree.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get(DatastarRequestHeader) != "true" {
			return ErrBinderNotApplicable
		}
		// Actions sent with contentType 'form' carry form data, not signals.
		if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); isFormMedia(mediaType) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		cleanStrings(reflect.ValueOf(v))
		return nil
	}
}
