package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory caps in-memory multipart parsing. Forms here carry text only.
const DefaultMaxMemory = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// to fields tagged `form:"name"`. Requests without a form body, such as a GET
// rendering an empty form or a datastar JSON post, are not applicable.
//
//	type RegisterRequest struct {
//		Email    string `form:"email"`
//		Password string `form:"password"`
//		Internal string `form:"-"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrBinderNotApplicable
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type: %v", ErrInvalidForm, err)
		}

		var values map[string][]string
		switch {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case mediaType == "multipart/form-data":
			if params["boundary"] == "" || !validateBoundary(params["boundary"]) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value

		case strings.HasPrefix(mediaType, "application/json"):
			return ErrBinderNotApplicable

		default:
			return fmt.Errorf("%w: got %s, expected a form body", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}

// validateBoundary follows RFC 2046: 1-70 characters from a restricted set.
func validateBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return !strings.HasSuffix(boundary, " ")
}
