package i18n

import (
	"context"
	"fmt"
	"net/http"
)

type localeKey struct{}

func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey{}, lang)
}

// Locale returns the request language, or DefaultLanguage when unset.
func Locale(ctx context.Context) string {
	if lang, ok := ctx.Value(localeKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}

// Tc translates key into the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(Locale(ctx), key, args...)
}

// Extractor returns a language preference found in r, or "".
type Extractor func(r *http.Request) string

func FromQuery(param string) Extractor {
	return func(r *http.Request) string { return r.URL.Query().Get(param) }
}

func FromCookie(name string) Extractor {
	return func(r *http.Request) string {
		if c, err := r.Cookie(name); err == nil {
			return c.Value
		}
		return ""
	}
}

func FromAcceptLanguage() Extractor {
	return func(r *http.Request) string { return r.Header.Get("Accept-Language") }
}

// Middleware stores the negotiated language in the request context. Extractors
// are tried in order; the first non-empty preference that matches a loaded
// language wins.
func Middleware(t *Translator, extractors ...Extractor) func(http.Handler) http.Handler {
	if len(extractors) == 0 {
		extractors = []Extractor{FromQuery("lang"), FromCookie("lang"), FromAcceptLanguage()}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := t.DefaultLanguage()
			for _, ex := range extractors {
				pref := ex(r)
				if pref == "" || len(pref) > 256 {
					continue
				}
				if m, ok := t.match(pref); ok {
					lang = m
					break
				}
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), lang)))
		})
	}
}

// Lookup binds t to the language in ctx. The returned func matches the
// translate argument of form.Translated; values fill %{name} placeholders.
// A nil Translator yields a nil func.
func (t *Translator) Lookup(ctx context.Context) func(key string, values map[string]any) string {
	if t == nil {
		return nil
	}
	lang := Locale(ctx)
	return func(key string, values map[string]any) string {
		args := make([]string, 0, len(values)*2)
		for name, v := range values {
			args = append(args, name, fmt.Sprint(v))
		}
		return t.T(lang, key, args...)
	}
}
