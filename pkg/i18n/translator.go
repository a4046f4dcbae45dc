package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoTranslations = errors.New("no translation files found")
	ErrParseFile      = errors.New("failed to parse translation file")
)

const DefaultLanguage = "en"

// Translator holds flattened messages per language. It is immutable after
// Load and safe for concurrent use.
type Translator struct {
	messages    map[string]map[string]string
	defaultLang string
	langs       []string
	matcher     language.Matcher
	logger      *slog.Logger
	logMissing  bool
}

type Option func(*Translator)

// WithDefaultLanguage sets the fallback language. It must be one of the loaded files.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithMissingLogger logs each lookup that falls back to the key.
func WithMissingLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
			t.logMissing = true
		}
	}
}

// Load reads every <lang>.yaml or <lang>.yml file at the root of fsys. Nested
// maps are flattened into dotted keys:
//
//	billing:
//	  errors:
//	    cvv: Invalid CVV
//
// becomes "billing.errors.cvv".
func Load(fsys fs.FS, opts ...Option) (*Translator, error) {
	t := &Translator{
		messages:    make(map[string]map[string]string),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		ext := path.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		lang := strings.ToLower(strings.TrimSuffix(e.Name(), ext))

		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParseFile, e.Name(), err)
		}
		msgs := make(map[string]string)
		flatten("", tree, msgs)
		t.messages[lang] = msgs
	}
	if len(t.messages) == 0 {
		return nil, ErrNoTranslations
	}
	if _, ok := t.messages[t.defaultLang]; !ok {
		return nil, fmt.Errorf("i18n: default language %q has no file", t.defaultLang)
	}

	// default first: the matcher falls back to the first tag
	t.langs = append(t.langs, t.defaultLang)
	for lang := range t.messages {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	sort.Strings(t.langs[1:])

	tags := make([]language.Tag, len(t.langs))
	for i, l := range t.langs {
		tags[i] = language.Make(l)
	}
	t.matcher = language.NewMatcher(tags)
	return t, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Languages lists loaded languages, default first.
func (t *Translator) Languages() []string {
	return append([]string(nil), t.langs...)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Has reports whether lang defines key itself, without fallback.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.messages[lang][key]
	return ok
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// T translates key into lang, falling back to the default language and then
// to the key itself. args are name/value pairs for %{name} placeholders.
//
//	t.T("es", "validation.min_length", "min", "8")
func (t *Translator) T(lang, key string, args ...string) string {
	msg, ok := t.messages[lang][key]
	if !ok {
		msg, ok = t.messages[t.defaultLang][key]
	}
	if !ok {
		if t.logMissing {
			t.logger.Warn("missing translation", slog.String("lang", lang), slog.String("key", key))
		}
		msg = key
	}
	if len(args) < 2 {
		return msg
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(msg, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// Match picks the best loaded language for the given preferences, each an
// Accept-Language header value or a single tag. Unknown input yields the
// default language.
func (t *Translator) Match(prefs ...string) string {
	lang, _ := t.match(prefs...)
	return lang
}

func (t *Translator) match(prefs ...string) (string, bool) {
	var tags []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang, false
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang, false
	}
	return t.langs[idx], true
}
