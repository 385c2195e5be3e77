package i18n

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

// Translator resolves dot-path message keys against per-language catalogs
// and substitutes named %{param} placeholders. Catalogs are immutable after
// construction, so lookups need no locking beyond the read lock guarding
// hot reloads.
type Translator struct {
	mu            sync.RWMutex
	catalogs      map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a requested one has no
// catalog.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing message resolves to its own
// key (the default) or to an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

// WithLogger sets the logger used for missing-translation reports.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranslator builds a Translator from already-parsed catalogs, keyed by
// language code.
func NewTranslator(catalogs map[string]map[string]any, opts ...Option) (*Translator, error) {
	t := &Translator{
		catalogs:      catalogs,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for lang, catalog := range catalogs {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if catalog == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilCatalog, lang)
		}
	}
	return t, nil
}

// SupportedLanguages returns the language codes with catalogs, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether lang resolves key to a string message.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	catalog, ok := t.catalogs[lang]
	if !ok {
		return false
	}
	_, ok = lookup(catalog, key)
	return ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// T translates key for lang, substituting %{name} placeholders from params.
// Missing languages fall back to the default language; missing keys fall
// back to the key itself (or "" with WithFallbackToKey(false)).
func (t *Translator) T(lang, key string, params map[string]any) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	msg, ok := t.resolve(lang, key)
	if !ok {
		t.logger.Debug("missing translation", "lang", lang, "key", key)
		if !t.fallbackToKey {
			return ""
		}
		return key
	}

	if len(params) == 0 {
		return msg
	}
	return paramRegex.ReplaceAllStringFunc(msg, func(match string) string {
		name := paramRegex.FindStringSubmatch(match)[1]
		if v, ok := params[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	if catalog, ok := t.catalogs[lang]; ok {
		if msg, ok := lookup(catalog, key); ok {
			return msg, true
		}
	}
	if lang != t.defaultLang {
		if catalog, ok := t.catalogs[t.defaultLang]; ok {
			return lookup(catalog, key)
		}
	}
	return "", false
}

// lookup traverses a nested catalog with a dot-separated key, e.g.
// "validation.min_length".
func lookup(catalog map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	current := catalog

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			msg, ok := val.(string)
			return msg, ok
		}
		switch next := val.(type) {
		case map[string]any:
			current = next
		default:
			return "", false
		}
	}
	return "", false
}
