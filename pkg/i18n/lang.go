package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// Negotiate picks the best of the supported language codes for the given
// Accept-Language header, falling back to fallback when nothing matches.
// Matching follows BCP 47 semantics via x/text, so "en-GB" negotiates to a
// supported "en" catalog.
func Negotiate(acceptLanguage string, supported []string, fallback string) string {
	if len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return fallback
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return fallback
	}

	matcher := language.NewMatcher(tags)
	_, index, conf := matcher.Match(prefs...)
	if conf == language.No {
		return fallback
	}
	return codes[index]
}

// LanguageFromRequest negotiates the request's language against the
// translator's catalogs, defaulting to the translator's default language.
func LanguageFromRequest(r *http.Request, t *Translator) string {
	return Negotiate(r.Header.Get("Accept-Language"), t.SupportedLanguages(), t.defaultLang)
}
