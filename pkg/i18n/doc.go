// Package i18n translates validation feedback messages.
//
// Catalogs are YAML documents keyed by language code, with nested message
// trees addressed by dot-separated keys and %{name} placeholders:
//
//	catalogs, _ := i18n.ParseYAML(content)
//	t, _ := i18n.NewTranslator(catalogs, i18n.WithDefaultLanguage("en"))
//	msg := t.T("de", "validation.min_length", map[string]any{"min": 8})
//
// Language negotiation against Accept-Language headers uses BCP 47
// matching from golang.org/x/text. Missing messages fall back to the
// default language and then to the key itself, so feedback rendering never
// produces an empty message by accident.
package i18n
