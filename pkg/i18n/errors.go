package i18n

import "errors"

// Package-specific errors.
var (
	ErrEmptyLanguageCode = errors.New("empty language code in catalogs")
	ErrNilCatalog        = errors.New("nil catalog for language")
	ErrInvalidYAML       = errors.New("invalid YAML translation catalog")
	ErrNoTranslations    = errors.New("no translations found")
)
