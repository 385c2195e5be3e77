package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses translation catalogs from YAML content. The top level
// maps language codes to nested message trees:
//
//	en:
//	  validation:
//	    required: "field is required"
//	    min_length: "must be at least %{min} characters long"
//	de:
//	  validation:
//	    required: "Pflichtfeld"
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrInvalidYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected a map, got %T", ErrInvalidYAML, lang, val)
		}
		result[lang] = tree
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

// NewTranslatorFromYAML is a convenience constructor combining ParseYAML
// and NewTranslator.
func NewTranslatorFromYAML(content []byte, opts ...Option) (*Translator, error) {
	catalogs, err := ParseYAML(content)
	if err != nil {
		return nil, err
	}
	return NewTranslator(catalogs, opts...)
}
