package validator

import (
	"fmt"
	"slices"
)

// OneOf validates that a value belongs to the allowed set. Radio groups and
// single selects use this to reject tampered option values.
func OneOf[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowed),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": allowed,
			},
		},
	}
}

// EachOneOf validates that every chosen value belongs to the allowed set,
// for multi-selects and checkbox groups.
func EachOneOf[T comparable](field string, values []T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if !slices.Contains(allowed, v) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("contains values outside: %v", allowed),
			TranslationKey: "validation.each_one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": allowed,
			},
		},
	}
}

// MinChoices validates that at least min values were chosen.
func MinChoices[T any](field string, values []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(values) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("choose at least %d", min),
			TranslationKey: "validation.min_choices",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxChoices validates that at most max values were chosen.
func MaxChoices[T any](field string, values []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(values) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("choose at most %d", max),
			TranslationKey: "validation.max_choices",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Accepted validates that a checkbox was ticked, for consent boxes and
// terms-of-service agreements.
func Accepted(field string, checked bool) Rule {
	return Rule{
		Check: func() bool {
			return checked
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be accepted",
			TranslationKey: "validation.accepted",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
