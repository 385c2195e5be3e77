package validator

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// ValidEmail validates that a string parses as a single RFC 5322 address
// with a dotted domain, the practical shape web forms expect.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			value = strings.TrimSpace(value)
			if value == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			at := strings.LastIndex(value, "@")
			domain := value[at+1:]
			return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURL validates that a string is an absolute http(s) URL with a host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			u, err := url.Parse(strings.TrimSpace(value))
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// FileMaxSize validates an uploaded file's size in bytes.
func FileMaxSize(field string, size, max int64) Rule {
	return Rule{
		Check: func() bool {
			return size <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        "file is too large",
			TranslationKey: "validation.file_max_size",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
				"size":  size,
			},
		},
	}
}

// FileContentType validates an uploaded file's detected media type against
// an allow list.
func FileContentType(field, contentType string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, contentType)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "file type is not allowed",
			TranslationKey: "validation.file_content_type",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": allowed,
			},
		},
	}
}
