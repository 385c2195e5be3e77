package formkit

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError maps field names to their error messages. It is backed by
// url.Values to reuse its multi-value accessors and to serialize naturally
// into form-shaped payloads.
type ValidationError url.Values

// Error implements the error interface with a one-line summary.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for field, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Add appends an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field, or "".
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// All returns every error message recorded for a field.
func (e ValidationError) All(field string) []string {
	return e[field]
}

// Has reports whether the field has at least one error.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether no errors were recorded.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns the names of all fields with errors.
func (e ValidationError) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return fields
}

// Merge copies every message from other into e.
func (e ValidationError) Merge(other ValidationError) {
	for field, messages := range other {
		for _, msg := range messages {
			e.Add(field, msg)
		}
	}
}
