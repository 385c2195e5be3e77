package formkit

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Kind identifies what sort of input a form field is. Extraction branches on
// the declared kind, never on runtime inspection of the submitted value.
type Kind string

// The closed set of supported field kinds.
const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
	KindNumber   Kind = "number"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindHidden   Kind = "hidden"
	KindFile     Kind = "file"
)

var kinds = map[Kind]struct{}{
	KindText: {}, KindTextarea: {}, KindSelect: {}, KindCheckbox: {},
	KindRadio: {}, KindNumber: {}, KindEmail: {}, KindPassword: {},
	KindHidden: {}, KindFile: {},
}

// Valid reports whether k belongs to the supported kind set.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Extraction errors.
var (
	ErrUnknownKind   = errors.New("unknown field kind")
	ErrInvalidNumber = errors.New("invalid numeric value")
	ErrFileKind      = errors.New("file fields are bound from multipart data")
)

// Value is the typed result of extracting one field from submitted form
// values. Exactly one payload is meaningful, selected by Kind: Bool for
// checkboxes, Num for numbers, Str (plus Strs for multi-value submissions)
// for everything else.
type Value struct {
	Kind Kind
	Str  string
	Strs []string
	Bool bool
	Num  float64
}

// Any returns the payload selected by the value's kind, with multi-value
// string fields reported as a slice.
func (v Value) Any() any {
	switch v.Kind {
	case KindCheckbox:
		return v.Bool
	case KindNumber:
		return v.Num
	default:
		if len(v.Strs) > 1 {
			return v.Strs
		}
		return v.Str
	}
}

// IsZero reports whether the field carried no usable input: unchecked
// checkbox, empty string, or no submitted values at all. An empty number
// field is zero input too; requiredness is a rule concern, not extraction.
func (v Value) IsZero() bool {
	switch v.Kind {
	case KindCheckbox:
		return !v.Bool
	default:
		return v.Str == "" && len(v.Strs) == 0
	}
}

// Extract pulls the typed value of the named field out of submitted form
// values according to the declared kind.
//
// Checkboxes follow HTML submission semantics: an absent key means
// unchecked, and "on", "true", "1" and "yes" all mean checked. Numbers that
// fail to parse return ErrInvalidNumber wrapped with the field name instead
// of propagating a sentinel downstream. File kinds are rejected; multipart
// content goes through the binder package.
func Extract(kind Kind, name string, values url.Values) (Value, error) {
	if !kind.Valid() {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	switch kind {
	case KindFile:
		return Value{}, fmt.Errorf("%w: field %s", ErrFileKind, name)

	case KindCheckbox:
		return Value{Kind: kind, Bool: checkboxChecked(values.Get(name))}, nil

	case KindNumber:
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			// Empty input is absence, not a malformed number.
			return Value{Kind: kind}, nil
		}
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: field %s: %q", ErrInvalidNumber, name, raw)
		}
		return Value{Kind: kind, Str: raw, Num: num}, nil

	default:
		all := values[name]
		trimmed := make([]string, 0, len(all))
		for _, v := range all {
			trimmed = append(trimmed, strings.TrimSpace(v))
		}
		v := Value{Kind: kind, Strs: trimmed}
		if len(trimmed) > 0 {
			v.Str = trimmed[0]
		}
		return v, nil
	}
}

func checkboxChecked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes", "checked":
		return true
	default:
		return false
	}
}
