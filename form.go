package formkit

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Form definition errors.
var (
	ErrDuplicateField = errors.New("duplicate field name")
	ErrUnknownField   = errors.New("unknown field")
	ErrEmptyFieldName = errors.New("empty field name")
)

// Sanitizer transforms a raw string value before validation.
type Sanitizer func(string) string

// Rules builds the validation rules for an extracted value. The function is
// called once per processing pass with the sanitized value.
type Rules func(v Value) []validator.Rule

// Field describes one bound form field: where its value comes from (Name,
// Kind), how it is cleaned (Sanitizers, applied in order to string kinds),
// how it is validated (Rules), and where inline feedback for it renders
// (Target selector, defaulting to "#<name>-error").
type Field struct {
	Name       string
	Kind       Kind
	Sanitizers []Sanitizer
	Rules      Rules
	Target     string
}

// FeedbackTarget returns the CSS selector of the element that receives this
// field's inline error messages.
func (f Field) FeedbackTarget() string {
	if f.Target != "" {
		return f.Target
	}
	return "#" + f.Name + "-error"
}

func (f Field) sanitize(raw string) string {
	for _, s := range f.Sanitizers {
		if s != nil {
			raw = s(raw)
		}
	}
	return raw
}

// Form is an ordered, named set of fields processed as a unit.
type Form struct {
	name   string
	fields []Field
	index  map[string]int
}

// New builds a Form from the given fields. Field names must be unique and
// non-empty, and every kind must belong to the supported set.
func New(name string, fields ...Field) (*Form, error) {
	form := &Form{
		name:   name,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, field := range fields {
		if field.Name == "" {
			return nil, fmt.Errorf("%w: field %d", ErrEmptyFieldName, i)
		}
		if !field.Kind.Valid() {
			return nil, fmt.Errorf("%w: %q (field %s)", ErrUnknownKind, field.Kind, field.Name)
		}
		if _, exists := form.index[field.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, field.Name)
		}
		form.index[field.Name] = i
	}
	return form, nil
}

// MustNew is New that panics on definition errors. Form definitions are
// static, so a bad one should fail at startup.
func MustNew(name string, fields ...Field) *Form {
	form, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return form
}

// Name returns the form's name.
func (f *Form) Name() string { return f.name }

// Fields returns the fields in definition order.
func (f *Form) Fields() []Field { return f.fields }

// Lookup finds a field by name.
func (f *Form) Lookup(name string) (Field, bool) {
	i, ok := f.index[name]
	if !ok {
		return Field{}, false
	}
	return f.fields[i], true
}

// Process runs extract, sanitize and validate over every non-file field and
// returns the extracted values keyed by field name. When any field fails,
// the returned error is a ValidationError carrying every failure; the value
// map still holds the fields that extracted cleanly.
func (f *Form) Process(values url.Values) (map[string]Value, error) {
	out, verrs, err := f.ProcessDetailed(values)
	if err != nil {
		return out, err
	}
	if verrs.IsEmpty() {
		return out, nil
	}

	verr := NewValidationError()
	for _, fail := range verrs {
		verr.Add(fail.Field, fail.Message)
	}
	return out, verr
}

// ProcessDetailed is Process returning the failures with their translation
// metadata intact, for feedback layers that localize messages.
func (f *Form) ProcessDetailed(values url.Values) (map[string]Value, validator.ValidationErrors, error) {
	out := make(map[string]Value, len(f.fields))
	var verrs validator.ValidationErrors

	for _, field := range f.fields {
		if field.Kind == KindFile {
			continue
		}
		v, err := f.processField(field, values, &verrs)
		if err != nil {
			return out, nil, err
		}
		out[field.Name] = v
	}

	return out, verrs, nil
}

// ProcessField runs the pipeline for a single named field, as triggered by
// one interaction event. The returned error is a ValidationError when the
// value is invalid, or ErrUnknownField for names outside the form.
func (f *Form) ProcessField(name string, values url.Values) (Value, error) {
	v, verrs, err := f.ProcessFieldDetailed(name, values)
	if err != nil {
		return Value{}, err
	}
	if verrs.IsEmpty() {
		return v, nil
	}

	verr := NewValidationError()
	for _, fail := range verrs {
		verr.Add(fail.Field, fail.Message)
	}
	return v, verr
}

// ProcessFieldDetailed is ProcessField returning failures with translation
// metadata.
func (f *Form) ProcessFieldDetailed(name string, values url.Values) (Value, validator.ValidationErrors, error) {
	field, ok := f.Lookup(name)
	if !ok {
		return Value{}, nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if field.Kind == KindFile {
		return Value{}, nil, fmt.Errorf("%w: field %s", ErrFileKind, name)
	}

	var verrs validator.ValidationErrors
	v, err := f.processField(field, values, &verrs)
	if err != nil {
		return Value{}, nil, err
	}
	return v, verrs, nil
}

// processField extracts, sanitizes and validates one field, folding
// failures into verrs. Only unexpected plumbing errors are returned.
func (f *Form) processField(field Field, values url.Values, verrs *validator.ValidationErrors) (Value, error) {
	v, err := Extract(field.Kind, field.Name, values)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidNumber):
			// Malformed numbers surface as field feedback instead of the
			// silent sentinel the old behavior passed downstream.
			verrs.Add(validator.ValidationError{
				Field:             field.Name,
				Message:           "must be a number",
				TranslationKey:    "validation.number",
				TranslationValues: map[string]any{"field": field.Name},
			})
			return Value{Kind: field.Kind}, nil
		default:
			return Value{}, err
		}
	}

	switch field.Kind {
	case KindCheckbox, KindNumber:
		// Sanitizers operate on text input only.
	default:
		v.Str = field.sanitize(v.Str)
		for i, s := range v.Strs {
			v.Strs[i] = field.sanitize(s)
		}
	}

	if field.Rules != nil {
		if fails := validator.ExtractValidationErrors(validator.Apply(field.Rules(v)...)); fails != nil {
			*verrs = append(*verrs, fails...)
		}
	}
	return v, nil
}

// Bind populates a tagged struct from submitted form values using the
// binder package. It complements Process for handlers that want a typed
// request value instead of a value map.
func (f *Form) Bind(values url.Values, dst any) error {
	return binder.BindValues(values, dst)
}
