// Package formkit binds form fields to validation rules and renders inline
// per-field feedback, with debounced revalidation of interaction events.
//
// A Form is a declarative set of fields. Each field names its input, its
// kind (a closed set: text, checkbox, number, select amongst others), the
// sanitizers that clean its raw value, and the validation rules applied to
// the cleaned value. Processing a form extracts typed values from submitted
// url.Values, sanitizes and validates them, and collects every failure into
// a ValidationError keyed by field name.
//
// Basic usage:
//
//	signup := formkit.MustNew("signup",
//		formkit.Field{
//			Name:       "email",
//			Kind:       formkit.KindEmail,
//			Sanitizers: []formkit.Sanitizer{sanitizer.Trim, sanitizer.ToLower},
//			Rules: func(v formkit.Value) []validator.Rule {
//				return []validator.Rule{
//					validator.Required("email", v.Str),
//					validator.ValidEmail("email", v.Str),
//				}
//			},
//		},
//		formkit.Field{Name: "age", Kind: formkit.KindNumber},
//	)
//
//	values, err := signup.Process(r.PostForm)
//	if verr, ok := err.(formkit.ValidationError); ok {
//		// verr.Get("email") holds the first inline message
//	}
//
// Single-field revalidation, as triggered by one interaction event, goes
// through ProcessField; the live package wires it to HTTP endpoints with
// per-field debouncing and pushes feedback over DataStar SSE patches.
//
// Struct binding via `form:` tags is available through Form.Bind and the
// binder package for handlers that prefer typed request values.
package formkit
