// Package validator provides declarative, rule-based validation for form
// field values.
//
// Every helper constructs a Rule: a boolean Check paired with a
// ValidationError carrying the field name, a human-readable message, and a
// translation key with its parameters. Rules are evaluated with Apply,
// which aggregates failures into a ValidationErrors value satisfying the
// error interface, so one return reports every broken field at once.
//
//	err := validator.Apply(
//		validator.Required("email", email),
//		validator.ValidEmail("email", email),
//		validator.Between("age", age, 18, 120),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// per-field messages for inline feedback
//	}
//
// Rule families are grouped by file: string_rules.go (presence, length,
// pattern), numeric_rules.go (bounds over a generic Numeric constraint),
// choice_rules.go (option membership, choice counts, checkbox acceptance),
// format_rules.go (email, URL, uploaded-file constraints). The package
// holds no state and every helper is goroutine-safe.
package validator
