// Package sanitizer provides small, stateless helpers for cleaning raw form
// input before validation.
//
// Every helper is a func(string) string (or its generic equivalent), so
// they slot directly into a form field's sanitizer chain and compose into
// reusable pipelines:
//
//	clean := sanitizer.Compose(
//		sanitizer.Trim,
//		sanitizer.CollapseWhitespace,
//		sanitizer.ToLower,
//	)
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// The helpers normalize; they do not authenticate or authorize. EscapeHTML
// exists for rendering paths that build markup from user text.
package sanitizer
