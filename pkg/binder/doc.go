// Package binder maps submitted form data onto tagged Go structs.
//
// BindValues works directly on url.Values and is the core used by
// formkit.Form.Bind. BindForm and BindQuery wrap it for http.Request
// sources, and BindFiles extracts multipart uploads into FileUpload fields
// via `file:` tags.
//
// Binding is reflection-based and intentionally forgiving about HTML form
// quirks: checkbox booleans accept "on"/"yes", absent fields keep their
// zero value, and multi-value inputs fill slices (with comma-separated
// fallback for single values). Malformed numeric input fails the bind with
// the field name attached; it never produces a silent placeholder value.
package binder
