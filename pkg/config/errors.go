package config

import "errors"

// Package-specific errors.
var (
	// ErrParsingConfig wraps env parsing failures.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
