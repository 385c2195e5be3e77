package binder

import "errors"

// Common binding errors.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidTarget        = errors.New("invalid bind target")
	ErrMissingContentType   = errors.New("missing content type")
)
