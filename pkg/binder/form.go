package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// BindForm parses an application/x-www-form-urlencoded or
// multipart/form-data request body and binds it to a tagged struct via
// BindValues semantics. The request's Content-Type must be present and
// match one of the two form media types.
func BindForm(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected a form media type", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	case strings.HasPrefix(mediaType, "multipart/"):
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	default:
		return fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}

	return bindToStruct(v, "form", r.Form, ErrInvalidForm)
}

// BindQuery binds URL query parameters to a struct using `query:` tags.
// Useful for GET-submitted filter forms.
func BindQuery(r *http.Request, v any) error {
	return bindToStruct(v, "query", r.URL.Query(), ErrInvalidForm)
}
