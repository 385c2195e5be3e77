package formkit

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Component is the rendering interface for server-driven UI fragments.
// It matches github.com/a-h/templ.Component structurally, so generated
// templ components satisfy it without an import here.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// PatchOption configures how a component patch lands in the DOM.
type PatchOption = datastar.PatchElementOption

// WithTarget directs a patch at the element matching the selector.
func WithTarget(selector string) PatchOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the patched markup merges into the target.
func WithPatchMode(mode datastar.ElementPatchMode) PatchOption {
	return datastar.WithMode(mode)
}

// RenderComponent writes a component to the client: as an SSE element patch
// for DataStar requests, or as plain HTML otherwise.
func RenderComponent(w http.ResponseWriter, r *http.Request, c Component, opts ...PatchOption) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(c, opts...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return c.Render(r.Context(), w)
}
