// Package feedback renders inline validation messages and pushes them to
// the client as DataStar element patches.
//
// Each form field owns one feedback element, addressed by the field's
// feedback target selector ("#<name>-error" by default). The Renderer
// produces the full element for a field's current messages, so patching is
// idempotent: fields that became valid are patched with an empty, hidden
// element, clearing stale feedback without client-side bookkeeping.
//
//	renderer := feedback.NewRenderer(feedback.WithTranslator(tr))
//	sse := formkit.NewSSE(w, r)
//	_ = renderer.PatchForm(sse, form, verr)
//
// Messages pass through the i18n translator when a failure carries a
// translation key; otherwise the literal rule message renders. All output
// is HTML-escaped.
package feedback
