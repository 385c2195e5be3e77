package feedback

import (
	"fmt"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DefaultErrorClass is the CSS class carried by rendered feedback elements.
const DefaultErrorClass = "field-error"

// Patcher pushes HTML element patches to the client. The DataStar SSE
// generator satisfies it; tests substitute a recorder.
type Patcher interface {
	PatchElements(elements string, opts ...datastar.PatchElementOption) error
}

// Renderer turns validation failures into inline per-field feedback
// fragments and pushes them as element patches.
type Renderer struct {
	translator *i18n.Translator
	errorClass string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTranslator localizes messages through the given translator using each
// failure's translation key. Without one, literal messages render as-is.
func WithTranslator(t *i18n.Translator) Option {
	return func(r *Renderer) { r.translator = t }
}

// WithErrorClass overrides the CSS class on feedback elements.
func WithErrorClass(class string) Option {
	return func(r *Renderer) {
		if class != "" {
			r.errorClass = class
		}
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{errorClass: DefaultErrorClass}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Translate resolves the display message for one failure in the given
// language, falling back to the failure's literal message.
func (r *Renderer) Translate(lang string, verr validator.ValidationError) string {
	if r.translator == nil || verr.TranslationKey == "" {
		return verr.Message
	}
	if !r.translator.HasTranslation(lang, verr.TranslationKey) {
		return verr.Message
	}
	return r.translator.T(lang, verr.TranslationKey, verr.TranslationValues)
}

// Fragment renders the feedback element for a field. targetID is the
// element id (without the selector's leading '#'). With no messages the
// element renders empty, which clears previously shown feedback when
// patched over it. All message text is HTML-escaped.
func (r *Renderer) Fragment(targetID string, messages []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<span id=%q class=%q`, targetID, r.errorClass)
	if len(messages) == 0 {
		b.WriteString(` hidden></span>`)
		return b.String()
	}
	b.WriteString(`>`)
	for i, msg := range messages {
		if i > 0 {
			b.WriteString(`<br>`)
		}
		b.WriteString(sanitizer.EscapeHTML(msg))
	}
	b.WriteString(`</span>`)
	return b.String()
}

// PatchField pushes the feedback element for a single field headed at its
// feedback target selector.
func (r *Renderer) PatchField(p Patcher, field formkit.Field, messages []string) error {
	target := field.FeedbackTarget()
	fragment := r.Fragment(strings.TrimPrefix(target, "#"), messages)
	return p.PatchElements(fragment,
		datastar.WithSelector(target),
		datastar.WithMode(datastar.ElementPatchModeOuter),
	)
}

// PatchForm pushes feedback for every field of the form: fields present in
// verr render their messages, the rest render cleared. Messages already
// recorded as literals pass through Translate only when a translation key
// is attached upstream, so the lang argument is safe to leave at the
// negotiated request language.
func (r *Renderer) PatchForm(p Patcher, form *formkit.Form, verr formkit.ValidationError) error {
	for _, field := range form.Fields() {
		if err := r.PatchField(p, field, verr.All(field.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Messages translates every failure for a field into display strings.
func (r *Renderer) Messages(lang string, verrs validator.ValidationErrors, field string) []string {
	var out []string
	for _, verr := range verrs {
		if verr.Field == field {
			out = append(out, r.Translate(lang, verr))
		}
	}
	return out
}
