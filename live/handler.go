// Package live serves form validation over HTTP with per-field debounced
// feedback pushed through DataStar SSE streams.
package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/debounce"
	"github.com/dmitrymomot/formkit/pkg/feedback"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

// Handler validates one form for connected clients. Interaction events
// posted to it are gated by the event set, debounced per (session, field)
// according to the event's delay, and answered with inline feedback
// patches: immediately on the request stream for zero-delay events, or on
// the session's event stream once a debounce window settles.
type Handler struct {
	form       *formkit.Form
	renderer   *feedback.Renderer
	translator *i18n.Translator
	log        *slog.Logger
	cfg        Config
	sessions   *sessionRegistry

	// delayFor resolves an event name to its debounce delay. Tests
	// shrink the windows through it.
	delayFor func(event string) time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithRenderer replaces the default feedback renderer.
func WithRenderer(r *feedback.Renderer) HandlerOption {
	return func(h *Handler) {
		if r != nil {
			h.renderer = r
		}
	}
}

// WithTranslator localizes feedback messages per the request's
// Accept-Language header. Implies a translating renderer unless
// WithRenderer overrides it.
func WithTranslator(t *i18n.Translator) HandlerOption {
	return func(h *Handler) { h.translator = t }
}

// WithDelayPolicy overrides the per-event debounce delays.
func WithDelayPolicy(fn func(event string) time.Duration) HandlerOption {
	return func(h *Handler) {
		if fn != nil {
			h.delayFor = fn
		}
	}
}

// NewHandler creates a live validation handler for the form.
func NewHandler(form *formkit.Form, cfg Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		form:     form,
		log:      slog.Default(),
		cfg:      cfg,
		sessions: newSessionRegistry(cfg.MaxSessions),
		delayFor: debounce.DelayFor,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.renderer == nil {
		var ropts []feedback.Option
		if h.translator != nil {
			ropts = append(ropts, feedback.WithTranslator(h.translator))
		}
		h.renderer = feedback.NewRenderer(ropts...)
	}
	return h
}

// Router returns the handler's routes mounted on a fresh chi router:
//
//	GET  /events          per-session SSE stream for debounced feedback
//	POST /validate        validate the whole form, patch every field
//	POST /validate/field  process one interaction event for one field
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/events", h.handleEvents)
	r.Post("/validate", h.handleValidate)
	r.Post("/validate/field", h.handleFieldEvent)
	return r
}

// handleEvents opens the session's SSE stream. Without a session parameter
// a new session is registered and its ID is pushed to the client as a
// signal patch, so subsequent event posts can carry it.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	var sess *session
	if id := r.URL.Query().Get(h.cfg.SessionParam); id != "" {
		s, ok := h.sessions.get(id)
		if !ok {
			http.Error(w, "unknown session", http.StatusNotFound)
			return
		}
		sess = s
	} else {
		s, err := h.sessions.create()
		if err != nil {
			h.log.ErrorContext(r.Context(), "session registration failed", "error", err)
			http.Error(w, "too many sessions", http.StatusServiceUnavailable)
			return
		}
		sess = s
		defer h.sessions.remove(s.id)
	}

	sse := formkit.NewSSE(w, r)
	signals, err := json.Marshal(map[string]string{h.cfg.SessionParam: sess.id})
	if err == nil {
		err = sse.PatchSignals(signals)
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "session signal push failed",
			"session_id", sess.id, "error", err)
		return
	}

	sess.attach(sse)
	defer sess.detach(sse)

	h.log.InfoContext(r.Context(), "event stream opened",
		"session_id", sess.id, "form", h.form.Name())
	<-r.Context().Done()
}

// handleValidate validates the full submission and patches feedback for
// every declared field, clearing the clean ones.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	lang := h.lang(r)

	_, verrs, err := h.form.ProcessDetailed(h.fieldValues(r.PostForm))
	if err != nil {
		h.log.ErrorContext(r.Context(), "form processing failed",
			"form", h.form.Name(), "error", err)
		http.Error(w, "form processing failed", http.StatusInternalServerError)
		return
	}

	sse := formkit.NewSSE(w, r)
	for _, field := range h.form.Fields() {
		msgs := h.renderer.Messages(lang, verrs, field.Name)
		if err := h.renderer.PatchField(sse, field, msgs); err != nil {
			h.log.ErrorContext(r.Context(), "feedback patch failed",
				"form", h.form.Name(), "field", field.Name, "error", err)
			return
		}
	}

	if signals, err := json.Marshal(map[string]bool{"valid": verrs.IsEmpty()}); err == nil {
		if err := sse.PatchSignals(signals); err != nil {
			h.log.ErrorContext(r.Context(), "validity signal push failed",
				"form", h.form.Name(), "error", err)
		}
	}
}

// handleFieldEvent processes one interaction event for one field. Events
// outside the supported set are rejected. Zero-delay events (change, blur,
// focusout) validate synchronously and answer on the request stream;
// delayed events (input, keyup, keydown) coalesce per (session, field) and
// deliver on the session's event stream once the window settles.
func (h *Handler) handleFieldEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	event := r.PostForm.Get(h.cfg.EventParam)
	if !debounce.IsInteractionEvent(event) {
		http.Error(w, "unsupported event", http.StatusBadRequest)
		return
	}
	name := r.PostForm.Get(h.cfg.FieldParam)
	field, ok := h.form.Lookup(name)
	if !ok {
		http.Error(w, "unknown field", http.StatusBadRequest)
		return
	}
	if field.Kind == formkit.KindFile {
		http.Error(w, "file fields are not validated live", http.StatusBadRequest)
		return
	}

	lang := h.lang(r)
	values := h.fieldValues(r.PostForm)
	delay := h.delayFor(event)

	if delay > 0 {
		if sess, ok := h.sessions.get(r.PostForm.Get(h.cfg.SessionParam)); ok {
			sess.debouncers.Call(name, delay, func() {
				if p := sess.patcher(); p != nil {
					h.pushFieldFeedback(p, field, values, lang)
				}
			})
			w.WriteHeader(http.StatusNoContent)
			return
		}
		// No stream to deliver on later; degrade to an immediate answer.
	}

	h.pushFieldFeedback(formkit.NewSSE(w, r), field, values, lang)
}

// pushFieldFeedback validates the field against the captured values and
// patches its feedback element on the given stream.
func (h *Handler) pushFieldFeedback(p feedback.Patcher, field formkit.Field, values url.Values, lang string) {
	_, verrs, err := h.form.ProcessFieldDetailed(field.Name, values)
	if err != nil {
		h.log.Error("field processing failed",
			"form", h.form.Name(), "field", field.Name, "error", err)
		return
	}
	msgs := h.renderer.Messages(lang, verrs, field.Name)
	if err := h.renderer.PatchField(p, field, msgs); err != nil {
		h.log.Error("feedback patch failed",
			"form", h.form.Name(), "field", field.Name, "error", err)
	}
}

// lang negotiates the response language for localized feedback.
func (h *Handler) lang(r *http.Request) string {
	if h.translator == nil {
		return ""
	}
	return i18n.LanguageFromRequest(r, h.translator)
}

// fieldValues strips the transport metadata parameters, leaving only the
// form's field values.
func (h *Handler) fieldValues(posted url.Values) url.Values {
	values := make(url.Values, len(posted))
	for k, v := range posted {
		switch k {
		case h.cfg.SessionParam, h.cfg.EventParam, h.cfg.FieldParam:
		default:
			values[k] = v
		}
	}
	return values
}
