package live

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// patchRecorder captures pushed fragments instead of writing SSE.
type patchRecorder struct {
	mu       sync.Mutex
	elements []string
}

func (p *patchRecorder) PatchElements(elements string, _ ...datastar.PatchElementOption) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.elements = append(p.elements, elements)
	return nil
}

func (p *patchRecorder) patched() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.elements...)
}

func testForm(t *testing.T) *formkit.Form {
	t.Helper()
	return formkit.MustNew("signup",
		formkit.Field{
			Name: "email",
			Kind: formkit.KindEmail,
			Rules: func(v formkit.Value) []validator.Rule {
				return []validator.Rule{
					validator.Required("email", v.Str),
					validator.ValidEmail("email", v.Str),
				}
			},
		},
		formkit.Field{
			Name: "age",
			Kind: formkit.KindNumber,
		},
	)
}

func testConfig() Config {
	return Config{
		SessionParam: "session",
		EventParam:   "event",
		FieldParam:   "field",
		MaxSessions:  16,
	}
}

func postEvent(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/validate/field", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleValidate(t *testing.T) {
	t.Parallel()

	t.Run("invalid submission patches feedback", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig())
		router := h.Router()

		form := url.Values{"email": {"not-an-email"}}
		req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		body := rec.Body.String()
		assert.Contains(t, body, `id="email-error"`)
		assert.Contains(t, body, "must be a valid email address")
		assert.Contains(t, body, `"valid":false`)
	})

	t.Run("clean submission clears feedback", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig())
		router := h.Router()

		form := url.Values{"email": {"jane@example.com"}, "age": {"30"}}
		req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		body := rec.Body.String()
		assert.Contains(t, body, `id="email-error"`)
		assert.Contains(t, body, "hidden")
		assert.Contains(t, body, `"valid":true`)
	})
}

func TestHandleFieldEvent(t *testing.T) {
	t.Parallel()

	t.Run("zero delay answers on the request", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig())
		rec := postEvent(t, h.Router(), url.Values{
			"event": {"blur"},
			"field": {"email"},
			"email": {"not-an-email"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "must be a valid email address")
	})

	t.Run("malformed number surfaces inline", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig())
		rec := postEvent(t, h.Router(), url.Values{
			"event": {"change"},
			"field": {"age"},
			"age":   {"abc"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="age-error"`)
		assert.Contains(t, body, "must be a number")
	})

	t.Run("unsupported event rejected", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig())
		rec := postEvent(t, h.Router(), url.Values{
			"event": {"mouseover"},
			"field": {"email"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig())
		rec := postEvent(t, h.Router(), url.Values{
			"event": {"blur"},
			"field": {"nope"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delayed event pushes on the session stream", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig(),
			WithDelayPolicy(func(string) time.Duration { return 20 * time.Millisecond }))
		router := h.Router()

		sess, err := h.sessions.create()
		require.NoError(t, err)
		stream := &patchRecorder{}
		sess.attach(stream)

		rec := postEvent(t, router, url.Values{
			"session": {sess.id},
			"event":   {"keyup"},
			"field":   {"email"},
			"email":   {"not-an-email"},
		})
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		require.Eventually(t, func() bool {
			return len(stream.patched()) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Contains(t, stream.patched()[0], "must be a valid email address")
	})

	t.Run("burst coalesces to the last value", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig(),
			WithDelayPolicy(func(string) time.Duration { return 40 * time.Millisecond }))
		router := h.Router()

		sess, err := h.sessions.create()
		require.NoError(t, err)
		stream := &patchRecorder{}
		sess.attach(stream)

		for _, typed := range []string{"j", "ja", "jane@example.com"} {
			rec := postEvent(t, router, url.Values{
				"session": {sess.id},
				"event":   {"keyup"},
				"field":   {"email"},
				"email":   {typed},
			})
			require.Equal(t, http.StatusNoContent, rec.Code)
		}

		require.Eventually(t, func() bool {
			return len(stream.patched()) == 1
		}, time.Second, 5*time.Millisecond)

		// Only the final keystroke's value is validated; the address is
		// clean so the patch clears the feedback element.
		assert.Contains(t, stream.patched()[0], "hidden")

		time.Sleep(80 * time.Millisecond)
		assert.Len(t, stream.patched(), 1)
	})

	t.Run("delayed event without a session answers inline", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig(),
			WithDelayPolicy(func(string) time.Duration { return 10 * time.Millisecond }))
		rec := postEvent(t, h.Router(), url.Values{
			"event": {"input"},
			"field": {"email"},
			"email": {""},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "field is required")
	})
}

func TestHandleEvents(t *testing.T) {
	t.Parallel()

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(testForm(t), testConfig())
		req := httptest.NewRequest(http.MethodGet, "/events?session=missing", nil)
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
