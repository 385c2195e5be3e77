package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/requestid"
)

func serve(t *testing.T, headerID string) (seen string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if headerID != "" {
		req.Header.Set(requestid.Header, headerID)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an ID when absent", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "")
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses a valid client ID", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "req-abc_123")
		assert.Equal(t, "req-abc_123", seen)
		assert.Equal(t, "req-abc_123", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid IDs", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{
			"has spaces",
			"slash/es",
			"<script>alert(1)</script>",
			"a-request-id-well-beyond-the-cap-a-request-id-well-beyond-the-cap-a-request-id-well-beyond-the-cap-a-request-id-well-beyond-the-cap",
		} {
			seen, rec := serve(t, bad)
			require.NotEmpty(t, seen, bad)
			assert.NotEqual(t, bad, seen, bad)
			assert.NotEqual(t, bad, rec.Header().Get(requestid.Header), bad)
		}
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "req-1")
	assert.Equal(t, "req-1", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	attr, ok := extract(requestid.WithContext(context.Background(), "req-1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-1", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
