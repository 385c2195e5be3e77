package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/binder"
)

// multipartRequest builds a multipart/form-data request with the given
// files (field name -> filename -> content) and plain fields.
func multipartRequest(t *testing.T, fields map[string]string, files map[string][]struct{ name, content string }) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for field, value := range fields {
		require.NoError(t, w.WriteField(field, value))
	}
	for field, uploads := range files {
		for _, up := range uploads {
			fw, err := w.CreateFormFile(field, up.name)
			require.NoError(t, err)
			_, err = fw.Write([]byte(up.content))
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())

	r := httptest.NewRequest("POST", "/upload", &buf)
	r.Header.Set("Content-Type", w.FormDataContentType())
	return r
}

func TestBindFiles(t *testing.T) {
	t.Parallel()

	type upload struct {
		Title   string              `form:"title"`
		Avatar  binder.FileUpload   `file:"avatar"`
		Gallery []binder.FileUpload `file:"gallery"`
		Doc     *binder.FileUpload  `file:"doc"`
	}

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		r := multipartRequest(t, nil, map[string][]struct{ name, content string }{
			"avatar": {{"me.png", "pngdata"}},
		})

		var req upload
		require.NoError(t, binder.BindFiles(r, &req))
		assert.Equal(t, "me.png", req.Avatar.Filename)
		assert.Equal(t, int64(7), req.Avatar.Size)
		assert.Equal(t, []byte("pngdata"), req.Avatar.Content)
	})

	t.Run("multiple files into slice", func(t *testing.T) {
		t.Parallel()

		r := multipartRequest(t, nil, map[string][]struct{ name, content string }{
			"gallery": {{"a.jpg", "aaa"}, {"b.jpg", "bbbb"}},
		})

		var req upload
		require.NoError(t, binder.BindFiles(r, &req))
		require.Len(t, req.Gallery, 2)
		assert.Equal(t, "a.jpg", req.Gallery[0].Filename)
		assert.Equal(t, int64(4), req.Gallery[1].Size)
	})

	t.Run("optional pointer file", func(t *testing.T) {
		t.Parallel()

		r := multipartRequest(t, nil, map[string][]struct{ name, content string }{
			"doc": {{"cv.pdf", "%PDF"}},
		})

		var req upload
		require.NoError(t, binder.BindFiles(r, &req))
		require.NotNil(t, req.Doc)
		assert.Equal(t, "cv.pdf", req.Doc.Filename)
	})

	t.Run("missing files leave zero values", func(t *testing.T) {
		t.Parallel()

		r := multipartRequest(t, map[string]string{"title": "hello"}, nil)

		var req upload
		require.NoError(t, binder.BindFiles(r, &req))
		assert.Empty(t, req.Avatar.Filename)
		assert.Nil(t, req.Doc)
		assert.Empty(t, req.Gallery)
	})

	t.Run("non-multipart request is a no-op", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/upload", nil)
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req upload
		assert.NoError(t, binder.BindFiles(r, &req))
	})
}

func TestFileUpload_ContentType(t *testing.T) {
	t.Parallel()

	t.Run("from header", func(t *testing.T) {
		t.Parallel()

		up := binder.FileUpload{Filename: "x.bin"}
		up.Header = textproto.MIMEHeader{"Content-Type": {"image/png; charset=binary"}}
		assert.Equal(t, "image/png", up.ContentType())
	})

	t.Run("from extension fallback", func(t *testing.T) {
		t.Parallel()

		up := binder.FileUpload{Filename: "doc.pdf"}
		up.Header = textproto.MIMEHeader{}
		assert.Equal(t, "application/pdf", up.ContentType())
	})
}
