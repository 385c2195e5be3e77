package binder

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"reflect"
	"strings"
)

// DefaultMaxMemory caps the in-memory portion of multipart parsing (10MB);
// larger parts spill to temporary files per net/http semantics.
const DefaultMaxMemory = 10 << 20

// FileUpload holds one uploaded file with its metadata and content.
type FileUpload struct {
	// Filename is the client-provided name, untrusted as a path.
	Filename string

	// Size is the content length in bytes.
	Size int64

	// Header carries the MIME headers of the file part.
	Header textproto.MIMEHeader

	// Content is the file data, fully read into memory.
	Content []byte
}

// ContentType returns the media type of the upload, preferring the part's
// Content-Type header and falling back to the filename extension.
func (f *FileUpload) ContentType() string {
	if ct := f.Header.Get("Content-Type"); ct != "" {
		mediaType, _, _ := mime.ParseMediaType(ct)
		return mediaType
	}
	return mime.TypeByExtension(filepath.Ext(f.Filename))
}

// BindFiles extracts uploads from a multipart/form-data request into struct
// fields carrying `file:` tags.
//
// Supported field types:
//   - FileUpload and *FileUpload for single files
//   - []FileUpload and []*FileUpload for multi-file inputs
//
//	type UploadRequest struct {
//		Title   string       `form:"title"`
//		Avatar  FileUpload   `file:"avatar"`
//		Gallery []FileUpload `file:"gallery"`
//	}
//
// Non-multipart requests are a no-op so the binder composes with BindForm
// on endpoints that accept both encodings.
func BindFiles(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return nil
	}

	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidTarget)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidTarget)
	}

	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		tag := fieldType.Tag.Get("file")
		if tag == "" || tag == "-" {
			continue
		}

		headers := r.MultipartForm.File[tag]
		if len(headers) == 0 {
			continue
		}

		if err := setFileField(field, fieldType.Type, headers); err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, fieldType.Name, err)
		}
	}

	return nil
}

// setFileField assigns uploads to a single struct field.
func setFileField(field reflect.Value, fieldType reflect.Type, headers []*multipart.FileHeader) error {
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFileField(field.Elem(), fieldType.Elem(), headers)
	}

	if fieldType.Kind() == reflect.Slice {
		elemType := fieldType.Elem()
		slice := reflect.MakeSlice(fieldType, len(headers), len(headers))

		for i, header := range headers {
			upload, err := readFileHeader(header)
			if err != nil {
				return err
			}
			if elemType.Kind() == reflect.Ptr {
				slice.Index(i).Set(reflect.ValueOf(upload))
			} else {
				slice.Index(i).Set(reflect.ValueOf(*upload))
			}
		}

		field.Set(slice)
		return nil
	}

	if fieldType != reflect.TypeOf(FileUpload{}) {
		return fmt.Errorf("unsupported type for file field: %s", fieldType)
	}

	// Non-slice fields take the first file only.
	upload, err := readFileHeader(headers[0])
	if err != nil {
		return err
	}
	field.Set(reflect.ValueOf(*upload))
	return nil
}

// readFileHeader reads one multipart part into a FileUpload.
func readFileHeader(header *multipart.FileHeader) (*FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", header.Filename, err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", header.Filename, err)
	}

	return &FileUpload{
		Filename: header.Filename,
		Size:     int64(len(content)),
		Header:   header.Header,
		Content:  content,
	}, nil
}
