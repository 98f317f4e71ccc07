package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MultipartForm accumulates fields and file parts for a form-data
// request. The form is encoded into memory once so the request body
// can be rewound on retry.
type MultipartForm struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name     string
	filename string
	content  io.Reader
}

// NewMultipartForm creates an empty form.
func NewMultipartForm() *MultipartForm {
	return &MultipartForm{}
}

// Field adds a text field. Returns the form for chaining.
func (f *MultipartForm) Field(name, value string) *MultipartForm {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// File adds a file part. Returns the form for chaining.
func (f *MultipartForm) File(name, filename string, content io.Reader) *MultipartForm {
	f.files = append(f.files, formFile{name: name, filename: filename, content: content})
	return f
}

// encode writes the parts into a buffer and returns the content type
// carrying the boundary.
func (f *MultipartForm) encode() (string, []byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return "", nil, fmt.Errorf("writing form field %q: %w", field.name, err)
		}
	}

	for _, file := range f.files {
		part, err := writer.CreateFormFile(file.name, file.filename)
		if err != nil {
			return "", nil, fmt.Errorf("creating form file %q: %w", file.name, err)
		}

		if _, err := io.Copy(part, file.content); err != nil {
			return "", nil, fmt.Errorf("copying form file %q: %w", file.name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return "", nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	return writer.FormDataContentType(), buf.Bytes(), nil
}

// PostForm performs an HTTP POST with a multipart/form-data body.
func (c *Client) PostForm(ctx context.Context, path string, form *MultipartForm) (*http.Response, error) {
	return c.sendForm(ctx, http.MethodPost, path, form)
}

// PutForm performs an HTTP PUT with a multipart/form-data body.
func (c *Client) PutForm(ctx context.Context, path string, form *MultipartForm) (*http.Response, error) {
	return c.sendForm(ctx, http.MethodPut, path, form)
}

func (c *Client) sendForm(ctx context.Context, method, path string, form *MultipartForm) (*http.Response, error) {
	contentType, body, err := form.encode()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// GetBody lets the retry loop rewind the encoded form.
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	req.Header.Set("Content-Type", contentType)

	return c.Do(ctx, req)
}
