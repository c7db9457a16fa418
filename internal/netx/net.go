// Package netx holds the HTTP plumbing used by the upload client.
package netx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MaxResponseBytes caps how much of a response body is read.
const MaxResponseBytes = 1 << 20

// ErrEncode marks failures to build the request body, such as a file that
// can no longer be read. Nothing was sent when it is returned.
var ErrEncode = errors.New("encode multipart body")

// FilePart is one file in a multipart body.
type FilePart struct {
	Field    string
	Filename string
	Open     func() (io.ReadCloser, error)
}

// Field is a scalar multipart field.
type Field struct {
	Name  string
	Value string
}

// MultipartForm is encoded with all file parts first, then the fields,
// each in slice order.
type MultipartForm struct {
	Files  []FilePart
	Fields []Field
}

// Encode renders the form into memory and returns the body together with
// its Content-Type (which carries the boundary).
func (f *MultipartForm) Encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, p := range f.Files {
		if err := writeFile(w, p); err != nil {
			return nil, "", err
		}
	}
	for _, fld := range f.Fields {
		if err := w.WriteField(fld.Name, fld.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", fld.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return body, w.FormDataContentType(), nil
}

func writeFile(w *multipart.Writer, p FilePart) error {
	src, err := p.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", p.Filename, err)
	}
	defer src.Close()

	dst, err := w.CreateFormFile(p.Field, p.Filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("read %s: %w", p.Filename, err)
	}
	return nil
}

// Response is what PostMultipart hands back: the status and at most
// MaxResponseBytes of the body.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// PostMultipart encodes form and POSTs it to url. A non-nil error means the
// request never produced a response: ErrEncode for local encoding failures,
// anything else for transport failures. HTTP error statuses are reported
// through Response.
func PostMultipart(ctx context.Context, c *http.Client, url string, form *MultipartForm) (*Response, error) {
	body, contentType, err := form.Encode()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Status: resp.Status, Body: b}, nil
}
