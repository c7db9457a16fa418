package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dropshare/internal/client/selection"
)

func pickFromMap(t *testing.T, fsys fstest.MapFS, names ...string) selection.Selection {
	t.Helper()
	entries, err := selection.FromFS(fsys, names...)
	require.NoError(t, err)
	sel, err := selection.FromDrop(context.Background(), entries)
	require.NoError(t, err)
	return sel
}

type capturedRequest struct {
	filenames []string
	isFolder  string
}

func captureServer(t *testing.T, status int, body string, calls *atomic.Int32, got *capturedRequest) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if assert.NoError(t, r.ParseMultipartForm(32<<20)) && got != nil {
			for _, fh := range r.MultipartForm.File[FilesField] {
				got.filenames = append(got.filenames, fh.Filename)
			}
			got.isFolder = r.FormValue(IsFolderField)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTPUploader_ThreeFilesSuccess(t *testing.T) {
	const mib = 1024 * 1024
	fsys := fstest.MapFS{
		"a.bin": {Data: make([]byte, mib)},
		"b.bin": {Data: make([]byte, mib/2)},
		"c.bin": {Data: make([]byte, mib/2)},
	}
	sel := pickFromMap(t, fsys, "a.bin", "b.bin", "c.bin")
	require.EqualValues(t, 2*mib, sel.TotalSize())

	var calls atomic.Int32
	got := &capturedRequest{}
	ts := captureServer(t, http.StatusOK, `{"qr_url":"https://x/qr.png","file_url":"https://x/f/abc"}`, &calls, got)

	res, err := NewHTTPUploader(ts.URL, WithHTTPClient(ts.Client())).Upload(context.Background(), sel)
	require.NoError(t, err)

	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, []string{"a.bin", "b.bin", "c.bin"}, got.filenames)
	assert.Equal(t, "false", got.isFolder)
	assert.Equal(t, &Result{QRURL: "https://x/qr.png", FileURL: "https://x/f/abc"}, res)
}

func TestHTTPUploader_FolderFlag(t *testing.T) {
	fsys := fstest.MapFS{
		"dir/a.txt":   {Data: []byte("a")},
		"dir/b/c.txt": {Data: []byte("c")},
	}
	sel := pickFromMap(t, fsys, "dir")

	var calls atomic.Int32
	got := &capturedRequest{}
	ts := captureServer(t, http.StatusOK, `{"qr_url":"q","file_url":"f"}`, &calls, got)

	_, err := NewHTTPUploader(ts.URL).Upload(context.Background(), sel)
	require.NoError(t, err)
	assert.Equal(t, "true", got.isFolder)
	assert.Equal(t, []string{"a.txt", "c.txt"}, got.filenames)
}

func TestHTTPUploader_Failures(t *testing.T) {
	sel := pickFromMap(t, fstest.MapFS{"a.txt": {Data: []byte("a")}}, "a.txt")

	tests := []struct {
		name     string
		status   int
		body     string
		wantKind error
		wantMsg  string
	}{
		{
			name:     "server error with message",
			status:   http.StatusInternalServerError,
			body:     `{"error":"disk full"}`,
			wantKind: ErrServer,
			wantMsg:  "disk full",
		},
		{
			name:     "server error without body",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			wantKind: ErrServer,
			wantMsg:  "request failed with status code 502",
		},
		{
			name:     "success with missing fields",
			status:   http.StatusOK,
			body:     `{"qr_url":"https://x/qr.png"}`,
			wantKind: ErrMalformedResponse,
			wantMsg:  "missing qr_url or file_url",
		},
		{
			name:     "success with invalid json",
			status:   http.StatusOK,
			body:     `not json`,
			wantKind: ErrMalformedResponse,
			wantMsg:  "unexpected response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			ts := captureServer(t, tt.status, tt.body, &calls, nil)

			res, err := NewHTTPUploader(ts.URL).Upload(context.Background(), sel)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Contains(t, UserMessage(err), tt.wantMsg)
			assert.EqualValues(t, 1, calls.Load(), "no retry")

			var ue *UploadError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.status, ue.StatusCode)
		})
	}
}

func TestHTTPUploader_TransportFailure(t *testing.T) {
	sel := pickFromMap(t, fstest.MapFS{"a.txt": {Data: []byte("a")}}, "a.txt")

	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	_, err := NewHTTPUploader(ts.URL).Upload(context.Background(), sel)
	require.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, UserMessage(err), "network error")
}

func TestHTTPUploader_UnreadableFileIsNotSent(t *testing.T) {
	fsys := fstest.MapFS{"a.txt": {Data: []byte("a")}}
	sel := pickFromMap(t, fsys, "a.txt")
	delete(fsys, "a.txt")

	var calls atomic.Int32
	ts := captureServer(t, http.StatusOK, `{"qr_url":"q","file_url":"f"}`, &calls, nil)

	_, err := NewHTTPUploader(ts.URL).Upload(context.Background(), sel)
	require.Error(t, err)
	assert.Equal(t, "could not read the selected files", UserMessage(err))
	assert.NotContains(t, UserMessage(err), "network error")
	assert.EqualValues(t, 0, calls.Load())
}

func TestHTTPUploader_ContextCancelled(t *testing.T) {
	sel := pickFromMap(t, fstest.MapFS{"a.txt": {Data: []byte("a")}}, "a.txt")

	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPUploader(ts.URL).Upload(ctx, sel)
	require.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserMessage_PlainError(t *testing.T) {
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
}
