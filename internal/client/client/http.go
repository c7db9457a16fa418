package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/dropshare/internal/client/selection"
	"github.com/dmitrijs2005/dropshare/internal/netx"
)

const (
	FilesField    = "files"
	IsFolderField = "is_folder"
)

// HTTPUploader posts selections to the sharing service endpoint.
type HTTPUploader struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
}

type HTTPOption func(*HTTPUploader)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(u *HTTPUploader) { u.httpClient = c }
}

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(d time.Duration) HTTPOption {
	return func(u *HTTPUploader) { u.timeout = d }
}

func NewHTTPUploader(endpoint string, opts ...HTTPOption) *HTTPUploader {
	u := &HTTPUploader{endpoint: endpoint, httpClient: http.DefaultClient}
	for _, o := range opts {
		o(u)
	}
	return u
}

type uploadResponse struct {
	QRURL   string `json:"qr_url"`
	FileURL string `json:"file_url"`
	Error   string `json:"error"`
}

// Upload sends every file as a "files" part followed by "is_folder".
func (u *HTTPUploader) Upload(ctx context.Context, sel selection.Selection) (*Result, error) {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	resp, err := netx.PostMultipart(ctx, u.httpClient, u.endpoint, buildForm(sel))
	if errors.Is(err, netx.ErrEncode) {
		return nil, readError(err)
	}
	if err != nil {
		return nil, transportError(err)
	}

	return parseResponse(resp)
}

func buildForm(sel selection.Selection) *netx.MultipartForm {
	form := &netx.MultipartForm{Files: make([]netx.FilePart, 0, sel.Len())}
	for _, f := range sel.Files {
		form.Files = append(form.Files, netx.FilePart{
			Field:    FilesField,
			Filename: f.Name(),
			Open:     f.Open,
		})
	}
	form.Fields = []netx.Field{{Name: IsFolderField, Value: strconv.FormatBool(sel.IsFolder)}}
	return form
}

func parseResponse(resp *netx.Response) (*Result, error) {
	var body uploadResponse
	decodeErr := json.Unmarshal(resp.Body, &body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("request failed with status code %d", resp.StatusCode)
		if decodeErr == nil && body.Error != "" {
			msg = body.Error
		}
		return nil, &UploadError{Kind: ErrServer, StatusCode: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return nil, &UploadError{
			Kind:       ErrMalformedResponse,
			StatusCode: resp.StatusCode,
			Message:    "unexpected response from the upload service",
			Err:        decodeErr,
		}
	}
	if body.QRURL == "" || body.FileURL == "" {
		msg := "upload service response is missing qr_url or file_url"
		if body.Error != "" {
			msg = body.Error
		}
		return nil, &UploadError{Kind: ErrMalformedResponse, StatusCode: resp.StatusCode, Message: msg}
	}

	return &Result{QRURL: body.QRURL, FileURL: body.FileURL}, nil
}
