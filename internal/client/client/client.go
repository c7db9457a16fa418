package client

import (
	"context"

	"github.com/dmitrijs2005/dropshare/internal/client/selection"
)

// Result is what a successful upload returns.
type Result struct {
	QRURL   string `json:"qr_url"`
	FileURL string `json:"file_url"`
}

// Uploader sends one selection in one attempt.
type Uploader interface {
	Upload(ctx context.Context, sel selection.Selection) (*Result, error)
}
