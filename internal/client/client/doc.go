// Package client talks to the remote sharing backend.
//
// # Overview
//
// The Uploader interface is the one operation the rest of the client
// needs: send a selection, get back a QR-code URL and a shareable file URL.
// Two implementations exist:
//
//   - HTTPUploader posts a single multipart request (repeated "files" parts
//     plus an "is_folder" field) to the sharing service and parses
//     {"qr_url": ..., "file_url": ...}.
//   - S3Uploader stores the selection in an S3-compatible bucket and
//     answers with a presigned download link and a locally rendered QR code.
//
// # Error Handling
//
// Every failure is an *UploadError whose Kind is one of the sentinels
// ErrTransport, ErrServer or ErrMalformedResponse, so callers can use
// errors.Is. UploadError.Message is safe to show to users. There is no
// retry: one failed attempt is final.
//
// # Timeouts
//
// Neither implementation enforces its own deadline unless configured; the
// caller's context and the transport defaults apply.
package client
