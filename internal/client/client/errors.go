package client

import (
	"errors"
	"fmt"
)

var (
	ErrTransport         = errors.New("transport failure")
	ErrServer            = errors.New("server error")
	ErrMalformedResponse = errors.New("malformed response")
)

// UploadError describes a failed upload attempt.
type UploadError struct {
	// Kind is ErrTransport, ErrServer or ErrMalformedResponse.
	Kind error
	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int
	// Message is the user-facing explanation. For server errors it is the
	// server-provided error text when there is one.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *UploadError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// UserMessage extracts the text to show for err: the UploadError message
// when there is one, otherwise err.Error().
func UserMessage(err error) string {
	var ue *UploadError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return err.Error()
}

func transportError(err error) *UploadError {
	return &UploadError{
		Kind:    ErrTransport,
		Message: "network error, the upload service could not be reached",
		Err:     err,
	}
}

func readError(err error) *UploadError {
	return &UploadError{Kind: ErrTransport, Message: "could not read the selected files", Err: err}
}
