// Package widget is the upload view state machine.
//
// States cycle Idle -> Uploading -> Success -> Idle without end. Uploading
// falls back to Idle on cancel or on a failed upload. While uploading, a
// cosmetic progress simulator and the real upload run side by side under
// one attempt; anything either of them reports after the attempt was
// superseded is dropped.
package widget

import (
	"errors"

	"github.com/dmitrijs2005/dropshare/internal/client/client"
	"github.com/dmitrijs2005/dropshare/internal/client/selection"
)

type State int

const (
	Idle State = iota
	Uploading
	Success
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Uploading:
		return "uploading"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

var (
	ErrBusy         = errors.New("an upload is already in progress or finished; reset first")
	ErrNotUploading = errors.New("no upload in progress")
	ErrNoResult     = errors.New("no upload result to copy")
	ErrCanceled     = errors.New("upload canceled")
)

// Snapshot is a read-only view of the widget.
type Snapshot struct {
	State     State
	AttemptID string
	Selection selection.Selection
	Progress  float64
	Result    *client.Result
	// Err is the failure that ended the last attempt; it is cleared by the
	// next Submit or Reset.
	Err error
}
