package widget

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/dropshare/internal/client/client"
	"github.com/dmitrijs2005/dropshare/internal/client/progress"
	"github.com/dmitrijs2005/dropshare/internal/client/selection"
	"github.com/dmitrijs2005/dropshare/internal/logging"
)

// DefaultSuccessDelay keeps the completed bar visible before the success
// view replaces it.
const DefaultSuccessDelay = 500 * time.Millisecond

// Clipboard receives the share link on CopyLink.
type Clipboard interface {
	WriteAll(text string) error
}

// Observer is called with a fresh Snapshot after every change, in order.
// It runs with the widget locked and must not call back into the Widget.
type Observer func(Snapshot)

type Options struct {
	MaxTotalSize int64
	SuccessDelay time.Duration
	TickPeriod   func(totalBytes int64) time.Duration
	// Step overrides the simulator's random increment.
	Step      func() float64
	Clipboard Clipboard
	Logger    logging.Logger
	Observer  Observer
}

func (o *Options) applyDefaults() {
	if o.MaxTotalSize <= 0 {
		o.MaxTotalSize = selection.DefaultMaxTotalSize
	}
	if o.SuccessDelay < 0 {
		o.SuccessDelay = 0
	}
	if o.TickPeriod == nil {
		o.TickPeriod = progress.TickPeriod
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Observer == nil {
		o.Observer = func(Snapshot) {}
	}
}

type attempt struct {
	id      string
	cancel  context.CancelFunc
	stopSim context.CancelFunc
	done    chan struct{}
	result  *client.Result
	err     error
}

// Widget owns all upload state. It is safe for concurrent use.
type Widget struct {
	uploader client.Uploader
	opts     Options

	mu       sync.Mutex
	state    State
	cur      *attempt
	sel      selection.Selection
	progress float64
	result   *client.Result
	lastErr  error
}

func New(uploader client.Uploader, opts Options) *Widget {
	opts.applyDefaults()
	return &Widget{uploader: uploader, opts: opts}
}

func (w *Widget) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Widget) snapshotLocked() Snapshot {
	s := Snapshot{
		State:     w.state,
		Selection: w.sel,
		Progress:  w.progress,
		Result:    w.result,
		Err:       w.lastErr,
	}
	if w.cur != nil {
		s.AttemptID = w.cur.id
	}
	return s
}

func (w *Widget) notifyLocked() {
	w.opts.Observer(w.snapshotLocked())
}

// Submit starts an upload of sel. It is only accepted in Idle. An empty
// selection returns selection.ErrEmptySelection and an oversized one
// selection.ErrSelectionTooLarge; in both cases nothing changes and no
// request is made. On success the widget is Uploading when Submit returns.
func (w *Widget) Submit(ctx context.Context, sel selection.Selection) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Idle {
		return ErrBusy
	}
	if err := selection.Validate(sel, w.opts.MaxTotalSize); err != nil {
		return err
	}

	attemptCtx, cancel := context.WithCancel(ctx)
	simCtx, stopSim := context.WithCancel(attemptCtx)
	a := &attempt{
		id:      uuid.NewString(),
		cancel:  cancel,
		stopSim: stopSim,
		done:    make(chan struct{}),
	}

	w.cur = a
	w.state = Uploading
	w.sel = sel
	w.progress = 0
	w.result = nil
	w.lastErr = nil
	w.notifyLocked()

	w.opts.Logger.Info(ctx, "upload started",
		"attempt", a.id, "files", sel.Len(), "bytes", sel.TotalSize(), "folder", sel.IsFolder)

	sim := progress.New(w.opts.TickPeriod(sel.TotalSize()), func(p float64) { w.setProgress(a, p) })
	if w.opts.Step != nil {
		sim.WithStep(w.opts.Step)
	}
	go sim.Run(simCtx)
	go w.run(attemptCtx, a, sel)

	return nil
}

func (w *Widget) run(ctx context.Context, a *attempt, sel selection.Selection) {
	res, err := w.uploader.Upload(ctx, sel)
	if err == nil && res == nil {
		err = &client.UploadError{Kind: client.ErrMalformedResponse, Message: "upload service returned no result"}
	}
	if err != nil {
		w.fail(ctx, a, err)
		return
	}
	w.complete(ctx, a, res)
}

// setProgress applies a simulator report if it belongs to the current
// attempt and moves the bar forward.
func (w *Widget) setProgress(a *attempt, p float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cur != a || w.state != Uploading || p <= w.progress {
		return
	}
	w.progress = p
	w.notifyLocked()
}

func (w *Widget) fail(ctx context.Context, a *attempt, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cur != a {
		return
	}
	w.opts.Logger.Warn(ctx, "upload failed", "attempt", a.id, "error", err)

	w.clearLocked()
	w.lastErr = err
	a.err = err
	w.finishLocked(a)
	w.notifyLocked()
}

func (w *Widget) complete(ctx context.Context, a *attempt, res *client.Result) {
	w.mu.Lock()
	if w.cur != a {
		w.mu.Unlock()
		return
	}
	a.stopSim()
	w.progress = progress.Complete
	w.notifyLocked()
	w.mu.Unlock()

	if w.opts.SuccessDelay > 0 {
		t := time.NewTimer(w.opts.SuccessDelay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			// No-op after Cancel or Reset; a canceled parent ends the attempt.
			w.fail(ctx, a, ctx.Err())
			return
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cur != a {
		return
	}

	w.opts.Logger.Info(ctx, "upload finished", "attempt", a.id, "file_url", res.FileURL)

	w.state = Success
	w.result = res
	a.result = res
	w.finishLocked(a)
	w.notifyLocked()
}

// Cancel abandons the upload in progress and returns to Idle. The request
// is aborted and whatever it returns later is ignored.
func (w *Widget) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Uploading {
		return ErrNotUploading
	}
	w.opts.Logger.Info(context.Background(), "upload canceled", "attempt", w.cur.id)
	w.resetLocked()
	return nil
}

// Reset returns to Idle from any state, clearing selection, progress and
// result. An upload in progress is canceled.
func (w *Widget) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *Widget) resetLocked() {
	if a := w.cur; a != nil {
		select {
		case <-a.done:
		default:
			a.err = ErrCanceled
			w.finishLocked(a)
		}
	}
	w.clearLocked()
	w.lastErr = nil
	w.notifyLocked()
}

func (w *Widget) clearLocked() {
	w.state = Idle
	w.cur = nil
	w.sel = selection.Selection{}
	w.progress = 0
	w.result = nil
}

// finishLocked stops both tasks of a and wakes Wait callers.
func (w *Widget) finishLocked(a *attempt) {
	a.cancel()
	close(a.done)
}

// CopyLink writes the share link to the clipboard. It is only available
// in Success and does not change state.
func (w *Widget) CopyLink() (string, error) {
	w.mu.Lock()
	if w.state != Success || w.result == nil {
		w.mu.Unlock()
		return "", ErrNoResult
	}
	link := w.result.FileURL
	w.mu.Unlock()

	if w.opts.Clipboard == nil {
		return "", errors.New("clipboard unavailable")
	}
	if err := w.opts.Clipboard.WriteAll(link); err != nil {
		return "", err
	}
	return link, nil
}

// Wait blocks until the current attempt resolves and reports its outcome:
// the result on success, the upload error on failure, ErrCanceled if it
// was canceled. Without an attempt it returns the last result, if any.
func (w *Widget) Wait(ctx context.Context) (*client.Result, error) {
	w.mu.Lock()
	a := w.cur
	res, lastErr := w.result, w.lastErr
	w.mu.Unlock()

	if a == nil {
		if res == nil && lastErr == nil {
			return nil, ErrNoResult
		}
		return res, lastErr
	}

	select {
	case <-a.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return a.result, a.err
}
