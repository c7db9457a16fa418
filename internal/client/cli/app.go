package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/dmitrijs2005/dropshare/internal/client/client"
	"github.com/dmitrijs2005/dropshare/internal/client/config"
	"github.com/dmitrijs2005/dropshare/internal/client/widget"
	"github.com/dmitrijs2005/dropshare/internal/logging"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// clipboardFunc adapts a plain function to widget.Clipboard.
type clipboardFunc func(string) error

func (f clipboardFunc) WriteAll(text string) error { return f(text) }

type App struct {
	config *config.Config
	widget *widget.Widget
	logger logging.Logger
	out    io.Writer
	in     io.Reader
}

// NewApp builds the uploader for the configured backend and an App that
// talks to the process's standard streams.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	up, err := newUploader(ctx, c)
	if err != nil {
		return nil, err
	}
	return newApp(c, up, logger, os.Stdin, os.Stdout, isTerminal(os.Stdout), clipboardFunc(clipboard.WriteAll)), nil
}

func newApp(c *config.Config, up client.Uploader, logger logging.Logger, in io.Reader, out io.Writer, tty bool, clip widget.Clipboard) *App {
	r := newRenderer(out, tty)
	w := widget.New(up, widget.Options{
		MaxTotalSize: c.MaxSelectionBytes,
		SuccessDelay: c.SuccessDelay,
		Clipboard:    clip,
		Logger:       logger,
		Observer:     r.observe,
	})
	return &App{config: c, widget: w, logger: logger, out: out, in: in}
}

func newUploader(ctx context.Context, c *config.Config) (client.Uploader, error) {
	switch c.Backend {
	case config.BackendS3:
		return client.NewS3Uploader(ctx, c.S3Settings())
	case config.BackendHTTP:
		return client.NewHTTPUploader(c.Endpoint, client.WithTimeout(c.RequestTimeout)), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalidConfig, c.Backend)
	}
}

// Run starts the REPL and blocks until the user exits or input ends. An
// upload still running at that point is canceled.
func (a *App) Run(ctx context.Context) {
	defer a.widget.Reset()

	a.println("Welcome to dropshare (type 'help' for commands)")
	scanner := bufio.NewScanner(a.in)
	runREPL(ctx, a, a.status, scanner)
}

// RunOnce uploads paths with drop semantics and waits for the outcome.
// Progress and the result are rendered as in the REPL.
func (a *App) RunOnce(ctx context.Context, paths []string) error {
	submitted, err := a.send(ctx, paths)
	if err != nil || !submitted {
		return err
	}
	_, err = a.widget.Wait(ctx)
	return err
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
