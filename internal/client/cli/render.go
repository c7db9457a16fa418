package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mdp/qrterminal/v3"

	"github.com/dmitrijs2005/dropshare/internal/client/client"
	sim "github.com/dmitrijs2005/dropshare/internal/client/progress"
	"github.com/dmitrijs2005/dropshare/internal/client/widget"
	"github.com/dmitrijs2005/dropshare/internal/filex"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF80"))
)

// renderer turns widget snapshots into terminal output. It is driven by the
// widget observer, so calls arrive one at a time and in order.
type renderer struct {
	w   io.Writer
	tty bool
	bar progress.Model

	last    widget.State
	attempt string
	drawn   bool
}

func newRenderer(w io.Writer, tty bool) *renderer {
	return &renderer{
		w:   w,
		tty: tty,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (r *renderer) observe(s widget.Snapshot) {
	defer func() { r.last = s.State }()

	switch s.State {
	case widget.Uploading:
		if r.last != widget.Uploading || s.AttemptID != r.attempt {
			r.attempt = s.AttemptID
			r.drawn = false
			fmt.Fprintln(r.w, titleStyle.Render("Uploading "+s.Selection.Label()))
			fmt.Fprintln(r.w, infoStyle.Render(selectionInfo(s.Selection.Len(), s.Selection.TotalSize())))
		}
		r.drawProgress(s.Progress)

	case widget.Success:
		r.endProgress()
		if s.Result != nil {
			r.success(s.Result)
		}

	case widget.Idle:
		if r.last != widget.Uploading {
			return
		}
		r.endProgress()
		if s.Err != nil {
			fmt.Fprintln(r.w, errorStyle.Render("Error uploading file: "+client.UserMessage(s.Err)))
		} else {
			fmt.Fprintln(r.w, infoStyle.Render("Upload canceled"))
		}
	}
}

// drawProgress redraws the bar in place on a terminal. Elsewhere only the
// start and the completed bar are printed.
func (r *renderer) drawProgress(p float64) {
	if !r.tty {
		if p >= sim.Complete {
			fmt.Fprintln(r.w, r.bar.ViewAs(1))
		}
		return
	}
	fmt.Fprint(r.w, "\r"+r.bar.ViewAs(p/sim.Complete))
	r.drawn = true
}

func (r *renderer) endProgress() {
	if r.drawn {
		fmt.Fprintln(r.w)
		r.drawn = false
	}
}

func (r *renderer) success(res *client.Result) {
	fmt.Fprintln(r.w, successStyle.Render("Upload complete!"))
	fmt.Fprintln(r.w, "Scan the QR code or use the link below to access your files.")
	if r.tty {
		qrterminal.GenerateWithConfig(res.FileURL, qrterminal.Config{
			Level:          qrterminal.M,
			Writer:         r.w,
			HalfBlocks:     true,
			BlackChar:      qrterminal.BLACK_BLACK,
			WhiteBlackChar: qrterminal.WHITE_BLACK,
			WhiteChar:      qrterminal.WHITE_WHITE,
			BlackWhiteChar: qrterminal.BLACK_WHITE,
			QuietZone:      1,
		})
	}
	fmt.Fprintln(r.w, "Link: "+urlStyle.Render(res.FileURL))
	fmt.Fprintln(r.w, "QR:   "+urlStyle.Render(res.QRURL))
	fmt.Fprintln(r.w, infoStyle.Render("Files are kept for 24 hours. Type 'copy' to copy the link or 'new' to share more."))
}

func selectionInfo(n int, size int64) string {
	noun := "files"
	if n == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%d %s | %s", n, noun, filex.FormatSize(size))
}
