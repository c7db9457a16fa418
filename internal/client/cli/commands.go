package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dropshare/internal/client/client"
	"github.com/dmitrijs2005/dropshare/internal/client/selection"
	"github.com/dmitrijs2005/dropshare/internal/client/widget"
	"github.com/dmitrijs2005/dropshare/internal/filex"
)

// Send uploads files and folders the way a drop does: folders are
// flattened and mark the whole upload as a folder upload.
func (a *App) Send(ctx context.Context, paths []string) error {
	_, err := a.send(ctx, paths)
	return err
}

func (a *App) send(ctx context.Context, paths []string) (bool, error) {
	if len(paths) == 0 {
		a.println("Usage: send <file|folder>...")
		return false, nil
	}

	entries, err := selection.FromPaths(paths...)
	if err != nil {
		a.println(errorStyle.Render("Error: " + err.Error()))
		return false, err
	}
	sel, err := selection.FromDrop(ctx, entries)
	if err != nil && !errors.Is(err, selection.ErrEmptySelection) {
		a.println(errorStyle.Render("Error: " + err.Error()))
		return false, err
	}
	return a.submit(ctx, sel)
}

// Pick uploads plain files the way the file picker does.
func (a *App) Pick(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		a.println("Usage: pick <file>...")
		return nil
	}

	files, err := selection.PickPaths(ctx, paths...)
	if err != nil {
		a.println(errorStyle.Render("Error: " + err.Error()))
		return err
	}
	sel, _ := selection.FromPicker(files)
	_, err = a.submit(ctx, sel)
	return err
}

// submit hands sel to the widget. An empty selection is silently ignored.
func (a *App) submit(ctx context.Context, sel selection.Selection) (bool, error) {
	err := a.widget.Submit(ctx, sel)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, selection.ErrEmptySelection):
		return false, nil
	case errors.Is(err, selection.ErrSelectionTooLarge):
		a.println(errorStyle.Render("Total file/folder size exceeds " + filex.FormatSize(a.config.MaxSelectionBytes)))
	default:
		a.println(err)
	}
	return false, err
}

func (a *App) Cancel(ctx context.Context) error {
	if err := a.widget.Cancel(); err != nil {
		a.println(err)
		return err
	}
	return nil
}

func (a *App) Copy(ctx context.Context) error {
	_, err := a.widget.CopyLink()
	switch {
	case err == nil:
		a.println(successStyle.Render("Link copied to clipboard!"))
	case errors.Is(err, widget.ErrNoResult):
		a.println("Nothing to copy yet")
	default:
		a.println(errorStyle.Render("Could not copy link: " + err.Error()))
	}
	return err
}

func (a *App) Reset(ctx context.Context) error {
	a.widget.Reset()
	a.println("Ready for a new upload")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	s := a.widget.Snapshot()
	switch s.State {
	case widget.Idle:
		a.println("Drag & drop is not available here; use 'send' or 'pick'.")
		a.println(infoStyle.Render("Maximum size: " + filex.FormatSize(a.config.MaxSelectionBytes)))
		if s.Err != nil {
			a.println(errorStyle.Render("Last upload failed: " + client.UserMessage(s.Err)))
		}
	case widget.Uploading:
		a.println(fmt.Sprintf("Uploading %s (%.0f%%)", s.Selection.Label(), s.Progress))
		a.println(infoStyle.Render(selectionInfo(s.Selection.Len(), s.Selection.TotalSize())))
	case widget.Success:
		a.println(successStyle.Render("Upload complete!"))
		a.println("Link: " + urlStyle.Render(s.Result.FileURL))
		a.println("QR:   " + urlStyle.Render(s.Result.QRURL))
	}
	return nil
}

// status is the prompt decoration.
func (a *App) status() string {
	s := a.widget.Snapshot()
	switch s.State {
	case widget.Uploading:
		return fmt.Sprintf("(uploading %.0f%%)", s.Progress)
	case widget.Success:
		return "(done)"
	default:
		return ""
	}
}
