// Package cli provides the interactive dropshare terminal client.
//
// It wires configuration, an upload backend and the widget state machine
// to a REPL. Selections are made with "send" (files and folders, folders
// are flattened) or "pick" (plain files only); while the upload runs the
// progress bar is redrawn in place, and on success the share link is
// printed together with a QR code for it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// App.RunOnce uploads a single selection and returns, for scripted use.
package cli
