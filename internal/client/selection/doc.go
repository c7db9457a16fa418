// Package selection turns user input into an upload Selection.
//
// Two input shapes are supported:
//
//   - a picker list: plain files, never a folder upload (FromPicker);
//   - a drop payload: files and directories mixed (FromDrop). Directories are
//     flattened depth-first into their leaf files and the whole batch is
//     flagged as a folder upload.
//
// Validate is the size gate applied before any network activity.
//
// The OS-backed entries (FromFS, FromPaths, PickPaths) adapt io/fs to the
// Entry contract so the command line can act as a drop zone.
package selection
