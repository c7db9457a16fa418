package selection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

var ErrNotRegularFile = errors.New("not a regular file")

type fsFile struct {
	fsys    fs.FS
	name    string
	display string
	size    int64
}

func (f *fsFile) Name() string                 { return path.Base(f.name) }
func (f *fsFile) Path() string                 { return f.display }
func (f *fsFile) Size() int64                  { return f.size }
func (f *fsFile) Open() (io.ReadCloser, error) { return f.fsys.Open(f.name) }

type fsFileEntry struct {
	fsys    fs.FS
	name    string
	display string
}

func (e *fsFileEntry) Name() string { return path.Base(e.name) }

func (e *fsFileEntry) File(ctx context.Context) (FileHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := fs.Stat(e.fsys, e.name)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", e.display, ErrNotRegularFile)
	}
	return &fsFile{fsys: e.fsys, name: e.name, display: e.display, size: info.Size()}, nil
}

type fsDirEntry struct {
	fsys    fs.FS
	name    string
	display string
}

func (e *fsDirEntry) Name() string { return path.Base(e.name) }

// Entries lists the directory in fs.ReadDir order (sorted by name).
// Symlinks to regular files are followed; symlinked directories, devices,
// sockets and pipes are skipped.
func (e *fsDirEntry) Entries(ctx context.Context) ([]Entry, error) {
	items, err := fs.ReadDir(e.fsys, e.name)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(items))
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := path.Join(e.name, it.Name())
		display := path.Join(e.display, it.Name())

		switch {
		case it.IsDir():
			out = append(out, &fsDirEntry{fsys: e.fsys, name: name, display: display})
		case it.Type().IsRegular():
			out = append(out, &fsFileEntry{fsys: e.fsys, name: name, display: display})
		case it.Type()&fs.ModeSymlink != 0:
			info, err := fs.Stat(e.fsys, name)
			if err == nil && info.Mode().IsRegular() {
				out = append(out, &fsFileEntry{fsys: e.fsys, name: name, display: display})
			}
		}
	}
	return out, nil
}

// FromFS turns names inside fsys into drop entries: directories become
// DirEntry values, regular files FileEntry values.
func FromFS(fsys fs.FS, names ...string) ([]Entry, error) {
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		info, err := fs.Stat(fsys, name)
		if err != nil {
			return nil, err
		}
		display := path.Base(name)
		switch {
		case info.IsDir():
			out = append(out, &fsDirEntry{fsys: fsys, name: name, display: display})
		case info.Mode().IsRegular():
			out = append(out, &fsFileEntry{fsys: fsys, name: name, display: display})
		default:
			return nil, fmt.Errorf("%s: %w", name, ErrNotRegularFile)
		}
	}
	return out, nil
}

// FromPaths is FromFS for operating-system paths. Each path is rooted at
// its own parent directory so display paths start at the dropped item.
func FromPaths(paths ...string) ([]Entry, error) {
	out := make([]Entry, 0, len(paths))
	for _, p := range paths {
		fsys, name, err := splitOSPath(p)
		if err != nil {
			return nil, err
		}
		entries, err := FromFS(fsys, name)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

// PickPaths resolves picker input: every path must be a regular file.
func PickPaths(ctx context.Context, paths ...string) ([]FileHandle, error) {
	out := make([]FileHandle, 0, len(paths))
	for _, p := range paths {
		fsys, name, err := splitOSPath(p)
		if err != nil {
			return nil, err
		}
		f, err := (&fsFileEntry{fsys: fsys, name: name, display: name}).File(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func splitOSPath(p string) (fs.FS, string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, "", err
	}
	name := filepath.Base(abs)
	if !fs.ValidPath(name) || name == "." {
		return nil, "", fmt.Errorf("%s: unsupported path", p)
	}
	return os.DirFS(filepath.Dir(abs)), name, nil
}
