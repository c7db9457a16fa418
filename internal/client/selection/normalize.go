package selection

import (
	"context"
	"fmt"
)

// FromPicker builds a Selection from a flat file list. No traversal happens
// and IsFolder is always false.
func FromPicker(files []FileHandle) (Selection, error) {
	if len(files) == 0 {
		return Selection{}, ErrEmptySelection
	}
	out := make([]FileHandle, len(files))
	copy(out, files)
	return Selection{Files: out}, nil
}

// FromDrop flattens a drop payload. Plain files are kept in place; every
// directory is replaced by its leaf files in depth-first order. If any
// top-level entry is a directory the whole selection is a folder upload,
// including files dropped next to it.
//
// Either the complete list is returned or an error; partial traversals are
// never exposed.
func FromDrop(ctx context.Context, entries []Entry) (Selection, error) {
	var (
		files    []FileHandle
		isFolder bool
	)

	for _, e := range entries {
		switch v := e.(type) {
		case DirEntry:
			isFolder = true
			leaves, err := flatten(ctx, v)
			if err != nil {
				return Selection{}, err
			}
			files = append(files, leaves...)
		case FileEntry:
			f, err := v.File(ctx)
			if err != nil {
				return Selection{}, fmt.Errorf("read %s: %w", v.Name(), err)
			}
			files = append(files, f)
		}
	}

	if len(files) == 0 {
		return Selection{}, ErrEmptySelection
	}

	return Selection{Files: files, IsFolder: isFolder}, nil
}

// frame is one directory listing being walked.
type frame struct {
	entries []Entry
	next    int
}

// flatten walks dir with an explicit stack so deep trees do not grow the
// call stack. The visiting order equals a recursive pre-order walk.
func flatten(ctx context.Context, dir DirEntry) ([]FileHandle, error) {
	var files []FileHandle

	children, err := list(ctx, dir)
	if err != nil {
		return nil, err
	}
	stack := []*frame{{entries: children}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		e := top.entries[top.next]
		top.next++

		switch v := e.(type) {
		case DirEntry:
			children, err := list(ctx, v)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &frame{entries: children})
		case FileEntry:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			f, err := v.File(ctx)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", v.Name(), err)
			}
			files = append(files, f)
		}
	}

	return files, nil
}

func list(ctx context.Context, dir DirEntry) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := dir.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir.Name(), err)
	}
	return entries, nil
}
