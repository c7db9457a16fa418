package selection

import (
	"context"
	"io"
)

// FileHandle is a readable blob with a name and a byte length.
type FileHandle interface {
	// Name is the base filename sent to the server.
	Name() string
	// Path is the display path; inside a dropped folder it is relative to
	// the dropped root, e.g. "photos/2024/a.jpg".
	Path() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// Entry is one item of a drop payload.
type Entry interface {
	Name() string
}

// FileEntry is a drop entry that materializes into a FileHandle.
type FileEntry interface {
	Entry
	File(ctx context.Context) (FileHandle, error)
}

// DirEntry is a drop entry whose immediate children can be listed.
type DirEntry interface {
	Entry
	Entries(ctx context.Context) ([]Entry, error)
}

// Selection is the flattened set of files chosen for one upload attempt.
type Selection struct {
	Files    []FileHandle
	IsFolder bool
}

func (s Selection) Len() int {
	return len(s.Files)
}

func (s Selection) TotalSize() int64 {
	var total int64
	for _, f := range s.Files {
		total += f.Size()
	}
	return total
}

// Label is the headline shown while uploading: the first file name, or
// "Folder Selected" for folder uploads.
func (s Selection) Label() string {
	if s.IsFolder {
		return "Folder Selected"
	}
	if len(s.Files) == 0 {
		return ""
	}
	return s.Files[0].Name()
}
