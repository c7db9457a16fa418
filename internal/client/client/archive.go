package client

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/dropshare/internal/client/selection"
)

// bundle packs the selection into one zip archive. Entries keep their
// display paths so a dropped folder keeps its layout.
func bundle(sel selection.Selection) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	seen := make(map[string]int, sel.Len())
	for _, f := range sel.Files {
		name := uniqueName(seen, f.Path())
		if err := addToZip(zw, name, f); err != nil {
			_ = zw.Close()
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

func addToZip(zw *zip.Writer, name string, f selection.FileHandle) error {
	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Path(), err)
	}
	defer src.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("read %s: %w", f.Path(), err)
	}
	return nil
}

// uniqueName suffixes repeated names: a.txt, a (1).txt, a (2).txt.
func uniqueName(seen map[string]int, name string) string {
	n := seen[name]
	seen[name] = n + 1
	if n == 0 {
		return name
	}
	base, ext := name, ""
	if i := strings.LastIndex(name, "."); i > strings.LastIndex(name, "/") {
		base, ext = name[:i], name[i:]
	}
	return fmt.Sprintf("%s (%d)%s", base, n, ext)
}

// archiveName is the object name of a bundled upload: the dropped folder's
// name for folder uploads, "files.zip" otherwise.
func archiveName(sel selection.Selection) string {
	if sel.IsFolder {
		for _, f := range sel.Files {
			if root, _, ok := strings.Cut(f.Path(), "/"); ok && root != "" {
				return root + ".zip"
			}
		}
	}
	return "files.zip"
}
