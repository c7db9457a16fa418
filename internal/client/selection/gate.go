package selection

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dropshare/internal/filex"
)

// DefaultMaxTotalSize is the size gate limit: 10 MiB.
const DefaultMaxTotalSize int64 = 10 * 1024 * 1024

var (
	ErrEmptySelection    = errors.New("empty selection")
	ErrSelectionTooLarge = errors.New("total file/folder size exceeds limit")
)

// Validate is the size gate. It accepts a selection whose total size is at
// most limit; exactly limit passes.
func Validate(sel Selection, limit int64) error {
	if sel.Len() == 0 {
		return ErrEmptySelection
	}
	if total := sel.TotalSize(); total > limit {
		return fmt.Errorf("%w: %s selected, maximum is %s",
			ErrSelectionTooLarge, filex.FormatSize(total), filex.FormatSize(limit))
	}
	return nil
}
