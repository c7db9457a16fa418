// Package filex holds small file helpers shared by the client packages.
package filex

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with 1024-based units and at most two
// decimals, trailing zeros dropped: 0 -> "0 Bytes", 1536 -> "1.5 KB".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
