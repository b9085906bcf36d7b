package utils

import (
	"fmt"
)

var binaryUnits = []string{"KiB", "MiB", "GiB", "TiB"}

// HumanBytes formats size in bytes, moving to the next binary unit once
// value exceeds half of it
func HumanBytes(i int64) string {
	if i <= 512 {
		return fmt.Sprintf("%d B", i)
	}

	size := float64(i)
	unit := ""
	for _, unit = range binaryUnits {
		size /= 1024
		if size <= 512 {
			break
		}
	}

	return fmt.Sprintf("%.2f %s", size, unit)
}
