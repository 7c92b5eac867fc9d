package ptime

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration the way time(1) does: seconds with
// millisecond precision, with whole minutes split out at one minute and above.
func FormatDuration(d time.Duration) string {
	seconds := d.Seconds()
	if seconds < 60 {
		return fmt.Sprintf("%.3fs", seconds)
	}
	minutes := int64(seconds) / 60
	// Subtraction rather than modulo keeps the fractional part intact.
	remainder := seconds - float64(minutes)*60
	return fmt.Sprintf("%dm%.3fs", minutes, remainder)
}

// FormatMemory renders a KiB count at a human scale, "N/A" when unknown.
func FormatMemory(kib uint64) string {
	switch {
	case kib == 0:
		return "N/A"
	case kib < 1024:
		return fmt.Sprintf("%dKB", kib)
	case kib < 1024*1024:
		return fmt.Sprintf("%.1fMB", float64(kib)/1024)
	default:
		return fmt.Sprintf("%.1fGB", float64(kib)/(1024*1024))
	}
}
