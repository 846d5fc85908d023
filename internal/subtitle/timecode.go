package subtitle

import "fmt"

// FormatTimestamp renders a millisecond offset as a zero-padded SRT
// timestamp `HH:MM:SS,mmm`. Fractional milliseconds are truncated, not
// rounded. Offsets of 100 hours or more widen the hour field rather than
// wrapping; negative offsets are not guarded.
func FormatTimestamp(ms float64) string {
	remaining := int64(ms)
	hours := remaining / 3600000
	remaining %= 3600000
	minutes := remaining / 60000
	remaining %= 60000
	seconds := remaining / 1000
	millis := remaining % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
