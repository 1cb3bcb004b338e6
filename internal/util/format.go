package util

import (
	"fmt"
	"strings"
	"time"
)

// Truncate trims s and bounds it to limit runes. Longer strings keep their
// first limit-3 runes (trimmed again) followed by "...".
// A limit smaller than the ellipsis is raised to fit it.
func Truncate(s string, limit int) string {
	if limit <= len(Ellipsis) {
		limit = len(Ellipsis) + 1
	}
	r := []rune(s)
	if len(r) <= limit {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(r[:limit-len(Ellipsis)])) + Ellipsis
}

// InputSummary renders a selection for a single-line display field:
// "(N files)" for several paths, the path itself for one, "" for none.
func InputSummary(paths []string) string {
	switch len(paths) {
	case 0:
		return ""
	case 1:
		return paths[0]
	default:
		return fmt.Sprintf("(%d files)", len(paths))
	}
}

// Timeify converts a duration to "HH:MM:SS", clamping negatives to zero.
func Timeify(d time.Duration) string {
	seconds := int(d / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
