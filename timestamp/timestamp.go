package timestamp

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts a time string into seconds. The colon count
// selects the interpretation: "HH:MM:SS[.mmm]", "MM:SS[.mmm]", or a bare
// seconds value. Unparseable input returns 0, so callers that care about
// precision must treat 0 as "unknown" rather than a literal zero offset.
func ParseTimestamp(timeStr string) float64 {
	clean := strings.TrimSpace(timeStr)
	if clean == "" {
		return 0
	}

	parts := strings.Split(clean, ":")

	switch len(parts) {
	case 3:
		hours, err1 := strconv.ParseFloat(parts[0], 64)
		minutes, err2 := strconv.ParseFloat(parts[1], 64)
		seconds, err3 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0
		}
		return hours*3600 + minutes*60 + seconds
	case 2:
		minutes, err1 := strconv.ParseFloat(parts[0], 64)
		seconds, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0
		}
		return minutes*60 + seconds
	case 1:
		seconds, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0
		}
		return seconds
	default:
		return 0
	}
}

// FormatSeconds renders a second count as H:MM:SS for display.
func FormatSeconds(s float64) string {
	ss := int64(s)
	mm, ss := ss/60, ss%60
	hh, mm := mm/60, mm%60

	return fmt.Sprintf("%d:%02d:%02d", hh, mm, ss)
}
