package types

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DisplayLayout renders timestamps as MM/DD/YYYY HH:mm.
const DisplayLayout = "01/02/2006 15:04"

// ParseTimestamp is the single definition of a valid updated_at value,
// shared by sorting and display. Values without a zone are read as UTC.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, true
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatTimestamp returns the display form of an updated_at value, or the
// raw value when it does not parse.
func FormatTimestamp(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		return value
	}
	return t.Format(DisplayLayout)
}
