package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseFilterTime parses the date formats accepted by list filters:
// RFC 3339, a naive "2006-01-02T15:04:05" (read as UTC) or a bare date.
// dateOnly reports whether the value carried no time of day.
func ParseFilterTime(s string) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return parsed.UTC(), false, nil
	}
	if parsed, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC); err == nil {
		return parsed, false, nil
	}
	if parsed, err := time.ParseInLocation(time.DateOnly, s, time.UTC); err == nil {
		return parsed, true, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid date %q", s)
}
