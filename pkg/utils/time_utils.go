package utils

import "time"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatRFC3339 renders t for API responses; zero time renders empty so the
// client can decide how to show "never".
func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// ParseClock parses a "15:04" wall-clock dose time. Returns ok=false for
// anything unparsable so callers can skip the entry.
func ParseClock(s string) (time.Time, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
