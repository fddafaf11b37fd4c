package timeutil

import (
	"time"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision.
// Same shape as JavaScript's Date.prototype.toISOString.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
// Used for log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// FormatMillis renders t in UTC using RFC3339Millis.
func FormatMillis(t time.Time) string {
	return t.UTC().Format(RFC3339Millis)
}

// FormatMicros renders t in UTC using RFC3339Micros.
func FormatMicros(t time.Time) string {
	return t.UTC().Format(RFC3339Micros)
}

// ParseMillis parses a timestamp produced by FormatMillis.
func ParseMillis(s string) (time.Time, error) {
	return time.Parse(RFC3339Millis, s)
}
