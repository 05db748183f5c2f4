package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// millisThreshold separates second from millisecond epochs: integer values
// at or above 1e10 are treated as milliseconds.
const millisThreshold = 10_000_000_000

// explicit formats tried in order after epoch and ISO-8601 detection; the
// first success wins.
var datetimeFormats = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04Z",
	"20060102150405 -0700",
	"20060102150405",
}

// ParseDatetime interprets a raw start/end value: integer epochs are
// auto-detected as seconds vs. milliseconds by magnitude and localized to
// the service timezone; ISO-8601 text is localized likewise; otherwise the
// explicit format list is tried in sequence. When nothing matches, the
// original string passes through unchanged as a degraded Instant.
func ParseDatetime(value any, timezone string) Instant {
	loc := parseOffset(timezone)

	switch v := value.(type) {
	case nil:
		return Instant{}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return epochInstant(n, loc)
		}
		return parseText(v.String(), loc)
	case float64:
		return epochInstant(int64(v), loc)
	case int64:
		return epochInstant(v, loc)
	case int:
		return epochInstant(int64(v), loc)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return epochInstant(n, loc)
		}
		return parseText(v, loc)
	default:
		return Instant{Raw: fmt.Sprint(v)}
	}
}

func epochInstant(n int64, loc *time.Location) Instant {
	if n >= millisThreshold {
		return Instant{Time: time.UnixMilli(n).In(loc)}
	}
	return Instant{Time: time.Unix(n, 0).In(loc)}
}

func parseText(s string, loc *time.Location) Instant {
	// ISO-8601 with and without explicit offset, localized to the service
	// timezone when the text carries none.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Instant{Time: t}
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, loc); err == nil {
		return Instant{Time: t}
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, loc); err == nil {
		return Instant{Time: t}
	}

	for _, format := range datetimeFormats {
		if t, err := time.ParseInLocation(format, s, loc); err == nil {
			return Instant{Time: t}
		}
	}

	return Instant{Raw: s}
}

// parseOffset converts a "+HH:MM" style timezone offset into a fixed
// location. Anything unparseable falls back to UTC.
func parseOffset(offset string) *time.Location {
	s := strings.TrimSpace(offset)
	if s == "" {
		return time.UTC
	}

	sign := 1
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}

	parts := strings.SplitN(s, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.UTC
	}
	minutes := 0
	if len(parts) == 2 {
		if minutes, err = strconv.Atoi(parts[1]); err != nil {
			return time.UTC
		}
	}

	seconds := sign * (hours*3600 + minutes*60)
	if seconds == 0 {
		return time.UTC
	}
	return time.FixedZone(offset, seconds)
}
