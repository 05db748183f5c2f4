package extract

import "time"

// RawProgram is one transient (channel, day) schedule entry pulled out of a
// decoded API payload. It is consumed by the normalization pipeline and
// discarded afterwards.
type RawProgram struct {
	Channel     string
	Title       string
	Subtitle    string
	Description string
	Start       Instant
	End         Instant
	Duration    string
	Live        any
	Rating      any
	Season      any
	Episode     any
	Genre       any
}

// Instant is a timezone-aware point in time that degrades to the original
// source text when none of the known formats matched. The raw form is passed
// through unchanged rather than raising; downstream formatting emits it
// as-is.
type Instant struct {
	Time time.Time
	Raw  string
}

func (i Instant) IsZero() bool {
	return i.Time.IsZero() && i.Raw == ""
}

// Valid reports whether the instant holds a parsed time.
func (i Instant) Valid() bool {
	return !i.Time.IsZero()
}

// SortKey returns a string that orders valid instants chronologically and
// keeps degraded raw values stable among themselves.
func (i Instant) SortKey() string {
	if i.Valid() {
		return i.Time.UTC().Format("20060102150405")
	}
	return i.Raw
}
