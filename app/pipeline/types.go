package pipeline

import (
	"github.com/brasil-epg/grabber/app/extract"
)

// EventType tags how output composition rewrites a record. Dispatch and
// mapping passes construct it once; only output composition consumes it.
type EventType string

const (
	EventProgram  EventType = "program"
	EventFootball EventType = "football"
	EventSports   EventType = "sports"
	EventSeries   EventType = "series"
	EventMovie    EventType = "movie"
	EventMerge    EventType = "merge"
	EventEgrem    EventType = "egrem"
)

// LiveStatus carries the live flag, which sources and passes report either
// as a boolean or as a marker string ("reprise", "VT", "Retrô", "inédito",
// "Destaques + Estreia", ...). Setting one form clears the other.
type LiveStatus struct {
	live   bool
	marker string
}

func LiveTrue() LiveStatus {
	return LiveStatus{live: true}
}

func LiveMarker(marker string) LiveStatus {
	return LiveStatus{marker: marker}
}

// liveFromRaw interprets the raw API live value: booleans map to the flag,
// non-empty strings become markers.
func liveFromRaw(value any) LiveStatus {
	switch v := value.(type) {
	case bool:
		if v {
			return LiveTrue()
		}
	case string:
		if v != "" {
			return LiveMarker(v)
		}
	}
	return LiveStatus{}
}

// IsLive reports the boolean form.
func (s LiveStatus) IsLive() bool { return s.live }

// Marker returns the marker form, empty when unset.
func (s LiveStatus) Marker() string { return s.marker }

// Set reports whether either form carries a value; the renderer emits
// <new> for any set status that is neither rerun nor premiere.
func (s LiveStatus) Set() bool { return s.live || s.marker != "" }

// Record is the canonical program representation produced by the pipeline.
type Record struct {
	Channel     string
	Title       string
	Subtitle    string
	Description string
	Start       extract.Instant
	End         extract.Instant
	Duration    string
	Rating      string
	Season      *int
	Episode     *int
	Genre       string
	Live        LiveStatus
	Premiere    bool
	Rerun       bool
	EventDate   string // dd/mm/yyyy
	Phase       string
	Competition string
	HomeTeam    string
	AwayTeam    string
	Stadium     string
	Event       EventType
}
