package extract

import (
	"strings"

	"github.com/brasil-epg/grabber/app/config"
)

// Extractor walks a decoded API payload using the two configured path
// levels and yields raw program entries.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Programs extracts the raw entries of one (channel, day) payload. Level-1
// selects the grouping node; per level-1 item the channel id is extracted
// (falling back to the service display name), the target-channel allow-list
// is applied, and level-2 yields the program entries. Entries without a
// resolvable title are dropped.
func (e *Extractor) Programs(payload any, svc *config.Service, channelName string) []RawProgram {
	var programs []RawProgram

	level1, ok := Lookup(payload, svc.APILevel1)
	if !ok {
		return programs
	}

	for _, item := range coerceList(level1) {
		channel := channelName
		if value, ok := Lookup(item, svc.Channel); ok {
			channel = String(value)
		}
		if channel == "" {
			channel = svc.Name
		}

		if !channelAllowed(channel, svc.TargetChannels) {
			continue
		}

		level2 := item
		if value, ok := Lookup(item, svc.APILevel2); ok {
			level2 = value
		}

		for _, entry := range coerceList(level2) {
			if program, ok := e.program(entry, svc, channel); ok {
				programs = append(programs, program)
			}
		}
	}

	return programs
}

func (e *Extractor) program(entry any, svc *config.Service, channel string) (RawProgram, bool) {
	title, ok := Lookup(entry, svc.ProgramTitle)
	if !ok || String(title) == "" {
		return RawProgram{}, false
	}

	start, _ := Lookup(entry, svc.StartTime)
	end, _ := Lookup(entry, svc.EndTime)
	subtitle, _ := Lookup(entry, svc.Subtitle)
	description, _ := Lookup(entry, svc.Description)
	duration, _ := Lookup(entry, svc.Duration)
	live, _ := Lookup(entry, svc.Live)
	rating, _ := Lookup(entry, svc.Rating)
	season, _ := Lookup(entry, svc.Season)
	episode, _ := Lookup(entry, svc.Episode)
	genre, _ := Lookup(entry, svc.Genre)

	return RawProgram{
		Channel:     channel,
		Title:       String(title),
		Subtitle:    String(subtitle),
		Description: String(description),
		Start:       ParseDatetime(start, svc.Timezone),
		End:         ParseDatetime(end, svc.Timezone),
		Duration:    String(duration),
		Live:        live,
		Rating:      rating,
		Season:      season,
		Episode:     episode,
		Genre:       genre,
	}, true
}

// coerceList wraps non-list nodes into single-element lists so both levels
// accept object and array shapes.
func coerceList(node any) []any {
	if list, ok := node.([]any); ok {
		return list
	}
	return []any{node}
}

// channelAllowed applies the case-insensitive substring allow-list filter.
// An empty list keeps every channel.
func channelAllowed(channel string, targets []string) bool {
	if len(targets) == 0 {
		return true
	}

	lower := strings.ToLower(channel)
	for _, target := range targets {
		if strings.Contains(lower, strings.ToLower(target)) {
			return true
		}
	}
	return false
}
