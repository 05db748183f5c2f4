package pipeline

import (
	"strings"

	"github.com/brasil-epg/grabber/app/extract"
)

// Highlight-reel channel families: these air only delayed highlights of
// mapped competitions unless a live flag says otherwise.
var highlightChannels = []string{
	"sportv",
	"premiere",
	"combate",
	"ge-tv",
	"band sports",
	"globo sp_local",
	"x sports_local",
	"espn",
}

// mapCompetitionsPrograms rewrites competition and program names through
// the global tables. A competition hit may also set the genre. On the
// highlight channel families a competition hit without an explicit live
// flag forces the VT marker.
func (p *Processor) mapCompetitionsPrograms(rec *Record) {
	mapped := false

	if rec.Competition != "" {
		if name, genre, ok := p.mappings.Competition(rec.Competition); ok {
			rec.Competition = name
			if genre != "" {
				rec.Genre = genre
			}
			mapped = true
		}
	}

	if !mapped {
		if name, genre, ok := p.mappings.Competition(rec.Title); ok {
			rec.Title = name
			if genre != "" {
				rec.Genre = genre
			}
			mapped = true
		}
	}

	if mapped && isHighlightChannel(rec.Channel) {
		if !rec.Live.IsLive() && rec.Live.Marker() != "Retrô" {
			rec.Live = LiveMarker("VT")
		}
	}

	if name, ok := p.mappings.Program(rec.Title); ok {
		rec.Title = name
	}
}

func isHighlightChannel(channel string) bool {
	lower := strings.ToLower(channel)
	for _, family := range highlightChannels {
		if strings.Contains(lower, family) {
			return true
		}
	}
	return false
}

// mapGenre resolves the raw genre token (or the first element of a list)
// through the genre table. A boolean live flag unconditionally forces the
// live broadcast genre, overriding any mapped value.
func (p *Processor) mapGenre(rec *Record, raw any) {
	if rec.Genre != "" {
		if mapped, ok := p.mappings.Genre(rec.Genre); ok {
			rec.Genre = mapped
		}
	} else if list, ok := raw.([]any); ok {
		for _, item := range list {
			if mapped, ok := p.mappings.Genre(extract.String(item)); ok {
				rec.Genre = mapped
				break
			}
		}
		if rec.Genre == "" && len(list) > 0 {
			rec.Genre = extract.String(list[0])
		}
	}

	if rec.Live.IsLive() {
		rec.Genre = "live broadcast"
	}
}
