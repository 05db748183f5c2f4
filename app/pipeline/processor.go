// Package pipeline turns raw schedule entries into canonical program
// records through a fixed sequence of normalization passes.
package pipeline

import (
	"context"

	"github.com/brasil-epg/grabber/app/config"
	"github.com/brasil-epg/grabber/app/extract"
	"github.com/brasil-epg/grabber/app/sports"
)

// Processor runs the ordered normalization passes over one raw entry at a
// time. Passes mutate the working record in place; there is no rollback.
type Processor struct {
	mappings *config.Mappings
	lookup   sports.Lookup
}

func NewProcessor(mappings *config.Mappings, lookup sports.Lookup) *Processor {
	if lookup == nil {
		lookup = sports.Disabled{}
	}
	return &Processor{mappings: mappings, lookup: lookup}
}

// Process normalizes one raw entry into a canonical record.
func (p *Processor) Process(ctx context.Context, raw extract.RawProgram) *Record {
	rec := &Record{
		Channel:     raw.Channel,
		Title:       raw.Title,
		Subtitle:    raw.Subtitle,
		Description: raw.Description,
		Start:       raw.Start,
		End:         raw.End,
		Duration:    raw.Duration,
		Rating:      extract.String(raw.Rating),
		Genre:       rawGenre(raw.Genre),
		Live:        liveFromRaw(raw.Live),
		Event:       EventProgram,
	}

	if n, ok := extract.Int(raw.Season); ok {
		rec.Season = &n
	}
	if n, ok := extract.Int(raw.Episode); ok {
		rec.Episode = &n
	}

	if rec.Title == "" {
		rec.Title = "Programação " + rec.Channel
	}

	p.extractDates(rec)
	p.extractSeasonEpisode(rec)
	p.extractPhase(rec)
	p.extractLocation(rec)
	p.normalizeInvertedTitle(rec)
	p.detectLiveStatus(rec)
	p.dispatchChannel(ctx, rec)
	p.mapCompetitionsPrograms(rec)
	p.mapGenre(rec, raw.Genre)
	p.normalizeRating(rec)
	p.composeOutput(rec)

	return rec
}

// rawGenre keeps a scalar genre as-is; list-shaped genres are resolved in
// the genre mapping pass.
func rawGenre(value any) string {
	if _, ok := value.([]any); ok {
		return ""
	}
	return extract.String(value)
}
