package pipeline

import (
	"regexp"
	"strconv"
)

type numberPattern struct {
	match *regexp.Regexp
	strip *regexp.Regexp
}

func seasonEpisodePatterns(cores []string, stripPrefix, stripSuffix string) []numberPattern {
	patterns := make([]numberPattern, 0, len(cores))
	for _, core := range cores {
		patterns = append(patterns, numberPattern{
			match: regexp.MustCompile(`(?i)` + core),
			strip: regexp.MustCompile(`(?i)` + stripPrefix + core + stripSuffix),
		})
	}
	return patterns
}

var (
	seasonPatterns = seasonEpisodePatterns([]string{
		`T(\d+)`,
		`Temporada\s+(\d+)`,
		`Temp\.?\s+(\d+)`,
		`(\d+)ª?\s*Temporada`,
	}, `\s?-?\s?\(?`, `\)?`)

	episodePatterns = seasonEpisodePatterns([]string{
		`Episódio\s+(\d+)`,
		`Ep\.?\s+(\d+)`,
		`EP\s+(\d+)`,
	}, `\s?-?\s?`, ``)
)

// extractSeasonEpisode tries the ordered regex sets per field; the first
// hit per attribute wins and its text is stripped. Numbers are stored
// zero-based, matching the xmltv_ns convention.
func (p *Processor) extractSeasonEpisode(rec *Record) {
	for _, field := range []*string{&rec.Title, &rec.Subtitle} {
		if *field == "" {
			continue
		}

		for _, pattern := range seasonPatterns {
			if m := pattern.match.FindStringSubmatch(*field); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					season := n - 1
					rec.Season = &season
				}
				*field = pattern.strip.ReplaceAllString(*field, "")
				break
			}
		}

		for _, pattern := range episodePatterns {
			if m := pattern.match.FindStringSubmatch(*field); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					episode := n - 1
					rec.Episode = &episode
				}
				*field = pattern.strip.ReplaceAllString(*field, "")
				break
			}
		}
	}
}
