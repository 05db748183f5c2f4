package pipeline

import (
	"regexp"
	"strings"
)

type statusPattern struct {
	re     *regexp.Regexp
	strip  *regexp.Regexp
	marker string
}

func newStatusPattern(core, marker string) statusPattern {
	return statusPattern{
		re:     regexp.MustCompile(`(?i)` + core),
		strip:  regexp.MustCompile(`(?i)\s?-?\s?` + core),
		marker: marker,
	}
}

var (
	livePatterns = []statusPattern{
		newStatusPattern(`- ao vivo`, ""),
		newStatusPattern(`- Ao Vivo`, ""),
		newStatusPattern(`- VIVO`, ""),
		newStatusPattern(`AO VIVO$`, ""),
	}

	premierePatterns = []statusPattern{
		newStatusPattern(`- Inédito`, "inédito"),
		newStatusPattern(` INÉDITO`, "inédito"),
		newStatusPattern(`- Estreia`, "estreia"),
	}

	rerunPatterns = []statusPattern{
		{re: regexp.MustCompile(`(?i)VT - `), strip: regexp.MustCompile(`(?i)VT - `)},
		{re: regexp.MustCompile(`(?i) - VT`), strip: regexp.MustCompile(`(?i) - VT`)},
		{re: regexp.MustCompile(`(?i)- Reprise`), strip: regexp.MustCompile(`(?i)- Reprise`), marker: "reprise"},
		{re: regexp.MustCompile(`(?i)- Reapresentação`), strip: regexp.MustCompile(`(?i)- Reapresentação`), marker: "reprise"},
		{re: regexp.MustCompile(`(?i)Retrô`), strip: regexp.MustCompile(`(?i)Retrô`)},
	}

	retroYear = regexp.MustCompile(`\s*\d{4}`)
)

// detectLiveStatus scans the title for live, premiere and rerun markers:
// three independent ordered groups, first match per group stripped. Rerun
// patterns without a marker preserve whatever the premiere group set.
func (p *Processor) detectLiveStatus(rec *Record) {
	for _, pattern := range livePatterns {
		if rec.Title != "" && pattern.re.MatchString(rec.Title) {
			rec.Live = LiveTrue()
			rec.Title = pattern.strip.ReplaceAllString(rec.Title, "")
			break
		}
	}

	for _, pattern := range premierePatterns {
		if rec.Title != "" && pattern.re.MatchString(rec.Title) {
			rec.Premiere = true
			rec.Live = LiveMarker(pattern.marker)
			rec.Title = pattern.strip.ReplaceAllString(rec.Title, "")
			break
		}
	}

	for _, pattern := range rerunPatterns {
		if rec.Title == "" || !pattern.re.MatchString(rec.Title) {
			continue
		}
		rec.Rerun = true

		// The Premiere Retrô strand airs historical championship matches;
		// the title becomes the competition and the year moves out of the
		// subtitle.
		if strings.Contains(rec.Title, "Premiere Retrô") {
			if strings.Contains(strings.ToLower(rec.Subtitle), "copa do brasil") {
				rec.Title = "Copa do Brasil"
			} else {
				rec.Title = "Campeonato Brasileiro"
			}
			rec.Subtitle = strings.TrimSpace(retroYear.ReplaceAllString(rec.Subtitle, ""))
			rec.Live = LiveMarker("Retrô")
		} else {
			rec.Title = pattern.strip.ReplaceAllString(rec.Title, "")
			if pattern.marker != "" {
				rec.Live = LiveMarker(pattern.marker)
			}
		}
		break
	}
}

var invertedTitle = regexp.MustCompile(`^(.+),\s*([OoAa]s?)$`)

// normalizeInvertedTitle rewrites catalog-style titles "Name, O" into
// "O Name".
func (p *Processor) normalizeInvertedTitle(rec *Record) {
	if m := invertedTitle.FindStringSubmatch(rec.Title); m != nil {
		rec.Title = strings.TrimSpace(m[2]) + " " + strings.TrimSpace(m[1])
	}
}
