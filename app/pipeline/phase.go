package pipeline

import (
	"regexp"
	"strings"
)

// phasePattern is one competition-stage pattern. Lower priority values win
// ties; rounds get their replacement built from the captured number.
type phasePattern struct {
	re          *regexp.Regexp
	strip       *regexp.Regexp
	replacement string
	priority    int
}

func newPhasePattern(core, replacement string, priority int) phasePattern {
	return phasePattern{
		re:          regexp.MustCompile(`(?i)` + core),
		strip:       regexp.MustCompile(`(?i)\s?:?-?\s?` + core),
		replacement: replacement,
		priority:    priority,
	}
}

// Priority order: more specific stages first. Legs ("Jogo de Ida/Volta")
// combine with another stage instead of competing with it.
var phasePatterns = []phasePattern{
	newPhasePattern(`Oitavas De Final`, "Oitavas de Final", 1),
	newPhasePattern(`Quartas De Final`, "Quartas de Final", 2),
	newPhasePattern(`Semifinal(?:is)?`, "Semifinal", 3),
	newPhasePattern(`Finais`, "Finais", 4),
	newPhasePattern(`Final`, "Final", 5),
	newPhasePattern(`Jogo (?:De )?Ida`, "Jogo de Ida", 6),
	newPhasePattern(`Jogo (?:De )?Volta`, "Jogo de Volta", 7),
	newPhasePattern(` Ida`, "Jogo de Ida", 7),
	newPhasePattern(`Volta`, "Jogo de Volta", 7),
	newPhasePattern(`Fase De Grupos`, "Fase de Grupos", 8),
	newPhasePattern(`(\d+)ª Rodada`, "", 9),
}

type phaseHit struct {
	pattern phasePattern
	text    string
}

// extractPhase scans the title, and only when it yields nothing the
// subtitle; the first field with at least one hit is the only one
// processed. A leg token found together with another stage combines as
// "<stage> - <leg>" and both are stripped; otherwise the single highest
// priority hit wins and only it is stripped.
func (p *Processor) extractPhase(rec *Record) {
	for _, field := range []*string{&rec.Title, &rec.Subtitle} {
		if *field == "" {
			continue
		}

		var hits []phaseHit
		for _, pattern := range phasePatterns {
			m := pattern.re.FindStringSubmatch(*field)
			if m == nil {
				continue
			}

			text := pattern.replacement
			if text == "" {
				// Numbered round: rebuild from the captured number.
				text = m[1] + "ª Rodada"
			}
			hits = append(hits, phaseHit{pattern: pattern, text: text})
		}

		if len(hits) == 0 {
			continue
		}

		var leg, stage *phaseHit
		for i := range hits {
			if strings.Contains(hits[i].text, "Jogo de") {
				if leg == nil {
					leg = &hits[i]
				}
			} else if stage == nil {
				stage = &hits[i]
			}
		}

		text := *field
		if leg != nil && stage != nil {
			rec.Phase = stage.text + " - " + leg.text
			for _, hit := range hits {
				text = hit.pattern.strip.ReplaceAllString(text, "")
			}
		} else {
			selected := hits[0]
			for _, hit := range hits[1:] {
				if hit.pattern.priority < selected.pattern.priority {
					selected = hit
				}
			}
			rec.Phase = selected.text
			text = selected.pattern.strip.ReplaceAllString(text, "")
		}

		*field = collapseSeparators(text)
		break
	}
}

var (
	innerSeparators = regexp.MustCompile(`\s+-\s+|\s*:+\s*`)
	edgeSeparators  = regexp.MustCompile(`^\s*-\s*|\s*-\s*$|\s*:+\s*`)
)

// collapseSeparators tidies stray dashes and colons left behind by the
// pattern removal.
func collapseSeparators(s string) string {
	s = innerSeparators.ReplaceAllString(strings.TrimSpace(s), " - ")
	s = edgeSeparators.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
