package pipeline

import (
	"regexp"
	"strings"
)

// composeOutput builds the final title/subtitle/description presentation:
// event-date suffix, subtitle dedup, per-tag rewrite, description join and
// broadcast markers.
func (p *Processor) composeOutput(rec *Record) {
	eventDateStr := formatEventDate(rec.EventDate, rec.Phase)

	rec.Subtitle = cleanSubtitle(rec.Title, rec.Subtitle)

	switch rec.Event {
	case EventFootball:
		base := rec.Title
		if rec.Competition != "" {
			base = rec.Competition
		}
		rec.Title = base + ": " + rec.HomeTeam + " x " + rec.AwayTeam
		rec.Subtitle = strings.TrimSpace(rec.Phase + eventDateStr)
		rec.Phase = ""
	case EventSports, EventSeries, EventMovie:
		if rec.Subtitle != "" {
			rec.Title = rec.Title + ": " + rec.Subtitle
		}
		rec.Subtitle = ""
	case EventMerge:
		if rec.Subtitle != "" {
			rec.Title = rec.Title + " - " + rec.Subtitle
		}
		rec.Subtitle = ""
	case EventEgrem:
		if rec.Subtitle != "" {
			rec.Title = rec.Subtitle + " - " + rec.Title
		}
		rec.Subtitle = ""
	}

	if rec.Subtitle == "" && (rec.EventDate != "" || rec.Phase != "") {
		rec.Subtitle = strings.TrimSpace(rec.Phase + eventDateStr)
		rec.Phase = ""
		eventDateStr = ""
	}

	rec.Description = formatDescription(rec.Phase, eventDateStr, rec.Description, rec.Stadium)

	p.applyBroadcastMarkers(rec)

	rec.Title = strings.ReplaceAll(rec.Title, " - -", " - ")
	rec.Title = strings.ReplaceAll(rec.Title, " X ", " x ")
}

// formatEventDate builds the ", realizado em dd/mm/yyyy" suffix, dropping
// the leading comma when no phase precedes it.
func formatEventDate(eventDate, phase string) string {
	if eventDate == "" {
		return ""
	}

	prefix := ""
	if phase != "" {
		prefix = ", "
	}
	return prefix + "realizado em " + eventDate
}

var (
	leadingDash  = regexp.MustCompile(`^\s*-?\s*`)
	trailingDash = regexp.MustCompile(`\s*-?\s*$`)
)

// cleanSubtitle drops a subtitle that merely repeats the title and strips a
// duplicated title prefix plus stray dashes from the edges.
func cleanSubtitle(title, subtitle string) string {
	if subtitle == "" || title == subtitle {
		return ""
	}

	titlePrefix := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(title) + `\s*-?\s*`)
	cleaned := titlePrefix.ReplaceAllString(subtitle, "")
	cleaned = leadingDash.ReplaceAllString(cleaned, "")
	cleaned = trailingDash.ReplaceAllString(cleaned, "")

	return cleaned
}

// formatDescription joins the non-empty contextual parts with " - ".
func formatDescription(phase, eventDateStr, description, stadium string) string {
	var parts []string

	if stadium != "" {
		parts = append(parts, stadium)
	}
	if phase != "" {
		parts = append(parts, phase)
	}
	if eventDateStr != "" {
		parts = append(parts, strings.TrimPrefix(eventDateStr, ", "))
	}
	if description != "" {
		parts = append(parts, description)
	}

	return strings.Join(parts, " - ")
}

// applyBroadcastMarkers appends the transmission marker to the title:
// trailing for live/premiere/reprise, prefix-style for VT and Retrô. A
// title already carrying "- Ao Vivo" only gets the genre override.
func (p *Processor) applyBroadcastMarkers(rec *Record) {
	if strings.Contains(rec.Title, "- Ao Vivo") {
		rec.Genre = "live broadcast"
		return
	}

	if rec.Live.IsLive() {
		rec.Title += " - ao vivo"
		rec.Genre = "live broadcast"
		return
	}

	marker := rec.Live.Marker()
	switch {
	case marker == "":
	case strings.Contains(marker, "Destaques + Estreia"):
		rec.Title += " - Estreia"
	case strings.Contains(marker, "Destaque"):
		rec.Live = LiveMarker("Destaque")
	case strings.Contains(marker, "inédito"), strings.Contains(marker, "estreia"):
		rec.Title += " - " + marker
	case strings.Contains(marker, "reprise"):
		rec.Title += " - " + marker
	case strings.Contains(marker, "VT"), strings.Contains(marker, "Retrô"):
		rec.Title = marker + " - " + rec.Title
	}
}
