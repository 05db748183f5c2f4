package pipeline

import (
	"regexp"
	"strings"
)

// Location shapes: trailing " - City, Country" (with or without space after
// the comma) or a whole-subtitle "City, Country".
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\s*-\s*([A-ZÀ-Ú][^-]+,\s*[A-ZÀ-Ú][^-]+)$`),
	regexp.MustCompile(`\s*-\s*([A-ZÀ-Ú][^-]+,[A-ZÀ-Ú][^-]+)$`),
	regexp.MustCompile(`^([A-ZÀ-Ú][^-,]+,\s*[A-ZÀ-Ú][^-,]+)$`),
	regexp.MustCompile(`^([A-ZÀ-Ú][^-,]+,[A-ZÀ-Ú][^-,]+)$`),
}

// extractLocation recognizes a "City, Country" location in the subtitle and
// moves it into the phase. When removing the location empties the subtitle,
// the formatted location replaces the subtitle instead and the phase is
// left alone.
func (p *Processor) extractLocation(rec *Record) {
	if rec.Subtitle == "" {
		return
	}

	for _, pattern := range locationPatterns {
		m := pattern.FindStringSubmatch(rec.Subtitle)
		if m == nil {
			continue
		}

		location := formatLocation(m[1])
		cleaned := strings.TrimSpace(pattern.ReplaceAllString(rec.Subtitle, ""))

		if cleaned == "" {
			rec.Subtitle = location
			return
		}

		rec.Subtitle = cleaned
		if rec.Phase != "" {
			rec.Phase = rec.Phase + " - " + location
		} else {
			rec.Phase = location
		}
		return
	}
}

// formatLocation guarantees a single space after the comma.
func formatLocation(location string) string {
	location = strings.TrimSpace(location)
	if !strings.Contains(location, ",") {
		return location
	}

	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ", ")
}
