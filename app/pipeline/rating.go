package pipeline

import "strings"

// Provider code to Brazilian advisory class.
var ratingMap = map[string]string{
	"L":      "L",
	"1":      "L",
	"AL":     "AL",
	"10":     "10",
	"12":     "12",
	"14":     "14",
	"16":     "16",
	"18":     "18",
	"AGE84":  "L",
	"4+":     "L",
	"AGE85":  "10",
	"5+":     "10",
	"AGE105": "12",
	"6+":     "12",
	"AGE87":  "14",
	"7+":     "14",
	"AGE86":  "16",
	"8+":     "16",
	"AGE89":  "18",
	"9+":     "18",
}

// Tokens meaning "not rated"; they resolve to no rating at all.
var noRating = map[string]bool{
	"AGE215":            true,
	"S/C":               true,
	"SC":                true,
	"Sem Classificação": true,
	"no rating":         true,
	"":                  true,
}

// normalizeRating maps provider rating codes to the Brazilian classes
// (L, 10, 12, 14, 16, 18, AL). Unknown codes pass through cleaned; no-rating
// tokens clear the field.
func (p *Processor) normalizeRating(rec *Record) {
	if rec.Rating == "" {
		return
	}

	cleaned := strings.ReplaceAll(rec.Rating, " anos", "")
	cleaned = strings.ReplaceAll(cleaned, "[", "")
	cleaned = strings.ReplaceAll(cleaned, "]", "")
	cleaned = strings.TrimSpace(cleaned)

	if mapped, ok := ratingMap[cleaned]; ok {
		rec.Rating = mapped
	} else {
		rec.Rating = cleaned
	}

	if noRating[rec.Rating] {
		rec.Rating = ""
	}
}
