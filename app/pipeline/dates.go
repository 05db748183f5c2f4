package pipeline

import (
	"regexp"
	"strings"
	"time"
)

var dateTokenPattern = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4}|\d{6,8})\b`)

// extractDates scans title then subtitle for a date token (dd/mm/yy[yy] or
// a 6/8-digit run), parses it into the event date and strips it from the
// field. Both fields are always scanned, so a subtitle match overwrites a
// title match: last-write-wins by field order.
func (p *Processor) extractDates(rec *Record) {
	for _, field := range []*string{&rec.Title, &rec.Subtitle} {
		if *field == "" {
			continue
		}

		match := dateTokenPattern.FindString(*field)
		if match == "" {
			continue
		}

		digits := strings.ReplaceAll(match, "/", "")
		switch len(digits) {
		case 6:
			if t, err := time.Parse("020106", digits); err == nil {
				rec.EventDate = t.Format("02/01/2006")
			}
		case 8:
			if t, err := time.Parse("02012006", digits); err == nil {
				rec.EventDate = t.Format("02/01/2006")
			}
		}

		if strip, err := regexp.Compile(`\s?-?\s?` + regexp.QuoteMeta(match)); err == nil {
			*field = strip.ReplaceAllString(*field, "")
		}
	}
}
