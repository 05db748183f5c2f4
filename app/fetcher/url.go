package fetcher

import (
	"strconv"
	"strings"
	"time"
)

// BuildURL substitutes the endpoint template placeholders for one grab:
//
//	ANO-MES-DIA    target date as YYYY-MM-DD
//	DIA/MES/ANO    target date as DD/MM/YYYY
//	QTDHORAS       (day+1)*24
//	QTDDIAS        day, at least 1
//	UNIXTIMESTART  midnight of the target day (unix seconds)
//	UNIXTIMEEND    midnight of the following day (unix seconds)
//	IDCANAL        single channel selector
//	LISTACANAIS    batched channel selector
func BuildURL(template string, day int, channelSelector string, now time.Time) string {
	date := now.AddDate(0, 0, day)

	url := template
	url = strings.ReplaceAll(url, "ANO-MES-DIA", date.Format("2006-01-02"))
	url = strings.ReplaceAll(url, "DIA/MES/ANO", date.Format("02/01/2006"))
	url = strings.ReplaceAll(url, "QTDHORAS", strconv.Itoa((day+1)*24))
	url = strings.ReplaceAll(url, "QTDDIAS", strconv.Itoa(max(day, 1)))

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	url = strings.ReplaceAll(url, "UNIXTIMESTART", strconv.FormatInt(dayStart.Unix(), 10))
	url = strings.ReplaceAll(url, "UNIXTIMEEND", strconv.FormatInt(dayEnd.Unix(), 10))

	if channelSelector != "" {
		url = strings.ReplaceAll(url, "LISTACANAIS", channelSelector)
		url = strings.ReplaceAll(url, "IDCANAL", channelSelector)
	}

	return url
}
