// Package writer emits canonical program records as an XMLTV document.
package writer

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/brasil-epg/grabber/app/extract"
	"github.com/brasil-epg/grabber/app/pipeline"
)

type TV struct {
	XMLName      xml.Name    `xml:"tv"`
	Generator    string      `xml:"generator-info-name,attr,omitempty"`
	GeneratorURL string      `xml:"generator-info-url,attr,omitempty"`
	Channels     []Channel   `xml:"channel"`
	Programmes   []Programme `xml:"programme"`
}

type Channel struct {
	ID          string      `xml:"id,attr"`
	DisplayName DisplayName `xml:"display-name"`
}

type DisplayName struct {
	Lang  string `xml:"lang,attr,omitempty"`
	Value string `xml:",chardata"`
}

type Programme struct {
	Start           string    `xml:"start,attr"`
	Stop            string    `xml:"stop,attr"`
	Channel         string    `xml:"channel,attr"`
	Title           *TextElem `xml:"title,omitempty"`
	SubTitle        *TextElem `xml:"sub-title,omitempty"`
	Desc            *TextElem `xml:"desc,omitempty"`
	Length          *Length   `xml:"length,omitempty"`
	Category        *TextElem `xml:"category,omitempty"`
	Date            string    `xml:"date,omitempty"`
	EpisodeNum      *Episode  `xml:"episode-num,omitempty"`
	Rating          *Rating   `xml:"rating,omitempty"`
	PreviouslyShown *struct{} `xml:"previously-shown,omitempty"`
	Premiere        *struct{} `xml:"premiere,omitempty"`
	New             *struct{} `xml:"new,omitempty"`
}

type TextElem struct {
	Lang  string `xml:"lang,attr,omitempty"`
	Value string `xml:",chardata"`
}

type Length struct {
	Units string `xml:"units,attr"`
	Value string `xml:",chardata"`
}

type Episode struct {
	System string `xml:"system,attr"`
	Value  string `xml:",chardata"`
}

type Rating struct {
	System string `xml:"system,attr"`
	Value  string `xml:"value"`
}

// BuildTV maps an ordered record list onto the XMLTV document structure.
// Unique channel ids become <channel> elements in first-seen order; each
// record becomes one <programme>.
func BuildTV(records []*pipeline.Record) *TV {
	tv := &TV{
		Generator:    "brasil-epg",
		GeneratorURL: "https://github.com/brasil-epg/grabber",
	}

	seen := make(map[string]bool)
	for _, rec := range records {
		if rec.Channel == "" || seen[rec.Channel] {
			continue
		}
		seen[rec.Channel] = true
		tv.Channels = append(tv.Channels, Channel{
			ID:          rec.Channel,
			DisplayName: DisplayName{Lang: "pt", Value: rec.Channel},
		})
	}

	for _, rec := range records {
		tv.Programmes = append(tv.Programmes, buildProgramme(rec))
	}

	return tv
}

func buildProgramme(rec *pipeline.Record) Programme {
	prog := Programme{
		Start:   FormatInstant(rec.Start),
		Stop:    FormatInstant(rec.End),
		Channel: rec.Channel,
	}

	if rec.Title != "" {
		prog.Title = &TextElem{Lang: "pt", Value: rec.Title}
	}
	if rec.Subtitle != "" {
		prog.SubTitle = &TextElem{Lang: "pt", Value: rec.Subtitle}
	}
	if rec.Description != "" {
		prog.Desc = &TextElem{Lang: "pt", Value: rec.Description}
	}
	if rec.Duration != "" {
		prog.Length = &Length{Units: "minutes", Value: rec.Duration}
	}
	if rec.Genre != "" {
		prog.Category = &TextElem{Lang: "en", Value: rec.Genre}
	}

	if rec.EventDate != "" {
		if t, err := time.Parse("02/01/2006", rec.EventDate); err == nil {
			prog.Date = t.Format("20060102")
		}
	}

	if rec.Season != nil || rec.Episode != nil {
		prog.EpisodeNum = &Episode{
			System: "xmltv_ns",
			Value:  fmt.Sprintf("%s.%s.", numText(rec.Season), numText(rec.Episode)),
		}
	}

	if rec.Rating != "" {
		prog.Rating = &Rating{System: "Brazil", Value: "[" + rec.Rating + "]"}
	}

	// Exactly one terminal status element, by priority.
	switch {
	case rec.Rerun:
		prog.PreviouslyShown = &struct{}{}
	case rec.Premiere:
		prog.Premiere = &struct{}{}
	case rec.Live.Set():
		prog.New = &struct{}{}
	}

	return prog
}

func numText(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%d", *n)
}

// FormatInstant renders an instant in the XMLTV attribute format
// "YYYYMMDDHHMMSS ±HHMM". Degraded instants pass their raw text through
// unchanged.
func FormatInstant(i extract.Instant) string {
	if !i.Valid() {
		return i.Raw
	}
	return i.Time.Format("20060102150405 -0700")
}
