package writer

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/brasil-epg/grabber/app/extract"
	"github.com/brasil-epg/grabber/app/pipeline"
)

func instantAt(t time.Time) extract.Instant {
	return extract.Instant{Time: t}
}

func TestBuildTVChannelsFirstSeenOrder(t *testing.T) {
	records := []*pipeline.Record{
		{Channel: "Globo SP", Title: "Jornal Nacional"},
		{Channel: "SBT", Title: "Novela"},
		{Channel: "Globo SP", Title: "Fantástico"},
	}

	tv := BuildTV(records)

	if len(tv.Channels) != 2 {
		t.Fatalf("Expected 2 unique channels, got %d", len(tv.Channels))
	}
	if tv.Channels[0].ID != "Globo SP" || tv.Channels[1].ID != "SBT" {
		t.Errorf("Expected first-seen order, got %v", tv.Channels)
	}
	if len(tv.Programmes) != 3 {
		t.Errorf("Expected 3 programmes, got %d", len(tv.Programmes))
	}
}

func TestBuildProgrammeEpisodeNum(t *testing.T) {
	season, episode := 0, 4
	prog := buildProgramme(&pipeline.Record{
		Channel: "Viva",
		Title:   "Chaves",
		Season:  &season,
		Episode: &episode,
	})

	if prog.EpisodeNum == nil {
		t.Fatal("Expected episode-num element")
	}
	if prog.EpisodeNum.System != "xmltv_ns" {
		t.Errorf("Expected xmltv_ns system, got %q", prog.EpisodeNum.System)
	}
	if prog.EpisodeNum.Value != "0.4." {
		t.Errorf("Expected '0.4.', got %q", prog.EpisodeNum.Value)
	}
}

func TestBuildProgrammeEpisodeOnly(t *testing.T) {
	episode := 44
	prog := buildProgramme(&pipeline.Record{Channel: "Viva", Title: "Novela", Episode: &episode})

	if prog.EpisodeNum == nil || prog.EpisodeNum.Value != ".44." {
		t.Fatalf("Expected '.44.' with empty season slot, got %+v", prog.EpisodeNum)
	}
}

func TestBuildProgrammeStatusPriority(t *testing.T) {
	rec := &pipeline.Record{
		Channel:  "SporTV",
		Title:    "VT - Campeonato",
		Rerun:    true,
		Premiere: true,
		Live:     pipeline.LiveTrue(),
	}
	prog := buildProgramme(rec)

	if prog.PreviouslyShown == nil {
		t.Error("Expected previously-shown to win")
	}
	if prog.Premiere != nil || prog.New != nil {
		t.Error("Expected exactly one status element")
	}

	rec = &pipeline.Record{Channel: "Globo SP", Title: "Renascer", Premiere: true, Live: pipeline.LiveTrue()}
	prog = buildProgramme(rec)

	if prog.Premiere == nil || prog.New != nil {
		t.Error("Expected premiere to beat live")
	}

	rec = &pipeline.Record{Channel: "Globo SP", Title: "Futebol", Live: pipeline.LiveTrue()}
	prog = buildProgramme(rec)

	if prog.New == nil {
		t.Error("Expected new element for live status")
	}
}

func TestBuildProgrammeRatingAndDate(t *testing.T) {
	prog := buildProgramme(&pipeline.Record{
		Channel:   "Globo SP",
		Title:     "Tela Quente",
		Rating:    "14",
		EventDate: "10/05/2024",
	})

	if prog.Rating == nil || prog.Rating.System != "Brazil" || prog.Rating.Value != "[14]" {
		t.Errorf("Expected bracketed Brazil rating, got %+v", prog.Rating)
	}
	if prog.Date != "20240510" {
		t.Errorf("Expected compact date, got %q", prog.Date)
	}
}

func TestFormatInstant(t *testing.T) {
	loc := time.FixedZone("-03:00", -3*3600)
	i := instantAt(time.Date(2024, 5, 10, 20, 30, 0, 0, loc))

	if got := FormatInstant(i); got != "20240510203000 -0300" {
		t.Errorf("Expected XMLTV timestamp, got %q", got)
	}

	degraded := extract.Instant{Raw: "sem horário"}
	if got := FormatInstant(degraded); got != "sem horário" {
		t.Errorf("Expected raw passthrough, got %q", got)
	}
}

func TestWriterRunFilenames(t *testing.T) {
	outputDir := t.TempDir()
	records := []*pipeline.Record{{Channel: "Globo SP", Title: "Jornal Nacional"}}

	path, err := NewWriter().Run(records, "Band São Paulo", outputDir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "band_sao_paulo_epg.xml") {
		t.Errorf("Expected slugified filename, got %q", path)
	}

	path, err = NewWriter().Run(records, "", outputDir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "epg.xml") || strings.Contains(path, "_epg.xml") {
		t.Errorf("Expected plain epg.xml for multi-service runs, got %q", path)
	}
}

func TestWriterRunDocument(t *testing.T) {
	outputDir := t.TempDir()
	loc := time.FixedZone("-03:00", -3*3600)

	records := []*pipeline.Record{{
		Channel: "Globo SP",
		Title:   "Jornal Nacional",
		Start:   instantAt(time.Date(2024, 5, 10, 20, 30, 0, 0, loc)),
		End:     instantAt(time.Date(2024, 5, 10, 21, 15, 0, 0, loc)),
	}}

	path, err := NewWriter().Run(records, "Globo", outputDir)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data := string(raw)

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<channel id="Globo SP">`,
		`start="20240510203000 -0300"`,
		`<title lang="pt">Jornal Nacional</title>`,
	} {
		if !strings.Contains(data, want) {
			t.Errorf("Expected document to contain %q", want)
		}
	}
}
