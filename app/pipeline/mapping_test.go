package pipeline

import "testing"

const mappingFixture = `
competitions:
  "Brasileirao Serie A":
    - "Campeonato Brasileiro"
    - "soccer"
  "Copa BR": "Copa do Brasil"
programs:
  "JN": "Jornal Nacional"
genres:
  "Futebol": "soccer"
  "Jornalismo": "news/current affairs (general)"
`

func TestMapCompetitionSetsGenre(t *testing.T) {
	p := newTestProcessor(t, mappingFixture, nil)

	rec := &Record{Channel: "Globo SP", Title: "Brasileirao Serie A"}
	p.mapCompetitionsPrograms(rec)

	if rec.Title != "Campeonato Brasileiro" {
		t.Errorf("Expected mapped title, got %q", rec.Title)
	}
	if rec.Genre != "soccer" {
		t.Errorf("Expected genre from competition pair, got %q", rec.Genre)
	}
}

func TestMapCompetitionFieldBeforeTitle(t *testing.T) {
	p := newTestProcessor(t, mappingFixture, nil)

	rec := &Record{Channel: "SBT", Title: "Copa BR", Competition: "Brasileirao Serie A"}
	p.mapCompetitionsPrograms(rec)

	if rec.Competition != "Campeonato Brasileiro" {
		t.Errorf("Expected competition field mapped, got %q", rec.Competition)
	}
	if rec.Title != "Copa BR" {
		t.Errorf("Expected title untouched when the competition field hit, got %q", rec.Title)
	}
}

func TestMapCompetitionForcesVTOnHighlightChannel(t *testing.T) {
	p := newTestProcessor(t, mappingFixture, nil)

	rec := &Record{Channel: "Premiere Clubes", Title: "Brasileirao Serie A"}
	p.mapCompetitionsPrograms(rec)

	if rec.Live.Marker() != "VT" {
		t.Errorf("Expected VT marker on highlight channel, got %q", rec.Live.Marker())
	}

	rec = &Record{Channel: "Premiere Clubes", Title: "Brasileirao Serie A", Live: LiveTrue()}
	p.mapCompetitionsPrograms(rec)

	if !rec.Live.IsLive() {
		t.Error("Expected explicit live flag to suppress VT")
	}

	rec = &Record{Channel: "Globo SP", Title: "Brasileirao Serie A"}
	p.mapCompetitionsPrograms(rec)

	if rec.Live.Marker() == "VT" {
		t.Error("Expected no VT marker off the highlight families")
	}
}

func TestMapProgramName(t *testing.T) {
	p := newTestProcessor(t, mappingFixture, nil)

	rec := &Record{Channel: "Globo SP", Title: "JN"}
	p.mapCompetitionsPrograms(rec)

	if rec.Title != "Jornal Nacional" {
		t.Errorf("Expected program mapping, got %q", rec.Title)
	}
}

func TestMapGenreStringForm(t *testing.T) {
	p := newTestProcessor(t, mappingFixture, nil)

	rec := &Record{Genre: "Futebol"}
	p.mapGenre(rec, "Futebol")

	if rec.Genre != "soccer" {
		t.Errorf("Expected mapped genre, got %q", rec.Genre)
	}
}

func TestMapGenreListForm(t *testing.T) {
	p := newTestProcessor(t, mappingFixture, nil)

	rec := &Record{}
	p.mapGenre(rec, []any{"desconhecido", "Jornalismo"})

	if rec.Genre != "news/current affairs (general)" {
		t.Errorf("Expected first mapped list element, got %q", rec.Genre)
	}

	rec = &Record{}
	p.mapGenre(rec, []any{"variedades", "auditório"})

	if rec.Genre != "variedades" {
		t.Errorf("Expected first element fallback when nothing maps, got %q", rec.Genre)
	}
}

func TestMapGenreLiveOverride(t *testing.T) {
	p := newTestProcessor(t, mappingFixture, nil)

	rec := &Record{Genre: "Futebol", Live: LiveTrue()}
	p.mapGenre(rec, "Futebol")

	if rec.Genre != "live broadcast" {
		t.Errorf("Expected live broadcast to override mapping, got %q", rec.Genre)
	}
}
