package pipeline

import "testing"

func TestExtractPhaseStageAndLegCombine(t *testing.T) {
	p := newTestProcessor(t, "", nil)

	rec := &Record{Title: "Copa do Brasil Oitavas De Final Jogo De Ida"}
	p.extractPhase(rec)

	if rec.Phase != "Oitavas de Final - Jogo de Ida" {
		t.Errorf("Expected combined stage and leg, got %q", rec.Phase)
	}
	if rec.Title != "Copa do Brasil" {
		t.Errorf("Expected all phase tokens stripped, got %q", rec.Title)
	}
}

func TestExtractPhasePriorityTieBreak(t *testing.T) {
	p := newTestProcessor(t, "", nil)

	// "Semifinal" also matches the bare "Final" pattern; the more specific
	// one must win.
	rec := &Record{Title: "Campeonato - Semifinal"}
	p.extractPhase(rec)

	if rec.Phase != "Semifinal" {
		t.Errorf("Expected Semifinal to beat Final, got %q", rec.Phase)
	}
	if rec.Title != "Campeonato" {
		t.Errorf("Expected phase stripped, got %q", rec.Title)
	}
}

func TestExtractPhaseNumberedRound(t *testing.T) {
	p := newTestProcessor(t, "", nil)

	rec := &Record{Title: "Brasileirão 5ª Rodada"}
	p.extractPhase(rec)

	if rec.Phase != "5ª Rodada" {
		t.Errorf("Expected round rebuilt from captured number, got %q", rec.Phase)
	}
	if rec.Title != "Brasileirão" {
		t.Errorf("Expected round stripped, got %q", rec.Title)
	}
}

func TestExtractPhaseTitleShadowsSubtitle(t *testing.T) {
	p := newTestProcessor(t, "", nil)

	rec := &Record{
		Title:    "Copa - Final",
		Subtitle: "Semifinal",
	}
	p.extractPhase(rec)

	if rec.Phase != "Final" {
		t.Errorf("Expected title phase, got %q", rec.Phase)
	}
	if rec.Subtitle != "Semifinal" {
		t.Errorf("Expected subtitle untouched once the title matched, got %q", rec.Subtitle)
	}
}

func TestExtractPhaseSubtitleFallback(t *testing.T) {
	p := newTestProcessor(t, "", nil)

	rec := &Record{
		Title:    "Libertadores",
		Subtitle: "Fase De Grupos",
	}
	p.extractPhase(rec)

	if rec.Phase != "Fase de Grupos" {
		t.Errorf("Expected subtitle phase, got %q", rec.Phase)
	}
	if rec.Subtitle != "" {
		t.Errorf("Expected subtitle emptied, got %q", rec.Subtitle)
	}
}
