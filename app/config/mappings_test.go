package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMappings(t *testing.T) {
	tempDir := t.TempDir()

	content := `
competitions:
  "Brasileirao": "Campeonato Brasileiro"
  "UCL":
    - "Champions League"
    - "soccer"
programs:
  "Jornal": "Jornal Nacional"
genres:
  "Futebol": "soccer"
`
	if err := os.WriteFile(filepath.Join(tempDir, "mappings.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := loadMappings(filepath.Join(tempDir, "mappings.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	name, genre, ok := m.Competition("Brasileirao")
	if !ok || name != "Campeonato Brasileiro" || genre != "" {
		t.Errorf("Expected bare-name competition mapping, got (%q, %q, %v)", name, genre, ok)
	}

	name, genre, ok = m.Competition("UCL")
	if !ok || name != "Champions League" || genre != "soccer" {
		t.Errorf("Expected pair competition mapping, got (%q, %q, %v)", name, genre, ok)
	}

	if _, _, ok := m.Competition("unknown"); ok {
		t.Error("Expected miss for unmapped competition")
	}

	if prog, ok := m.Program("Jornal"); !ok || prog != "Jornal Nacional" {
		t.Errorf("Expected program mapping, got (%q, %v)", prog, ok)
	}

	if g, ok := m.Genre("Futebol"); !ok || g != "soccer" {
		t.Errorf("Expected genre mapping, got (%q, %v)", g, ok)
	}
}

func TestLoadMappingsMissingFile(t *testing.T) {
	m, err := loadMappings(filepath.Join(t.TempDir(), "mappings.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if _, _, ok := m.Competition("anything"); ok {
		t.Error("Expected empty tables when the mappings file is absent")
	}
}
