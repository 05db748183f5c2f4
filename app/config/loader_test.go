package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeService(t *testing.T, dir, name, content string) {
	t.Helper()
	servicesDir := filepath.Join(dir, "services")
	if err := os.MkdirAll(servicesDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(servicesDir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadValidService(t *testing.T) {
	tempDir := t.TempDir()

	content := `
service_name: "Globo SP"
api_url: "https://example.com/epg?data=ANO-MES-DIA"
api_level_1: "data.programs"
api_level_2: "entries"
program_title: "title"
start_time: "startTime"
channels:
  - id: "196"
    name: "Globo SP"
`
	writeService(t, tempDir, "globo.yaml", content)

	store, err := NewStore(tempDir)
	if err != nil {
		t.Fatal(err)
	}

	svc, err := store.Load("globo")
	if err != nil {
		t.Fatal(err)
	}

	if svc.Name != "Globo SP" {
		t.Errorf("Expected name 'Globo SP', got '%s'", svc.Name)
	}
	if len(svc.APILevel1) != 2 || svc.APILevel1[0] != "data" || svc.APILevel1[1] != "programs" {
		t.Errorf("Expected level-1 path [data programs], got %v", svc.APILevel1)
	}
	if svc.Timezone != "+00:00" {
		t.Errorf("Expected default timezone '+00:00', got '%s'", svc.Timezone)
	}
	if len(svc.Channels) != 1 || svc.Channels[0].ID != "196" {
		t.Errorf("Expected one channel with ID 196, got %v", svc.Channels)
	}
}

func TestLoadServiceNotFound(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, err = store.Load("missing")
	if !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("Expected ErrServiceNotFound, got %v", err)
	}
}

func TestLoadServiceMissingRequiredFields(t *testing.T) {
	tempDir := t.TempDir()
	writeService(t, tempDir, "broken.yaml", "service_name: \"Broken\"\n")

	store, err := NewStore(tempDir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load("broken"); err == nil {
		t.Error("Expected validation error for missing api_url")
	}
}

func TestLoadServiceYmlFallback(t *testing.T) {
	tempDir := t.TempDir()
	writeService(t, tempDir, "band.yml", "service_name: Band\napi_url: https://example.com\n")

	store, err := NewStore(tempDir)
	if err != nil {
		t.Fatal(err)
	}

	svc, err := store.Load("band")
	if err != nil {
		t.Fatal(err)
	}
	if svc.Name != "Band" {
		t.Errorf("Expected name 'Band', got '%s'", svc.Name)
	}
}

func TestNames(t *testing.T) {
	tempDir := t.TempDir()
	writeService(t, tempDir, "globo.yaml", "service_name: Globo\napi_url: u\n")
	writeService(t, tempDir, "sbt.yml", "service_name: SBT\napi_url: u\n")

	store, err := NewStore(tempDir)
	if err != nil {
		t.Fatal(err)
	}

	names, err := store.Names()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Errorf("Expected 2 service names, got %v", names)
	}
}

func TestNormalizePathEquivalence(t *testing.T) {
	dot := NormalizePath("data.programs.entries")
	plus := NormalizePath("data+programs+entries")
	list := NormalizePath([]any{"data", "programs", "entries"})

	for _, path := range [][]string{dot, plus, list} {
		if len(path) != 3 || path[0] != "data" || path[1] != "programs" || path[2] != "entries" {
			t.Errorf("Expected [data programs entries], got %v", path)
		}
	}
}

func TestNormalizePathNestedList(t *testing.T) {
	path := NormalizePath([]any{"data", []any{"programs", "entries"}})
	if len(path) != 3 || path[2] != "entries" {
		t.Errorf("Expected flattened 3-segment path, got %v", path)
	}
}

func TestNormalizePathBlank(t *testing.T) {
	if path := NormalizePath("  "); len(path) != 0 {
		t.Errorf("Expected empty path for blank string, got %v", path)
	}
	if path := NormalizePath(nil); len(path) != 0 {
		t.Errorf("Expected empty path for nil, got %v", path)
	}
}
