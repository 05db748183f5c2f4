package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mappings holds the three global mapping tables, loaded once and immutable
// afterwards. Keys are exact-match, case-sensitive source strings.
type Mappings struct {
	competitions map[string]competitionEntry
	programs     map[string]string
	genres       map[string]string
}

type competitionEntry struct {
	name  string
	genre string
}

type rawMappings struct {
	Competitions map[string]any    `yaml:"competitions"`
	Programs     map[string]string `yaml:"programs"`
	Genres       map[string]string `yaml:"genres"`
}

func loadMappings(path string) (*Mappings, error) {
	m := &Mappings{
		competitions: make(map[string]competitionEntry),
		programs:     make(map[string]string),
		genres:       make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings file: %w", err)
	}

	var raw rawMappings
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse mappings file: %w", err)
	}

	// Competition values are either a bare name or a [name, genre] pair.
	for key, value := range raw.Competitions {
		switch v := value.(type) {
		case string:
			m.competitions[key] = competitionEntry{name: v}
		case []any:
			entry := competitionEntry{}
			if len(v) > 0 {
				entry.name = fmt.Sprint(v[0])
			}
			if len(v) > 1 {
				entry.genre = fmt.Sprint(v[1])
			}
			if entry.name != "" {
				m.competitions[key] = entry
			}
		}
	}

	for key, value := range raw.Programs {
		m.programs[key] = value
	}
	for key, value := range raw.Genres {
		m.genres[key] = value
	}

	return m, nil
}

// Competition looks up a competition mapping. Returns the canonical name,
// an optional genre and whether the key was present.
func (m *Mappings) Competition(key string) (name, genre string, ok bool) {
	entry, ok := m.competitions[key]
	return entry.name, entry.genre, ok
}

// Program looks up a program name mapping.
func (m *Mappings) Program(key string) (string, bool) {
	name, ok := m.programs[key]
	return name, ok
}

// Genre looks up a genre mapping.
func (m *Mappings) Genre(key string) (string, bool) {
	name, ok := m.genres[key]
	return name, ok
}
