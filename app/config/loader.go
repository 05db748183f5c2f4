package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrServiceNotFound marks a missing or unreadable service descriptor.
// Fatal for that service, raised immediately by Load.
var ErrServiceNotFound = errors.New("service not found")

// Store loads and caches per-service descriptors plus the global mapping
// tables from a configuration directory laid out as:
//
//	<dir>/services/*.yaml
//	<dir>/mappings.yaml
type Store struct {
	servicesDir string
	cache       map[string]*Service
	mappings    *Mappings
}

func NewStore(configDir string) (*Store, error) {
	mappings, err := loadMappings(filepath.Join(configDir, "mappings.yaml"))
	if err != nil {
		return nil, err
	}

	return &Store{
		servicesDir: filepath.Join(configDir, "services"),
		cache:       make(map[string]*Service),
		mappings:    mappings,
	}, nil
}

// Mappings returns the global mapping tables, loaded once at construction.
func (s *Store) Mappings() *Mappings {
	return s.mappings
}

// Names returns the names of all configured services.
func (s *Store) Names() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.servicesDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	ymlFiles, err := filepath.Glob(filepath.Join(s.servicesDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	names := make([]string, 0, len(files))
	for _, file := range files {
		base := filepath.Base(file)
		names = append(names, strings.TrimSuffix(base, filepath.Ext(base)))
	}

	return names, nil
}

// Load returns the normalized descriptor for a service, reading and caching
// it on first use.
func (s *Store) Load(name string) (*Service, error) {
	if svc, ok := s.cache[name]; ok {
		return svc, nil
	}

	path := filepath.Join(s.servicesDir, name+".yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = filepath.Join(s.servicesDir, name+".yml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}

	var raw rawService
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	svc := normalizeService(&raw)
	if err := validate(svc); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	s.cache[name] = svc
	slog.Debug("Loaded service configuration", "service", name, "file", path)

	return svc, nil
}

func normalizeService(raw *rawService) *Service {
	svc := &Service{
		Name:           raw.ServiceName,
		APIURL:         raw.APIURL,
		Headers:        raw.Headers,
		Channels:       raw.Channels,
		TargetChannels: normalizeList(raw.TargetChannels),
		APILevel1:      NormalizePath(raw.APILevel1),
		APILevel2:      NormalizePath(raw.APILevel2),
		Channel:        NormalizePath(raw.Channel),
		ProgramTitle:   NormalizePath(raw.ProgramTitle),
		Subtitle:       NormalizePath(raw.Subtitle),
		Description:    NormalizePath(raw.Description),
		StartTime:      NormalizePath(raw.StartTime),
		EndTime:        NormalizePath(raw.EndTime),
		Live:           NormalizePath(raw.Live),
		Duration:       NormalizePath(raw.Duration),
		Rating:         NormalizePath(raw.Rating),
		RatingCriteria: NormalizePath(raw.RatingCriteria),
		Season:         NormalizePath(raw.Season),
		Episode:        NormalizePath(raw.Episode),
		Tags:           NormalizePath(raw.Tags),
		Genre:          NormalizePath(raw.Genre),
		Timezone:       raw.Timezone,
		NoLoop:         raw.NoLoop,
		UseListInURL:   raw.UseListInURL,
		BatchSize:      raw.BatchSize,
	}

	if svc.Timezone == "" {
		svc.Timezone = "+00:00"
	}

	return svc
}

func validate(svc *Service) error {
	if svc.Name == "" {
		return fmt.Errorf("service_name is required")
	}
	if svc.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	if svc.BatchSize < 0 {
		return fmt.Errorf("batch_size must be non-negative")
	}
	return nil
}
