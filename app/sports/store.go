package sports

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store is a SQLite-backed match cache. The cache is collaborator-internal:
// nothing else in the run reads or writes it.
type Store struct {
	db *sql.DB
}

var _ Lookup = (*Store)(nil)

// Open returns a Lookup backed by the cache database at path, or the
// Disabled null lookup when no path is configured or the file is missing.
// Absence silently disables football enrichment.
func Open(path string) Lookup {
	if path == "" {
		return Disabled{}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("Sports cache not found, lookup disabled", "path", path)
		return Disabled{}
	}

	store, err := NewStore(path)
	if err != nil {
		slog.Warn("Failed to open sports cache, lookup disabled", "path", path, "error", err)
		return Disabled{}
	}

	slog.Debug("Sports lookup enabled", "path", path)
	return store
}

// NewStore opens the cache database and applies pending migrations.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sports cache: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// FindMatch looks up a fixture on the reference day by team pair,
// case-insensitively.
func (s *Store) FindMatch(ctx context.Context, dateRef time.Time, homeTeam, awayTeam string) (Match, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT competition, home_team, away_team, phase, stadium
		FROM matches
		WHERE match_date = ?
		  AND lower(home_team) = ?
		  AND lower(away_team) = ?
		LIMIT 1`,
		dateRef.Format("2006-01-02"),
		strings.ToLower(strings.TrimSpace(homeTeam)),
		strings.ToLower(strings.TrimSpace(awayTeam)),
	)

	var m Match
	err := row.Scan(&m.Competition, &m.HomeTeam, &m.AwayTeam, &m.Phase, &m.Stadium)
	if err == sql.ErrNoRows {
		return Match{}, false, nil
	}
	if err != nil {
		return Match{}, false, fmt.Errorf("failed to query sports cache: %w", err)
	}

	return m, true, nil
}

// SaveMatch inserts or refreshes one cached fixture.
func (s *Store) SaveMatch(ctx context.Context, date time.Time, m Match) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO matches (match_date, competition, home_team, away_team, phase, stadium)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (match_date, home_team, away_team) DO UPDATE SET
			competition = excluded.competition,
			phase = excluded.phase,
			stadium = excluded.stadium`,
		date.Format("2006-01-02"), m.Competition, m.HomeTeam, m.AwayTeam, m.Phase, m.Stadium)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}
