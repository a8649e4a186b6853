// Package sqlite provides a SQLite implementation of the Catalog interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/trip5/webstations/internal/domain/entities"
	"github.com/trip5/webstations/internal/infrastructure/config"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// Repository implements ports.Catalog using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite catalog repository.
func NewRepository(cfg config.CatalogConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("catalog path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the catalog schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Conversion runs
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL,
		files INTEGER NOT NULL,
		stations INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

	-- Playlists produced per run
	CREATE TABLE IF NOT EXISTS run_playlists (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		source_file TEXT NOT NULL,
		stations INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_run_playlists_run ON run_playlists(run_id);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveRun stores a finished conversion run. A missing ID is assigned.
func (r *Repository) SaveRun(ctx context.Context, run *entities.ConversionRun) error {
	if run.ID == "" {
		run.ID = generateUUID()
	}

	query := `
		INSERT INTO runs (id, started_at, finished_at, files, stations)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.StartedAt,
		run.FinishedAt,
		run.Files,
		run.Stations,
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]entities.ConversionRun, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, started_at, finished_at, files, stations
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []entities.ConversionRun
	for rows.Next() {
		var run entities.ConversionRun
		if err := rows.Scan(
			&run.ID,
			&run.StartedAt,
			&run.FinishedAt,
			&run.Files,
			&run.Stations,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// SavePlaylist stores one playlist row belonging to a run.
func (r *Repository) SavePlaylist(ctx context.Context, rec *entities.PlaylistRecord) error {
	query := `
		INSERT INTO run_playlists (run_id, name, source_file, stations)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.RunID,
		rec.Name,
		rec.SourceFile,
		rec.Stations,
	)
	if err != nil {
		return fmt.Errorf("saving playlist record: %w", err)
	}
	return nil
}

// ListPlaylists returns the playlist rows of a run, by name.
func (r *Repository) ListPlaylists(ctx context.Context, runID string) ([]entities.PlaylistRecord, error) {
	query := `
		SELECT run_id, name, source_file, stations
		FROM run_playlists
		WHERE run_id = ?
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing playlists: %w", err)
	}
	defer rows.Close()

	var records []entities.PlaylistRecord
	for rows.Next() {
		var rec entities.PlaylistRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Name,
			&rec.SourceFile,
			&rec.Stations,
		); err != nil {
			return nil, fmt.Errorf("scanning playlist record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
