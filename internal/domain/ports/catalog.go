// Package ports defines the interfaces between the domain and its
// infrastructure implementations.
package ports

import (
	"context"

	"github.com/trip5/webstations/internal/domain/entities"
)

// Catalog records conversion runs and the playlists each run produced.
type Catalog interface {
	// EnsureSchema creates the catalog schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the underlying store.
	Close() error

	// SaveRun stores a finished conversion run.
	SaveRun(ctx context.Context, run *entities.ConversionRun) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]entities.ConversionRun, error)

	// SavePlaylist stores one playlist row belonging to a run.
	SavePlaylist(ctx context.Context, rec *entities.PlaylistRecord) error

	// ListPlaylists returns the playlist rows of a run, by name.
	ListPlaylists(ctx context.Context, runID string) ([]entities.PlaylistRecord, error)
}
