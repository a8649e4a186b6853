// Package mocks provides in-memory test doubles for the domain ports.
package mocks

import (
	"context"
	"sort"

	"github.com/trip5/webstations/internal/domain/entities"
)

// Catalog is a mock implementation of ports.Catalog.
type Catalog struct {
	Runs      []entities.ConversionRun
	Playlists []entities.PlaylistRecord
	Err       error
}

// NewCatalog creates a new mock Catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// EnsureSchema creates the catalog schema if it doesn't exist.
func (m *Catalog) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the underlying store.
func (m *Catalog) Close() error {
	return nil
}

// SaveRun stores a finished conversion run.
func (m *Catalog) SaveRun(_ context.Context, run *entities.ConversionRun) error {
	if m.Err != nil {
		return m.Err
	}
	m.Runs = append(m.Runs, *run)
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (m *Catalog) ListRuns(_ context.Context, limit int) ([]entities.ConversionRun, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	runs := make([]entities.ConversionRun, len(m.Runs))
	copy(runs, m.Runs)
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// SavePlaylist stores one playlist row belonging to a run.
func (m *Catalog) SavePlaylist(_ context.Context, rec *entities.PlaylistRecord) error {
	if m.Err != nil {
		return m.Err
	}
	m.Playlists = append(m.Playlists, *rec)
	return nil
}

// ListPlaylists returns the playlist rows of a run, by name.
func (m *Catalog) ListPlaylists(_ context.Context, runID string) ([]entities.PlaylistRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var records []entities.PlaylistRecord
	for _, rec := range m.Playlists {
		if rec.RunID == runID {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}
