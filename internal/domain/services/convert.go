// Package services contains the domain orchestration for conversion runs.
package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/trip5/webstations/internal/domain/entities"
	"github.com/trip5/webstations/internal/domain/ports"
	"github.com/trip5/webstations/internal/infrastructure/parsers"
	"github.com/trip5/webstations/internal/infrastructure/writers"
)

// ConvertService normalizes playlist sources and writes their renditions.
type ConvertService struct {
	catalog ports.Catalog
}

// NewConvertService creates a new ConvertService.
func NewConvertService(catalog ports.Catalog) *ConvertService {
	return &ConvertService{
		catalog: catalog,
	}
}

// Preview parses one playlist source without writing any renditions.
func (s *ConvertService) Preview(r io.Reader, sourcePath string) (*entities.Playlist, error) {
	stations, err := parsers.ParseAll(r, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("parsing playlist: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return &entities.Playlist{
		Name:       base,
		SourceFile: sourcePath,
		Stations:   stations,
	}, nil
}

// ConvertFromReader parses one playlist source and, when it yields any
// stations, writes the CSV and JSON renditions into outputDir. A source
// with zero recognizable stations produces no files and no error.
func (s *ConvertService) ConvertFromReader(r io.Reader, sourcePath, outputDir string) (*entities.Playlist, error) {
	playlist, err := s.Preview(r, sourcePath)
	if err != nil {
		return nil, err
	}
	if len(playlist.Stations) == 0 {
		return playlist, nil
	}

	csvPath := filepath.Join(outputDir, playlist.Name+".csv")
	if err := writeFile(csvPath, func(w io.Writer) error {
		return writers.WriteCSV(w, playlist.Stations)
	}); err != nil {
		return nil, err
	}

	jsonPath := filepath.Join(outputDir, playlist.Name+".json")
	if err := writeFile(jsonPath, func(w io.Writer) error {
		return writers.WriteJSON(w, playlist.Stations)
	}); err != nil {
		return nil, err
	}

	return playlist, nil
}

// RecordRun stores a finished run and its playlists in the catalog.
func (s *ConvertService) RecordRun(ctx context.Context, run *entities.ConversionRun, playlists []*entities.Playlist) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	if err := s.catalog.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	for _, playlist := range playlists {
		rec := &entities.PlaylistRecord{
			RunID:      run.ID,
			Name:       playlist.Name,
			SourceFile: playlist.SourceFile,
			Stations:   len(playlist.Stations),
		}
		if err := s.catalog.SavePlaylist(ctx, rec); err != nil {
			return fmt.Errorf("recording playlist %s: %w", playlist.Name, err)
		}
	}
	return nil
}

// Runs returns the most recent conversion runs from the catalog.
func (s *ConvertService) Runs(ctx context.Context, limit int) ([]entities.ConversionRun, error) {
	return s.catalog.ListRuns(ctx, limit)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
