// Package handlers adapts filesystem-facing commands onto the domain
// services.
package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/trip5/webstations/internal/domain/entities"
	"github.com/trip5/webstations/internal/domain/services"
)

// lockFileName guards an output directory against concurrent conversions.
const lockFileName = ".webstations.lock"

// ConvertHandler handles playlist conversion.
type ConvertHandler struct {
	convertService *services.ConvertService
}

// NewConvertHandler creates a new convert handler.
func NewConvertHandler(convertService *services.ConvertService) *ConvertHandler {
	return &ConvertHandler{
		convertService: convertService,
	}
}

// ConvertResult contains the result of converting one source file.
type ConvertResult struct {
	SourceFile string
	Playlist   *entities.Playlist
	Written    bool // false when the source yielded no stations
}

// ConvertBatchResult contains the result of a directory conversion run.
type ConvertBatchResult struct {
	TotalFiles    int // files that produced renditions
	TotalStations int
	Skipped       int // eligible files with zero recognizable stations
	FileResults   []*ConvertResult
	Errors        []error
	Run           *entities.ConversionRun
}

// Handle converts a single playlist file into outputDir.
func (h *ConvertHandler) Handle(_ context.Context, filePath, outputDir string) (*ConvertResult, error) {
	absPath, file, err := openSource(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	playlist, err := h.convertService.ConvertFromReader(file, absPath, outputDir)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", filepath.Base(absPath), err)
	}

	return &ConvertResult{
		SourceFile: absPath,
		Playlist:   playlist,
		Written:    len(playlist.Stations) > 0,
	}, nil
}

// Preview parses a single playlist file without writing renditions.
func (h *ConvertHandler) Preview(_ context.Context, filePath string) (*entities.Playlist, error) {
	absPath, file, err := openSource(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	playlist, err := h.convertService.Preview(file, absPath)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(absPath), err)
	}
	return playlist, nil
}

// HandleDirectory converts every eligible playlist source in dirPath into
// outputDir, in sorted name order, and records the run in the catalog.
// Per-file failures are collected, never fatal to the batch.
func (h *ConvertHandler) HandleDirectory(ctx context.Context, dirPath, outputDir string, progressFn func(file string)) (*ConvertBatchResult, error) {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("input directory not found: %s", absPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	files, err := eligibleFiles(absPath)
	if err != nil {
		return nil, fmt.Errorf("listing input directory: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// One writer per output directory at a time.
	lock := flock.New(filepath.Join(outputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking output directory: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("output directory %s is in use by another conversion", outputDir)
	}
	defer lock.Unlock()

	result := &ConvertBatchResult{
		FileResults: make([]*ConvertResult, 0, len(files)),
	}
	startedAt := time.Now().UTC()

	var written []*entities.Playlist
	for _, file := range files {
		if progressFn != nil {
			progressFn(file)
		}

		fileResult, err := h.Handle(ctx, file, outputDir)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", file, err))
			continue
		}

		result.FileResults = append(result.FileResults, fileResult)
		if !fileResult.Written {
			result.Skipped++
			continue
		}
		result.TotalFiles++
		result.TotalStations += len(fileResult.Playlist.Stations)
		written = append(written, fileResult.Playlist)
	}

	run := &entities.ConversionRun{
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
		Files:      result.TotalFiles,
		Stations:   result.TotalStations,
	}
	if err := h.convertService.RecordRun(ctx, run, written); err != nil {
		return nil, err
	}
	result.Run = run

	return result, nil
}

// eligibleFiles lists the .csv/.json files directly inside dirPath, in
// sorted name order.
func eligibleFiles(dirPath string) ([]string, error) {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if ext != ".csv" && ext != ".json" {
			continue
		}
		files = append(files, filepath.Join(dirPath, de.Name()))
	}
	return files, nil
}

func openSource(filePath string) (string, *os.File, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", nil, fmt.Errorf("accessing file: %w", err)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("path is a directory, not a file: %s", absPath)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return "", nil, fmt.Errorf("opening file: %w", err)
	}
	return absPath, file, nil
}
