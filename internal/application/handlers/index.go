package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trip5/webstations/internal/domain/entities"
	"github.com/trip5/webstations/internal/domain/services"
)

// IndexHandler handles index generation for a playlists directory.
type IndexHandler struct {
	indexService *services.IndexService
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(indexService *services.IndexService) *IndexHandler {
	return &IndexHandler{
		indexService: indexService,
	}
}

// IndexResult contains the result of index generation.
type IndexResult struct {
	Path    string
	Entries []entities.IndexEntry
}

// Handle regenerates the index file inside the playlists directory.
func (h *IndexHandler) Handle(dirPath, indexFile string) (*IndexResult, error) {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("playlists directory not found: %s", absPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	entries, err := h.indexService.Generate(absPath, indexFile)
	if err != nil {
		return nil, fmt.Errorf("generating index: %w", err)
	}

	return &IndexResult{
		Path:    filepath.Join(absPath, indexFile),
		Entries: entries,
	}, nil
}
