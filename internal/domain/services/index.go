package services

import (
	"io"
	"path/filepath"

	"github.com/trip5/webstations/internal/domain/entities"
	"github.com/trip5/webstations/internal/infrastructure/writers"
)

// IndexService regenerates the summary index for a playlists directory.
type IndexService struct{}

// NewIndexService creates a new IndexService.
func NewIndexService() *IndexService {
	return &IndexService{}
}

// Generate scans dir for paired playlist renditions and writes the index
// file inside it. Returns the entries that were indexed.
func (s *IndexService) Generate(dir, indexFile string) ([]entities.IndexEntry, error) {
	entries, err := writers.BuildIndex(dir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, indexFile)
	if err := writeFile(path, func(w io.Writer) error {
		return writers.WriteIndex(w, entries)
	}); err != nil {
		return nil, err
	}
	return entries, nil
}
