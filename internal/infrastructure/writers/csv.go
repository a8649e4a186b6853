// Package writers serializes normalized playlists into their output
// renditions: tab-delimited text, compact JSON, and the summary index.
package writers

import (
	"fmt"
	"io"

	"github.com/trip5/webstations/internal/domain/entities"
)

// WriteCSV writes stations as tab-delimited lines: name, url, ovol.
func WriteCSV(w io.Writer, stations []entities.Station) error {
	for _, s := range stations {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", s.Name, s.URL, s.VolumeOffset); err != nil {
			return fmt.Errorf("writing station: %w", err)
		}
	}
	return nil
}
