package writers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/trip5/webstations/internal/domain/entities"
)

// exportStation mirrors Station with the offset serialized as a string,
// matching the format the radio firmware consumes.
type exportStation struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Ovol string `json:"ovol"`
}

// WriteJSON writes stations as one compact JSON array.
func WriteJSON(w io.Writer, stations []entities.Station) error {
	out := make([]exportStation, 0, len(stations))
	for _, s := range stations {
		out = append(out, exportStation{
			Name: s.Name,
			URL:  s.URL,
			Ovol: strconv.Itoa(s.VolumeOffset),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding stations: %w", err)
	}
	return nil
}
