// Package entities contains core domain data structures.
package entities

// Volume offset bounds. Recognition accepts a wider window than storage:
// a token outside [MinOvolToken, MaxOvolToken] is never treated as an
// offset, while stored values are clamped to [MinOvol, MaxOvol].
const (
	MinOvol      = -30
	MaxOvol      = 30
	MinOvolToken = -64
	MaxOvolToken = 64
)

// Station is a single normalized playlist entry. A Station always carries
// an absolute http/https URL and a non-empty display name.
type Station struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	VolumeOffset int    `json:"ovol"`
}

// ClampOvol restricts a volume offset to the storable range.
func ClampOvol(v int) int {
	if v < MinOvol {
		return MinOvol
	}
	if v > MaxOvol {
		return MaxOvol
	}
	return v
}
