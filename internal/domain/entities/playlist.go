package entities

import "time"

// Playlist is the set of stations parsed from one source file.
type Playlist struct {
	Name       string    // base name without extension
	SourceFile string    // absolute path of the source file
	Stations   []Station // in source order
}

// ConversionRun records one batch conversion in the catalog.
type ConversionRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Files      int
	Stations   int
}

// PlaylistRecord is the per-playlist row stored with a conversion run.
type PlaylistRecord struct {
	RunID      string
	Name       string
	SourceFile string
	Stations   int
}

// IndexEntry describes one playlist pair in the generated index.
type IndexEntry struct {
	Name  string `json:"name"`
	CSV   string `json:"csv"`
	JSON  string `json:"json"`
	Total string `json:"total"`
}
