package parsers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/trip5/webstations/internal/domain/entities"
)

// JSONArrayParser parses a source whose whole body is one JSON array of
// station objects.
type JSONArrayParser struct{}

// Parse decodes the array and routes every element through ParseObject.
// Elements that are not objects, or that lack a URL, are skipped.
func (p *JSONArrayParser) Parse(r io.Reader) ([]entities.Station, error) {
	var elements []json.RawMessage
	if err := json.NewDecoder(r).Decode(&elements); err != nil {
		return nil, fmt.Errorf("parsing JSON array: %w", err)
	}

	var stations []entities.Station
	for _, raw := range elements {
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			continue
		}
		if station, ok := ParseObject(obj); ok {
			stations = append(stations, station)
		}
	}
	return stations, nil
}

// JSONLinesParser parses newline-delimited JSON objects. It tolerates
// array-style formatting split across lines: bracket lines are skipped,
// trailing commas stripped, and lines that fail to decode are dropped
// silently.
type JSONLinesParser struct{}

// Parse reads the source line by line and routes each decodable object
// through ParseObject.
func (p *JSONLinesParser) Parse(r io.Reader) ([]entities.Station, error) {
	var stations []entities.Station

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "[") || strings.HasPrefix(line, "]") {
			continue
		}
		line = strings.TrimSuffix(line, ",")

		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			continue
		}
		if station, ok := ParseObject(obj); ok {
			stations = append(stations, station)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return stations, nil
}
