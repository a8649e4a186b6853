// Package parsers turns loosely structured playlist sources into Stations.
//
// Sources arrive either as delimited text (tab, columnar multi-space, or
// plain whitespace) or as JSON with inconsistent key schemas. Units that
// cannot be understood are dropped silently; a file simply yields fewer
// records.
package parsers

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/trip5/webstations/internal/domain/entities"
)

// Format identifies the overall shape of a playlist source.
type Format int

// Supported source formats.
const (
	FormatDelimited Format = iota
	FormatJSONArray
	FormatJSONLines
)

// Parser parses one playlist source into stations, in input order.
type Parser interface {
	Parse(r io.Reader) ([]entities.Station, error)
}

// DetectFormat classifies a source from its filename and first non-blank
// line. A .json extension or a leading brace/bracket marks JSON; a leading
// bracket means one top-level array, anything else newline-delimited
// objects.
func DetectFormat(filename, firstLine string) Format {
	firstLine = strings.TrimSpace(firstLine)
	isJSON := strings.EqualFold(filepath.Ext(filename), ".json") ||
		strings.HasPrefix(firstLine, "{") ||
		strings.HasPrefix(firstLine, "[")
	if !isJSON {
		return FormatDelimited
	}
	if strings.HasPrefix(firstLine, "[") {
		return FormatJSONArray
	}
	return FormatJSONLines
}

// ForFormat returns the parser for a detected format.
func ForFormat(f Format) Parser {
	switch f {
	case FormatJSONArray:
		return &JSONArrayParser{}
	case FormatJSONLines:
		return &JSONLinesParser{}
	default:
		return &DelimitedParser{}
	}
}

// ParseAll reads an entire source, sniffs its format, and parses it.
func ParseAll(r io.Reader, filename string) ([]entities.Station, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	format := DetectFormat(filename, firstNonBlankLine(data))
	return ForFormat(format).Parse(bytes.NewReader(data))
}

func firstNonBlankLine(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return ""
}
