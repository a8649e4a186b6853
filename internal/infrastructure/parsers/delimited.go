package parsers

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/trip5/webstations/internal/domain/entities"
)

// reMultiSpace matches columnar runs of two or more spaces.
var reMultiSpace = regexp.MustCompile(`  +`)

// tokenizer selects how a delimited line is split into tokens.
type tokenizer int

const (
	tokenizeTabs tokenizer = iota
	tokenizeMultiSpace
	tokenizeFields
)

// classifyLine picks the tokenizer for a line: tabs win, then columnar
// multi-space runs, then plain whitespace fields.
func classifyLine(line string) tokenizer {
	if strings.Contains(line, "\t") {
		return tokenizeTabs
	}
	if reMultiSpace.MatchString(line) {
		return tokenizeMultiSpace
	}
	return tokenizeFields
}

// split tokenizes the line, trimming tokens and dropping empty ones.
func (t tokenizer) split(line string) []string {
	var raw []string
	switch t {
	case tokenizeTabs:
		raw = strings.Split(line, "\t")
	case tokenizeMultiSpace:
		raw = reMultiSpace.Split(line, -1)
	default:
		raw = strings.Fields(line)
	}

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// ParseLine parses one delimited-text line into a Station. The second
// return value is false for blank lines, comments, and lines where no URL
// could be identified.
func ParseLine(line string) (entities.Station, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return entities.Station{}, false
	}

	mode := classifyLine(line)
	tokens := mode.split(line)
	if mode == tokenizeFields {
		return parseFields(tokens)
	}
	return parseColumns(tokens)
}

// parseColumns handles tab and multi-space lines, where the token count
// decides the interpretation.
func parseColumns(tokens []string) (entities.Station, bool) {
	switch len(tokens) {
	case 0:
		return entities.Station{}, false

	case 1:
		if !IsURLToken(tokens[0]) {
			return entities.Station{}, false
		}
		url := NormalizeURL(tokens[0])
		return entities.Station{Name: DeriveNameFromURL(url), URL: url}, true

	case 2:
		// Exactly one token may be the URL; anything else is ambiguous
		// and the line is rejected rather than guessed at.
		first, second := IsURLToken(tokens[0]), IsURLToken(tokens[1])
		if first == second {
			return entities.Station{}, false
		}
		urlIdx := 0
		if second {
			urlIdx = 1
		}
		url := NormalizeURL(tokens[urlIdx])
		name := CleanName(tokens[1-urlIdx])
		if name == "" {
			name = DeriveNameFromURL(url)
		}
		return entities.Station{Name: name, URL: url}, true
	}

	urlIdx := -1
	for i, tok := range tokens {
		if IsURLToken(tok) {
			urlIdx = i
			break
		}
	}
	if urlIdx == -1 {
		return entities.Station{}, false
	}

	ovol := 0
	ovolIdx := -1
	for i, tok := range tokens {
		if i == urlIdx {
			continue
		}
		if IsOvolToken(tok) {
			ovolIdx = i
			ovol = ParseOvol(tok)
			break
		}
	}

	url := NormalizeURL(tokens[urlIdx])
	name := ""
	for i, tok := range tokens {
		if i == urlIdx || i == ovolIdx {
			continue
		}
		// Only the first leftover token names the station; later
		// tokens are dropped.
		name = CleanName(tok)
		break
	}
	if name == "" {
		name = DeriveNameFromURL(url)
	}
	return entities.Station{Name: name, URL: url, VolumeOffset: ovol}, true
}

// parseFields handles single-whitespace lines. Naming depends on where the
// URL sits: a leading URL takes everything after it as the name, otherwise
// the first token names the station and only the final token is considered
// as a volume offset.
func parseFields(tokens []string) (entities.Station, bool) {
	urlIdx := -1
	for i, tok := range tokens {
		if IsURLToken(tok) {
			urlIdx = i
			break
		}
	}
	if urlIdx == -1 {
		return entities.Station{}, false
	}
	url := NormalizeURL(tokens[urlIdx])

	if urlIdx == 0 {
		name := CleanName(strings.Join(tokens[1:], " "))
		if name == "" {
			name = DeriveNameFromURL(url)
		}
		return entities.Station{Name: name, URL: url}, true
	}

	ovol := 0
	if last := len(tokens) - 1; last != urlIdx && IsOvolToken(tokens[last]) {
		ovol = ParseOvol(tokens[last])
	}
	name := CleanName(tokens[0])
	if name == "" {
		name = DeriveNameFromURL(url)
	}
	return entities.Station{Name: name, URL: url, VolumeOffset: ovol}, true
}

// DelimitedParser parses tab- and space-delimited playlist text.
type DelimitedParser struct{}

// Parse reads delimited text and returns the stations it describes.
// Unparseable lines are skipped, never reported.
func (p *DelimitedParser) Parse(r io.Reader) ([]entities.Station, error) {
	var stations []entities.Station

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if station, ok := ParseLine(scanner.Text()); ok {
			stations = append(stations, station)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return stations, nil
}
