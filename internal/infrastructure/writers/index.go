package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/trip5/webstations/internal/domain/entities"
)

// BuildIndex scans a playlists directory for basename-paired .csv/.json
// files and builds index entries in sorted basename order. Pairs missing
// either rendition are skipped, which also keeps index.json itself out of
// the listing.
func BuildIndex(dir string) ([]entities.IndexEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading playlists directory: %w", err)
	}

	groups := make(map[string]map[string]string)
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if ext != ".csv" && ext != ".json" {
			continue
		}
		base := strings.TrimSuffix(de.Name(), filepath.Ext(de.Name()))
		if groups[base] == nil {
			groups[base] = make(map[string]string)
		}
		groups[base][ext[1:]] = de.Name()
	}

	bases := make([]string, 0, len(groups))
	for base := range groups {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	entries := make([]entities.IndexEntry, 0, len(bases))
	for _, base := range bases {
		files := groups[base]
		csvName, okCSV := files["csv"]
		jsonName, okJSON := files["json"]
		if !okCSV || !okJSON {
			continue
		}

		total, err := countNonBlankLines(filepath.Join(dir, csvName))
		if err != nil {
			// An unreadable rendition still gets listed, with a zero
			// count, matching the converter's forgiving posture.
			total = 0
		}

		entries = append(entries, entities.IndexEntry{
			Name:  strings.ReplaceAll(base, "_", " "),
			CSV:   csvName,
			JSON:  jsonName,
			Total: strconv.Itoa(total),
		})
	}
	return entries, nil
}

// WriteIndex writes index entries as one compact JSON array.
func WriteIndex(w io.Writer, entries []entities.IndexEntry) error {
	if entries == nil {
		entries = []entities.IndexEntry{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	return nil
}

func countNonBlankLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
