package parsers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trip5/webstations/internal/domain/entities"
)

// ParseObject normalizes one decoded JSON object into a Station. Key
// lookup is case-sensitive with aliases tried in priority order; an object
// without a resolvable URL produces no record.
func ParseObject(obj map[string]any) (entities.Station, bool) {
	url := resolveURL(obj)
	if strings.TrimSpace(url) == "" {
		return entities.Station{}, false
	}
	url = NormalizeURL(url)

	name := CleanName(firstValue(obj, "name", "Name", "title"))
	if name == "" {
		name = DeriveNameFromURL(url)
	}

	ovol := 0
	if raw := firstValue(obj, "ovol", "Ovol"); raw != "" {
		ovol = ParseOvol(strings.Trim(strings.TrimSpace(raw), `"`))
	}

	return entities.Station{Name: name, URL: url, VolumeOffset: ovol}, true
}

// resolveURL tries the URL strategies in priority order: a full URL under
// url_resolved or url, then the Ka-Radio host/file/port triple.
func resolveURL(obj map[string]any) string {
	if u := stringValue(obj["url_resolved"]); strings.TrimSpace(u) != "" {
		return u
	}
	if u := stringValue(obj["url"]); strings.TrimSpace(u) != "" {
		return u
	}
	return synthesizeURL(obj)
}

// synthesizeURL builds a URL from the Ka-Radio style host/file/port
// triple. The scheme follows the port (https for 443) unless the host
// already carries one, and the port is written out only when it is not the
// scheme default.
func synthesizeURL(obj map[string]any) string {
	host := strings.TrimSpace(firstValue(obj, "host", "URL"))
	file := strings.TrimSpace(firstValue(obj, "file", "File"))
	if host == "" || file == "" {
		return ""
	}

	port := 80
	if raw := strings.TrimSpace(firstValue(obj, "port", "Port")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			port = v
		}
	}

	scheme, defaultPort := "http://", 80
	switch {
	case strings.HasPrefix(host, "https://"):
		host = strings.TrimPrefix(host, "https://")
		scheme, defaultPort = "https://", 443
	case strings.HasPrefix(host, "http://"):
		host = strings.TrimPrefix(host, "http://")
	case port == 443:
		scheme, defaultPort = "https://", 443
	}

	if !strings.HasPrefix(file, "/") {
		file = "/" + file
	}
	if port != defaultPort {
		return fmt.Sprintf("%s%s:%d%s", scheme, host, port, file)
	}
	return scheme + host + file
}

// firstValue returns the first non-empty value among the given keys.
func firstValue(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			if s := stringValue(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringValue renders a decoded JSON scalar as a string. Numbers keep
// their shortest form, so ports and offsets written as JSON numbers work
// the same as quoted ones.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
