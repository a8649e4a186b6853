package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/trip5/webstations/internal/domain/entities"
)

// maxDerivedNameLen caps names synthesized from URLs.
const maxDerivedNameLen = 128

var (
	// reBankStacja matches the "Bank NN Stacja NN" suffix some radio
	// exports append to station names.
	reBankStacja = regexp.MustCompile(`(?i)\s+Bank\s+\d+\s+Stacja\s+\d+.*$`)
	// reWhitespace matches runs of whitespace.
	reWhitespace = regexp.MustCompile(`\s+`)
)

// IsURLToken reports whether a token looks like a URL. This is a syntactic
// heuristic, not a validator: a dot plus a slash (or an explicit scheme
// separator) qualifies, as does anything starting with "http".
func IsURLToken(tok string) bool {
	if strings.HasPrefix(tok, "http") {
		return true
	}
	return strings.Contains(tok, ".") &&
		(strings.Contains(tok, "/") || strings.Contains(tok, "://"))
}

// IsOvolToken reports whether a token parses as an integer inside the
// recognition window. The window is wider than the storable range; see
// ParseOvol for clamping.
func IsOvolToken(tok string) bool {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return false
	}
	return v >= entities.MinOvolToken && v <= entities.MaxOvolToken
}

// ParseOvol parses a volume offset token and clamps it to the storable
// range. Unparseable input falls back to 0.
func ParseOvol(tok string) int {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0
	}
	return entities.ClampOvol(v)
}

// NormalizeURL ensures an explicit scheme, defaulting to http://.
func NormalizeURL(u string) string {
	u = strings.TrimSpace(u)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return "http://" + u
	}
	return u
}

// DeriveNameFromURL synthesizes a display name from a URL when no explicit
// name is available. The scheme is dropped, a :port segment is skipped up
// to the next slash, and path punctuation collapses to single hyphens.
func DeriveNameFromURL(u string) string {
	s := strings.TrimPrefix(u, "https://")
	if s == u {
		s = strings.TrimPrefix(u, "http://")
	}

	b := make([]byte, 0, len(s))
	for i := 0; i < len(s) && len(b) < maxDerivedNameLen-1; i++ {
		c := s[i]
		switch c {
		case ':':
			for i+1 < len(s) && s[i+1] != '/' {
				i++
			}
		case '/', '=', '&', '?':
			if len(b) > 0 && b[len(b)-1] != '-' {
				b = append(b, '-')
			}
		default:
			b = append(b, c)
		}
	}
	return strings.TrimRight(string(b), "-")
}

// CleanName tidies an explicit station name: strips "Bank NN Stacja NN"
// export suffixes, replaces slashes with spaces, and collapses whitespace.
func CleanName(name string) string {
	name = reBankStacja.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "/", " ")
	name = reWhitespace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
