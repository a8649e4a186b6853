package parsers

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURLToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"scheme and path", "http://stream.example.com/live", true},
		{"https scheme", "https://x.fm/s", true},
		{"bare http prefix", "http", true},
		{"dot and slash without scheme", "stream.example.com/live", true},
		{"dot without slash", "stream.example.com", false},
		{"slash without dot", "some/path", false},
		{"plain word", "Radio", false},
		{"number", "42", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsURLToken(tt.token))
		})
	}
}

func TestIsOvolToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"0", true},
		{"5", true},
		{"-5", true},
		{"64", true},
		{"-64", true},
		{"65", false},
		{"-65", false},
		{"99", false},
		{"3.5", false},
		{"five", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOvolToken(tt.token))
		})
	}
}

func TestIsOvolToken_Window(t *testing.T) {
	for n := -64; n <= 64; n++ {
		assert.True(t, IsOvolToken(strconv.Itoa(n)), "n=%d", n)
	}
}

func TestParseOvol(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"5", 5},
		{"-12", -12},
		{"30", 30},
		{"-30", -30},
		{"64", 30},
		{"-64", -30},
		{"not-a-number", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOvol(tt.token))
		})
	}
}

func TestParseOvol_Idempotent(t *testing.T) {
	for _, token := range []string{"0", "17", "-17", "30", "-30", "64", "-64"} {
		once := ParseOvol(token)
		assert.Equal(t, once, ParseOvol(strconv.Itoa(once)), "token=%s", token)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host", "stream.example.com/live", "http://stream.example.com/live"},
		{"http kept", "http://x.fm/s", "http://x.fm/s"},
		{"https kept", "https://x.fm/s", "https://x.fm/s"},
		{"surrounding space trimmed", "  x.fm/s  ", "http://x.fm/s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeURL(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeURL(got), "must be idempotent")
		})
	}
}

func TestDeriveNameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"slash to hyphen", "http://stream.example.com/live", "stream.example.com-live"},
		{"https scheme stripped", "https://b.fm/s", "b.fm-s"},
		{"port skipped", "http://radio.example.com:8000/stream", "radio.example.com-stream"},
		{"query punctuation collapsed", "http://x.fm/play?id=1&q=2", "x.fm-play-id-1-q-2"},
		{"consecutive separators collapse", "http://x.fm//a==b", "x.fm-a-b"},
		{"trailing slash trimmed", "http://x.fm/", "x.fm"},
		{"port only", "http://x.fm:8000", "x.fm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveNameFromURL(tt.url))
		})
	}
}

func TestDeriveNameFromURL_Truncation(t *testing.T) {
	url := "http://example.com/" + strings.Repeat("a", 300)
	got := DeriveNameFromURL(url)
	assert.Len(t, got, maxDerivedNameLen-1)
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"whitespace collapsed", "  My   Station ", "My Station"},
		{"slash replaced", "Rock/Pop", "Rock Pop"},
		{"bank stacja suffix removed", "Radio Random Bank 16 Stacja 62", "Radio Random"},
		{"bank stacja case-insensitive", "Radio bank 2 stacja 7 extra", "Radio"},
		{"plain name untouched", "A FM", "A FM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.in))
		})
	}
}
