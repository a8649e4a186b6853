package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip5/webstations/internal/domain/entities"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		firstLine string
		want      Format
	}{
		{"csv with text", "stations.csv", "My Station\thttp://x.fm/s", FormatDelimited},
		{"json extension with objects", "stations.json", `{"url":"http://x.fm/s"}`, FormatJSONLines},
		{"json extension with array", "stations.json", `[`, FormatJSONArray},
		{"csv extension but array body", "stations.csv", `[{"url":"http://x.fm/s"}]`, FormatJSONArray},
		{"csv extension but object body", "stations.csv", `{"url":"http://x.fm/s"}`, FormatJSONLines},
		{"uppercase extension", "STATIONS.JSON", `{"a":1}`, FormatJSONLines},
		{"empty file", "stations.csv", "", FormatDelimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.filename, tt.firstLine))
		})
	}
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &DelimitedParser{}, ForFormat(FormatDelimited))
	assert.IsType(t, &JSONArrayParser{}, ForFormat(FormatJSONArray))
	assert.IsType(t, &JSONLinesParser{}, ForFormat(FormatJSONLines))
}

func TestJSONArrayParser_Parse(t *testing.T) {
	input := `[
		{"url_resolved":"http://a.fm/s","name":"A FM"},
		{"host":"b.fm","file":"/s","port":443},
		{"name":"no url, skipped"},
		42
	]`

	parser := &JSONArrayParser{}
	stations, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, entities.Station{Name: "A FM", URL: "http://a.fm/s"}, stations[0])
	assert.Equal(t, entities.Station{Name: "b.fm-s", URL: "https://b.fm/s"}, stations[1])
}

func TestJSONArrayParser_Parse_Invalid(t *testing.T) {
	parser := &JSONArrayParser{}
	_, err := parser.Parse(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestJSONLinesParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"[",
		`{"url_resolved":"http://a.fm/s","name":"A FM"},`,
		"",
		`{"url":"http://b.fm/s","name":"B FM","ovol":"5"}`,
		"this line is not json",
		"]",
	}, "\n")

	parser := &JSONLinesParser{}
	stations, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "A FM", stations[0].Name)
	assert.Equal(t, 5, stations[1].VolumeOffset)
}

func TestParseAll_SniffsFormat(t *testing.T) {
	t.Run("delimited", func(t *testing.T) {
		stations, err := ParseAll(strings.NewReader("My Station\thttp://x.fm/s\t5\n"), "list.csv")
		require.NoError(t, err)
		require.Len(t, stations, 1)
		assert.Equal(t, entities.Station{Name: "My Station", URL: "http://x.fm/s", VolumeOffset: 5}, stations[0])
	})

	t.Run("array despite csv extension", func(t *testing.T) {
		stations, err := ParseAll(strings.NewReader(`[{"url":"http://x.fm/s","name":"X"}]`), "list.csv")
		require.NoError(t, err)
		require.Len(t, stations, 1)
		assert.Equal(t, "X", stations[0].Name)
	})

	t.Run("json lines with leading blanks", func(t *testing.T) {
		input := "\n\n" + `{"url":"http://x.fm/s","name":"X"}` + "\n"
		stations, err := ParseAll(strings.NewReader(input), "list.json")
		require.NoError(t, err)
		require.Len(t, stations, 1)
	})
}

// A station serialized with a storable offset must come back identical
// through the JSON object path.
func TestOvolRoundTrip(t *testing.T) {
	for _, ovol := range []int{-30, -1, 0, 5, 30} {
		obj := map[string]any{
			"name": "Round Trip",
			"url":  "http://x.fm/s",
			"ovol": float64(ovol),
		}
		station, ok := ParseObject(obj)
		require.True(t, ok)
		assert.Equal(t, ovol, station.VolumeOffset)
	}
}
