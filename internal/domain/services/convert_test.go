package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip5/webstations/internal/domain/entities"
	"github.com/trip5/webstations/internal/domain/mocks"
)

func TestConvertService_Preview(t *testing.T) {
	svc := NewConvertService(mocks.NewCatalog())

	input := "My Station\thttp://stream.example.com/live\t5\n"
	playlist, err := svc.Preview(strings.NewReader(input), "/masters/rock_hits.csv")
	require.NoError(t, err)

	assert.Equal(t, "rock_hits", playlist.Name)
	assert.Equal(t, "/masters/rock_hits.csv", playlist.SourceFile)
	require.Len(t, playlist.Stations, 1)
	assert.Equal(t, entities.Station{
		Name:         "My Station",
		URL:          "http://stream.example.com/live",
		VolumeOffset: 5,
	}, playlist.Stations[0])
}

func TestConvertService_ConvertFromReader(t *testing.T) {
	svc := NewConvertService(mocks.NewCatalog())
	outputDir := t.TempDir()

	input := "My Station\thttp://stream.example.com/live\t5\nstream.example.com/live\n"
	playlist, err := svc.ConvertFromReader(strings.NewReader(input), "/masters/rock.csv", outputDir)
	require.NoError(t, err)
	require.Len(t, playlist.Stations, 2)

	csvData, err := os.ReadFile(filepath.Join(outputDir, "rock.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"My Station\thttp://stream.example.com/live\t5\n"+
			"stream.example.com-live\thttp://stream.example.com/live\t0\n",
		string(csvData))

	jsonData, err := os.ReadFile(filepath.Join(outputDir, "rock.json"))
	require.NoError(t, err)
	assert.Equal(t,
		`[{"name":"My Station","url":"http://stream.example.com/live","ovol":"5"},`+
			`{"name":"stream.example.com-live","url":"http://stream.example.com/live","ovol":"0"}]`,
		strings.TrimSpace(string(jsonData)))
}

func TestConvertService_ConvertFromReader_NoStations(t *testing.T) {
	svc := NewConvertService(mocks.NewCatalog())
	outputDir := t.TempDir()

	playlist, err := svc.ConvertFromReader(strings.NewReader("nothing here\n"), "/masters/empty.csv", outputDir)
	require.NoError(t, err)
	assert.Empty(t, playlist.Stations)

	// No renditions for an empty playlist.
	_, err = os.Stat(filepath.Join(outputDir, "empty.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(outputDir, "empty.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestConvertService_RecordRun(t *testing.T) {
	catalog := mocks.NewCatalog()
	svc := NewConvertService(catalog)

	run := &entities.ConversionRun{
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
		Files:      1,
		Stations:   2,
	}
	playlists := []*entities.Playlist{
		{Name: "rock", SourceFile: "/masters/rock.csv", Stations: make([]entities.Station, 2)},
	}

	require.NoError(t, svc.RecordRun(context.Background(), run, playlists))
	assert.NotEmpty(t, run.ID)
	require.Len(t, catalog.Runs, 1)
	require.Len(t, catalog.Playlists, 1)
	assert.Equal(t, run.ID, catalog.Playlists[0].RunID)
	assert.Equal(t, 2, catalog.Playlists[0].Stations)
}

func TestConvertService_RecordRun_CatalogError(t *testing.T) {
	catalog := mocks.NewCatalog()
	catalog.Err = assert.AnError
	svc := NewConvertService(catalog)

	err := svc.RecordRun(context.Background(), &entities.ConversionRun{}, nil)
	require.Error(t, err)
}
