package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip5/webstations/internal/domain/entities"
)

func TestRunRows(t *testing.T) {
	runs := []entities.ConversionRun{
		{
			ID:        "0d3adbee-f00d-4a11-9c0f-000000000000",
			StartedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
			Files:     4,
			Stations:  120,
		},
	}

	rows := runRows(runs)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"0d3adbee", "2025-06-01 12:30:00", "4", "120"}, rows[0])
}

func TestStationRows(t *testing.T) {
	stations := []entities.Station{
		{Name: "My Station", URL: "http://stream.example.com/live", VolumeOffset: -5},
	}

	rows := stationRows(stations)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"My Station", "http://stream.example.com/live", "-5"}, rows[0])
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0d3adbee", shortID("0d3adbee-f00d-4a11-9c0f-000000000000"))
	assert.Equal(t, "short", shortID("short"))
	assert.Equal(t, "", shortID(""))
}
