package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip5/webstations/internal/domain/services"
)

func TestIndexHandler_Handle(t *testing.T) {
	handler := NewIndexHandler(services.NewIndexService())
	dir := t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	write("rock.csv", "A\thttp://a.fm/s\t0\nB\thttp://b.fm/s\t0\n")
	write("rock.json", `[{"name":"A","url":"http://a.fm/s","ovol":"0"}]`)

	result, err := handler.Handle(dir, "index.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "index.json"), result.Path)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "rock", result.Entries[0].Name)
	assert.Equal(t, "2", result.Entries[0].Total)

	_, err = os.Stat(result.Path)
	assert.NoError(t, err)
}

func TestIndexHandler_Handle_NotFound(t *testing.T) {
	handler := NewIndexHandler(services.NewIndexService())

	_, err := handler.Handle(filepath.Join(t.TempDir(), "missing"), "index.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "playlists directory not found")
}
