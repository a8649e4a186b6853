package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Playlist", "Stations"},
		[][]string{{"rock_hits", "12"}, {"jazz", "3"}},
		[]columnAlignment{alignLeft, alignRight},
	)

	assert.Contains(t, out, "Playlist")
	assert.Contains(t, out, "rock_hits")
	assert.Contains(t, out, "jazz")
	assert.Contains(t, out, "12")
}

func TestRenderTable_ShortRowPadded(t *testing.T) {
	out := renderTable(
		[]string{"A", "B", "C"},
		[][]string{{"only"}},
		nil,
	)
	assert.Contains(t, out, "only")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", renderTable(nil, [][]string{{"x"}}, nil))
}
