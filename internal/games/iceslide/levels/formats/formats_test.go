package formats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"id": "j1",
		"name": "JSON level",
		"rows": 5,
		"cols": 5,
		"start": [1, 0],
		"end": [3, 4],
		"rocks": [[2, 2]],
		"solution": "DRD"
	}`)

	lvl, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "j1", lvl.ID)
	assert.Equal(t, puzzle.P(0, 1), lvl.Layout.Start)
	assert.Equal(t, puzzle.P(4, 3), lvl.Layout.End)
	assert.Equal(t, []puzzle.Point{puzzle.P(2, 2)}, lvl.Layout.Rocks)
	assert.Equal(t, "DRD", lvl.Layout.Solution)
}

func TestParseJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"corner start", `{"rows": 5, "cols": 5, "start": [0, 0], "end": [3, 4]}`, puzzle.ErrLayoutEndpoint},
		{"rock on wall", `{"rows": 5, "cols": 5, "start": [1, 0], "end": [3, 4], "rocks": [[0, 2]]}`, puzzle.ErrLayoutRock},
		{"tiny", `{"rows": 2, "cols": 5, "start": [1, 0], "end": [3, 1]}`, puzzle.ErrLayoutSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.data))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := ParseJSON([]byte(`{"rows": 5, "colz": 5}`))
	assert.Error(t, err, "unknown fields should be rejected")

	_, err = ParseJSON([]byte(`{"rows": 5, "cols": 5, "start": [1], "end": [3, 4]}`))
	assert.Error(t, err, "short point should be rejected")
}

func TestParseYAMLFields(t *testing.T) {
	data := []byte(`
id: y1
rows: 5
cols: 5
start: [1, 0]
end: [3, 4]
rocks:
  - [2, 2]
`)
	lvl, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, puzzle.P(0, 1), lvl.Layout.Start)
	assert.Equal(t, []puzzle.Point{puzzle.P(2, 2)}, lvl.Layout.Rocks)
	assert.Empty(t, lvl.Layout.Grid)
}

func TestParseYAMLGridOnly(t *testing.T) {
	data := []byte(`
grid:
  - "WSWWW"
  - "W   W"
  - "W R W"
  - "W   W"
  - "WWWEW"
solution: DRD
`)
	lvl, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 5, lvl.Layout.Rows)
	assert.Equal(t, puzzle.P(0, 1), lvl.Layout.Start)
	assert.Equal(t, puzzle.P(4, 3), lvl.Layout.End)
	assert.Equal(t, []puzzle.Point{puzzle.P(2, 2)}, lvl.Layout.Rocks)
	assert.Equal(t, "DRD", lvl.Layout.Solution)
}

func TestParseYAMLRejects(t *testing.T) {
	_, err := ParseYAML([]byte("rows: 5\ncols: 5\nstart: [1, 0, 2]\nend: [3, 4]\n"))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("rows: 5\nunknown: true\n"))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("grid:\n  - \"WSW\"\n  - \"W W\"\n"))
	assert.True(t, errors.Is(err, puzzle.ErrLayoutGrid), "got %v", err)
}

func TestEncodeYAMLIsReadable(t *testing.T) {
	b := puzzle.New(5, 5, puzzle.P(0, 1), puzzle.P(4, 3), []puzzle.Point{puzzle.P(2, 2)})
	data, err := EncodeYAML(Level{ID: "enc", Layout: b.Layout()})
	require.NoError(t, err)

	assert.Contains(t, string(data), "start: [1, 0]")
	assert.Contains(t, string(data), "rocks: [[2, 2]]")

	back, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, b.Layout().Grid, back.Layout.Grid)
}
