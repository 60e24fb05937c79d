// Package formats parses and encodes ice slide level files.
//
// Both formats carry the same fields: rows, cols, start, end, rocks (points
// as [col, row] pairs), an optional character grid and an optional solution
// string. A file may give only the grid; the other fields are then derived
// from it.
package formats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
)

// Level is the format-independent content of a level file.
type Level struct {
	ID       string
	Name     string
	Layout   puzzle.Layout
	Metadata map[string]string
}

// FormatExtensions lists the file extensions the parsers understand.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

type jsonLevel struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	puzzle.Layout
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ParseJSON decodes and validates a JSON level.
func ParseJSON(data []byte) (Level, error) {
	var raw jsonLevel
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return Level{}, fmt.Errorf("decode json: %w", err)
	}
	return finish(raw.ID, raw.Name, raw.Layout, raw.Metadata)
}

// EncodeJSON encodes a level as indented JSON.
func EncodeJSON(l Level) ([]byte, error) {
	data, err := json.MarshalIndent(jsonLevel{
		ID:       l.ID,
		Name:     l.Name,
		Layout:   l.Layout,
		Metadata: l.Metadata,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// yamlLevel mirrors the file layout. Points are flow sequences so a file
// reads "start: [2, 0]".
type yamlLevel struct {
	ID       string            `yaml:"id,omitempty"`
	Name     string            `yaml:"name,omitempty"`
	Rows     int               `yaml:"rows,omitempty"`
	Cols     int               `yaml:"cols,omitempty"`
	Start    []int             `yaml:"start,flow,omitempty"`
	End      []int             `yaml:"end,flow,omitempty"`
	Rocks    [][]int           `yaml:"rocks,flow,omitempty"`
	Grid     []string          `yaml:"grid,omitempty"`
	Solution string            `yaml:"solution,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML decodes and validates a YAML level.
func ParseYAML(data []byte) (Level, error) {
	var raw yamlLevel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Level{}, fmt.Errorf("decode yaml: %w", err)
	}

	layout := puzzle.Layout{
		Rows:     raw.Rows,
		Cols:     raw.Cols,
		Grid:     raw.Grid,
		Solution: raw.Solution,
	}
	var err error
	if raw.Start != nil {
		if layout.Start, err = pointFromPair(raw.Start); err != nil {
			return Level{}, fmt.Errorf("start: %w", err)
		}
	}
	if raw.End != nil {
		if layout.End, err = pointFromPair(raw.End); err != nil {
			return Level{}, fmt.Errorf("end: %w", err)
		}
	}
	for i, pair := range raw.Rocks {
		p, err := pointFromPair(pair)
		if err != nil {
			return Level{}, fmt.Errorf("rock %d: %w", i, err)
		}
		layout.Rocks = append(layout.Rocks, p)
	}

	return finish(raw.ID, raw.Name, layout, raw.Metadata)
}

// EncodeYAML encodes a level as YAML.
func EncodeYAML(l Level) ([]byte, error) {
	raw := yamlLevel{
		ID:       l.ID,
		Name:     l.Name,
		Rows:     l.Layout.Rows,
		Cols:     l.Layout.Cols,
		Start:    pairFromPoint(l.Layout.Start),
		End:      pairFromPoint(l.Layout.End),
		Grid:     l.Layout.Grid,
		Solution: l.Layout.Solution,
		Metadata: l.Metadata,
	}
	for _, r := range l.Layout.Rocks {
		raw.Rocks = append(raw.Rocks, pairFromPoint(r))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// finish fills a grid-only layout from its grid and validates the result.
func finish(id, name string, layout puzzle.Layout, meta map[string]string) (Level, error) {
	if layout.Rows == 0 && layout.Cols == 0 && len(layout.Grid) > 0 {
		fromGrid, err := puzzle.LayoutFromGrid(layout.Grid)
		if err != nil {
			return Level{}, err
		}
		fromGrid.Solution = layout.Solution
		layout = fromGrid
	}
	if layout.Rocks == nil {
		layout.Rocks = []puzzle.Point{}
	}
	if err := layout.Validate(); err != nil {
		return Level{}, err
	}
	return Level{ID: id, Name: name, Layout: layout, Metadata: meta}, nil
}

func pointFromPair(pair []int) (puzzle.Point, error) {
	if len(pair) != 2 {
		return puzzle.Point{}, fmt.Errorf("expected [col, row], got %d values", len(pair))
	}
	return puzzle.P(pair[1], pair[0]), nil
}

func pairFromPoint(p puzzle.Point) []int {
	return []int{p.Col, p.Row}
}
