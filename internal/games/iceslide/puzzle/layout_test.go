package puzzle

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestLayoutGrid(t *testing.T) {
	b := New(5, 5, P(0, 1), P(4, 3), []Point{P(2, 2)})
	b.UpdatePlayerPosition(3, 1)

	l := b.Layout()
	want := []string{
		"WSWWW",
		"W   W",
		"W R W",
		"W   W",
		"WWWEW",
	}
	if !reflect.DeepEqual(l.Grid, want) {
		t.Errorf("Grid = %q, expected %q", l.Grid, want)
	}
	if l.Start != P(0, 1) || l.End != P(4, 3) {
		t.Errorf("endpoints = %v, %v", l.Start, l.End)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("exported layout does not validate: %v", err)
	}
}

func TestLayoutFromGrid(t *testing.T) {
	b := detourBoard()
	l := b.Layout()

	parsed, err := LayoutFromGrid(l.Grid)
	if err != nil {
		t.Fatalf("LayoutFromGrid: %v", err)
	}
	if parsed.Rows != l.Rows || parsed.Cols != l.Cols || parsed.Start != l.Start || parsed.End != l.End {
		t.Errorf("parsed %+v, expected %+v", parsed, l)
	}
	if !samePoints(parsed.Rocks, l.Rocks) {
		t.Errorf("rocks = %v, expected %v", parsed.Rocks, l.Rocks)
	}

	rebuilt, err := parsed.Board()
	if err != nil {
		t.Fatalf("Board(): %v", err)
	}
	if rebuilt.String() != b.String() {
		t.Errorf("rebuilt board differs:\n%s\nexpected\n%s", rebuilt, b)
	}
}

func TestLayoutJSONRoundTrip(t *testing.T) {
	b := detourBoard()

	data, err := b.LayoutJSON()
	if err != nil {
		t.Fatalf("LayoutJSON: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	start, ok := raw["start"].([]any)
	if !ok || len(start) != 2 || start[0] != float64(2) || start[1] != float64(0) {
		t.Errorf("start encoded as %v, expected [col, row] = [2, 0]", raw["start"])
	}

	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatalf("unmarshal layout: %v", err)
	}
	rebuilt, err := l.Board()
	if err != nil {
		t.Fatalf("Board(): %v", err)
	}
	if rebuilt.String() != b.String() {
		t.Errorf("rebuilt board differs:\n%s\nexpected\n%s", rebuilt, b)
	}
}

func TestLayoutValidate(t *testing.T) {
	valid := func() Layout { return detourBoard().Layout() }

	tests := []struct {
		name   string
		modify func(*Layout)
		want   error
	}{
		{"valid", func(*Layout) {}, nil},
		{"too small", func(l *Layout) { l.Rows, l.Grid = 2, nil }, ErrLayoutSize},
		{"corner start", func(l *Layout) { l.Start, l.Grid = P(0, 0), nil }, ErrLayoutEndpoint},
		{"interior end", func(l *Layout) { l.End, l.Grid = P(3, 3), nil }, ErrLayoutEndpoint},
		{"same endpoints", func(l *Layout) { l.End, l.Grid = l.Start, nil }, ErrLayoutEndpoint},
		{"rock on border", func(l *Layout) { l.Rocks, l.Grid = []Point{P(0, 3)}, nil }, ErrLayoutRock},
		{"grid disagrees", func(l *Layout) { l.Rocks = l.Rocks[1:] }, ErrLayoutGrid},
		{"ragged grid", func(l *Layout) { l.Grid[2] = "W" }, ErrLayoutGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.modify(&l)
			err := l.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestLayoutValidateSolution(t *testing.T) {
	l := detourBoard().Layout()

	l.Solution = "DLDRD"
	if err := l.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	l.Solution = "DLQ"
	if err := l.Validate(); err == nil {
		t.Error("expected error for bad solution string")
	}
}
