package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Layout is the serializable static structure of a board. Grid repeats the
// other fields as one string per row so a layout file can be read at a
// glance; the start cell is always shown as 'S', never 'P'.
type Layout struct {
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Start    Point    `json:"start"`
	End      Point    `json:"end"`
	Rocks    []Point  `json:"rocks"`
	Grid     []string `json:"grid,omitempty"`
	Solution string   `json:"solution,omitempty"`
}

// Layout exports the board's static structure. The grid is rebuilt from
// the static fields in the same order New writes them, so the player's
// current position never shows up in it.
func (b *Board) Layout() Layout {
	cells := make([][]byte, b.rows)
	for r := range cells {
		cells[r] = make([]byte, b.cols)
		for c := range cells[r] {
			if r == 0 || r == b.rows-1 || c == 0 || c == b.cols-1 {
				cells[r][c] = Wall.Char()
			} else {
				cells[r][c] = Ice.Char()
			}
		}
	}
	cells[b.start.Row][b.start.Col] = Start.Char()
	cells[b.end.Row][b.end.Col] = End.Char()
	for _, rock := range b.rocks {
		cells[rock.Row][rock.Col] = Rock.Char()
	}

	grid := make([]string, b.rows)
	for r := range cells {
		grid[r] = string(cells[r])
	}

	rocks := b.Rocks()
	if rocks == nil {
		rocks = []Point{}
	}

	return Layout{
		Rows:  b.rows,
		Cols:  b.cols,
		Start: b.start,
		End:   b.end,
		Rocks: rocks,
		Grid:  grid,
	}
}

// LayoutJSON returns the indented JSON encoding of the board layout.
func (b *Board) LayoutJSON() ([]byte, error) {
	data, err := json.MarshalIndent(b.Layout(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("puzzle: encode layout: %w", err)
	}
	return data, nil
}

// Layout validation errors.
var (
	ErrLayoutSize     = errors.New("puzzle: layout too small")
	ErrLayoutEndpoint = errors.New("puzzle: start and end must be distinct border cells")
	ErrLayoutRock     = errors.New("puzzle: rock outside the interior")
	ErrLayoutGrid     = errors.New("puzzle: grid does not match layout")
)

// onBorder reports whether p is a non-corner border cell.
func (l Layout) onBorder(p Point) bool {
	if p.Row < 0 || p.Row >= l.Rows || p.Col < 0 || p.Col >= l.Cols {
		return false
	}
	rowEdge := p.Row == 0 || p.Row == l.Rows-1
	colEdge := p.Col == 0 || p.Col == l.Cols-1
	return rowEdge != colEdge
}

// Validate checks that the layout describes a playable board: at least
// MinSize in both dimensions, start and end on distinct non-corner border
// cells, rocks strictly inside the border, and the grid (if present)
// agreeing with the other fields.
func (l Layout) Validate() error {
	if l.Rows < MinSize || l.Cols < MinSize {
		return fmt.Errorf("%w: %dx%d", ErrLayoutSize, l.Rows, l.Cols)
	}
	if !l.onBorder(l.Start) || !l.onBorder(l.End) || l.Start == l.End {
		return fmt.Errorf("%w: start %v, end %v", ErrLayoutEndpoint, l.Start, l.End)
	}
	for _, r := range l.Rocks {
		if r.Row < 1 || r.Row > l.Rows-2 || r.Col < 1 || r.Col > l.Cols-2 {
			return fmt.Errorf("%w: %v", ErrLayoutRock, r)
		}
	}
	if l.Solution != "" {
		if _, err := ParseDirections(l.Solution); err != nil {
			return err
		}
	}
	if len(l.Grid) == 0 {
		return nil
	}

	parsed, err := LayoutFromGrid(l.Grid)
	if err != nil {
		return err
	}
	if parsed.Rows != l.Rows || parsed.Cols != l.Cols || parsed.Start != l.Start || parsed.End != l.End {
		return fmt.Errorf("%w: dimensions or endpoints differ", ErrLayoutGrid)
	}
	if !samePoints(parsed.Rocks, l.Rocks) {
		return fmt.Errorf("%w: rocks differ", ErrLayoutGrid)
	}
	return nil
}

// Board validates the layout and builds a fresh board from it.
func (l Layout) Board() (*Board, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return New(l.Rows, l.Cols, l.Start, l.End, l.Rocks), nil
}

// LayoutFromGrid rebuilds a layout from its character grid alone. 'S' or
// 'P' marks the start, 'E' the end, 'R' rocks; walls and ice are implied.
func LayoutFromGrid(grid []string) (Layout, error) {
	if len(grid) == 0 {
		return Layout{}, fmt.Errorf("%w: empty grid", ErrLayoutSize)
	}

	l := Layout{
		Rows:  len(grid),
		Cols:  len(grid[0]),
		Rocks: []Point{},
		Grid:  append([]string(nil), grid...),
	}
	var haveStart, haveEnd bool

	for r, line := range grid {
		if len(line) != l.Cols {
			return Layout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrLayoutGrid, r, len(line), l.Cols)
		}
		for c := 0; c < len(line); c++ {
			t, ok := ParseTile(line[c])
			if !ok {
				return Layout{}, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrLayoutGrid, line[c], r, c)
			}
			p := Point{Row: r, Col: c}
			switch t {
			case Start, Player:
				if haveStart {
					return Layout{}, fmt.Errorf("%w: more than one start", ErrLayoutGrid)
				}
				l.Start, haveStart = p, true
			case End:
				if haveEnd {
					return Layout{}, fmt.Errorf("%w: more than one end", ErrLayoutGrid)
				}
				l.End, haveEnd = p, true
			case Rock:
				l.Rocks = append(l.Rocks, p)
			}
		}
	}

	if !haveStart || !haveEnd {
		return Layout{}, fmt.Errorf("%w: missing start or end", ErrLayoutGrid)
	}
	return l, nil
}

func samePoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[Point]int, len(a))
	for _, p := range a {
		set[p]++
	}
	for _, p := range b {
		if set[p] == 0 {
			return false
		}
		set[p]--
	}
	return true
}
