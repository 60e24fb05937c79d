// Package puzzle implements the ice sliding puzzle: the board and its
// sliding physics, the move queue consumed one tile per tick, the solver,
// and the generator that retries random boards until one is hard enough.
//
// The package is pure game logic with no UI or storage dependencies,
// so it can be driven by the TUI, the SSH server, the HTTP API and tests alike.
package puzzle

import (
	"fmt"
	"strings"
)

// MinSize is the smallest allowed board dimension, border included.
const MinSize = 3

// Board is a single puzzle instance. Coordinates start at (0, 0) in the
// top-left corner and include the wall border.
//
// A Board is not safe for concurrent mutation; every goroutine that
// generates or plays boards must own its instance.
type Board struct {
	rows  int
	cols  int
	start Point
	end   Point
	rocks []Point
	grid  [][]Tile

	player Point
	queue  []Move
	won    bool
}

// New builds a board. The border ring becomes Wall, the interior Ice, then
// start holds the player, end the goal, and each rock a Rock, in that order
// (a later write wins if positions coincide).
//
// New panics if either dimension is below MinSize or a point lies outside
// the grid: callers compute dimensions themselves, so this is a programming
// error rather than bad input. Use Layout.Board to validate untrusted data.
func New(rows, cols int, start, end Point, rocks []Point) *Board {
	if rows < MinSize || cols < MinSize {
		panic(fmt.Sprintf("puzzle: board must be at least %dx%d, got %dx%d", MinSize, MinSize, rows, cols))
	}

	b := &Board{
		rows:   rows,
		cols:   cols,
		start:  start,
		end:    end,
		rocks:  append([]Point(nil), rocks...),
		player: start,
	}

	for _, p := range append([]Point{start, end}, rocks...) {
		if !b.InBounds(p) {
			panic(fmt.Sprintf("puzzle: point %v outside %dx%d board", p, rows, cols))
		}
	}

	b.grid = make([][]Tile, rows)
	for r := range b.grid {
		b.grid[r] = make([]Tile, cols)
		for c := range b.grid[r] {
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				b.grid[r][c] = Wall
			} else {
				b.grid[r][c] = Ice
			}
		}
	}

	b.grid[start.Row][start.Col] = Player
	b.grid[end.Row][end.Col] = End
	for _, rock := range b.rocks {
		b.grid[rock.Row][rock.Col] = Rock
	}

	return b
}

// Rows returns the number of rows including the border.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns including the border.
func (b *Board) Cols() int { return b.cols }

// Start returns the start position.
func (b *Board) Start() Point { return b.start }

// End returns the goal position.
func (b *Board) End() Point { return b.end }

// Player returns the current player position.
func (b *Board) Player() Point { return b.player }

// Won reports whether the player has reached the goal.
func (b *Board) Won() bool { return b.won }

// Rocks returns a copy of the rock positions.
func (b *Board) Rocks() []Point {
	return append([]Point(nil), b.rocks...)
}

// InBounds reports whether p lies on the grid.
func (b *Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Tile returns the current tile at p, or Wall outside the grid.
func (b *Board) Tile(p Point) Tile {
	if !b.InBounds(p) {
		return Wall
	}
	return b.grid[p.Row][p.Col]
}

// slideFrom walks from p in direction d until the next cell is a wall, a
// rock or off the grid. It returns the stopping point and the number of
// cells entered. Only static obstacles block, so the result does not depend
// on where the player currently is.
func (b *Board) slideFrom(p Point, d Direction) (Point, int) {
	steps := 0
	for {
		next := p.Step(d)
		if !b.InBounds(next) || b.grid[next.Row][next.Col].Blocks() {
			return p, steps
		}
		p = next
		steps++
	}
}

// StepsInDirection returns how many cells the player would slide in d.
// It is zero exactly when the adjacent cell blocks.
func (b *Board) StepsInDirection(d Direction) int {
	_, steps := b.slideFrom(b.player, d)
	return steps
}

// UpdatePlayerPosition moves the player marker to (row, col), restoring the
// vacated cell to Start, End or Ice. Moving onto the goal sets the won flag.
// Calling it with the current position does nothing.
func (b *Board) UpdatePlayerPosition(row, col int) {
	next := Point{Row: row, Col: col}
	if next == b.player {
		return
	}

	prev := b.player
	b.player = next
	b.grid[next.Row][next.Col] = Player

	// Restore whatever the player was standing on
	switch prev {
	case b.start:
		b.grid[prev.Row][prev.Col] = Start
	case b.end:
		b.grid[prev.Row][prev.Col] = End
	default:
		b.grid[prev.Row][prev.Col] = Ice
	}

	if next == b.end {
		b.won = true
	}
}

// MovePlayer moves the player a single cell in d.
func (b *Board) MovePlayer(d Direction) {
	next := b.player.Step(d)
	b.UpdatePlayerPosition(next.Row, next.Col)
}

// Restart puts the player back on the start tile, clears the move queue and
// the won flag. Used when replaying a fixed level.
func (b *Board) Restart() {
	b.queue = b.queue[:0]
	b.UpdatePlayerPosition(b.start.Row, b.start.Col)
	b.won = false
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.rocks = append([]Point(nil), b.rocks...)
	c.queue = append([]Move(nil), b.queue...)
	c.grid = make([][]Tile, b.rows)
	for r := range b.grid {
		c.grid[r] = append([]Tile(nil), b.grid[r]...)
	}
	return &c
}

// Snapshot is a read-only view of the board for rendering.
type Snapshot struct {
	Rows   int
	Cols   int
	Start  Point
	End    Point
	Player Point
	Won    bool
	Grid   [][]Tile
}

// Snapshot returns a copy of the current render-time state.
func (b *Board) Snapshot() Snapshot {
	grid := make([][]Tile, b.rows)
	for r := range b.grid {
		grid[r] = append([]Tile(nil), b.grid[r]...)
	}
	return Snapshot{
		Rows:   b.rows,
		Cols:   b.cols,
		Start:  b.start,
		End:    b.end,
		Player: b.player,
		Won:    b.won,
		Grid:   grid,
	}
}

// String renders the grid using layout codes, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for r := range b.grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range b.grid[r] {
			sb.WriteByte(t.Char())
		}
	}
	return sb.String()
}
