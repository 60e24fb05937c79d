package puzzle

import (
	"fmt"
	"strings"
)

// Direction is one of the four slide directions.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections lists every direction in the order the solver tries them
// for an opening move.
var AllDirections = [4]Direction{Up, Right, Down, Left}

// Delta returns the row and column offset of a single step.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Vertical reports whether the direction moves along the row axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Char returns the single-letter code used in solution strings.
func (d Direction) Char() byte {
	switch d {
	case Up:
		return 'U'
	case Down:
		return 'D'
	case Left:
		return 'L'
	case Right:
		return 'R'
	}
	return '?'
}

// String returns the single-letter code of the direction.
func (d Direction) String() string {
	return string(d.Char())
}

// Name returns a human-readable direction name.
func (d Direction) Name() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Unknown"
}

// NextMoves returns the legal moves after prev. A move must turn onto the
// other axis; an opening move (hasPrev false) may go any way.
func NextMoves(prev Direction, hasPrev bool) []Direction {
	if !hasPrev {
		return AllDirections[:]
	}
	if prev.Vertical() {
		return []Direction{Right, Left}
	}
	return []Direction{Up, Down}
}

// ParseDirection decodes a single direction letter (case-insensitive).
func ParseDirection(c byte) (Direction, bool) {
	switch c {
	case 'U', 'u':
		return Up, true
	case 'D', 'd':
		return Down, true
	case 'L', 'l':
		return Left, true
	case 'R', 'r':
		return Right, true
	}
	return 0, false
}

// ParseDirections decodes a solution string such as "DRD".
func ParseDirections(s string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(s))
	for i := 0; i < len(s); i++ {
		d, ok := ParseDirection(s[i])
		if !ok {
			return nil, fmt.Errorf("puzzle: invalid direction %q at position %d", s[i], i)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// FormatDirections encodes moves as a solution string.
func FormatDirections(dirs []Direction) string {
	var sb strings.Builder
	sb.Grow(len(dirs))
	for _, d := range dirs {
		sb.WriteByte(d.Char())
	}
	return sb.String()
}
