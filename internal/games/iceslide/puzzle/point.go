package puzzle

import (
	"encoding/json"
	"fmt"
)

// Point is a board coordinate. Row increases downward, Col to the right,
// with (0, 0) in the top-left corner.
type Point struct {
	Row int
	Col int
}

// P is a convenience constructor for Point.
func P(row, col int) Point {
	return Point{Row: row, Col: col}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the neighbouring point one cell in the given direction.
func (p Point) Step(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// MarshalJSON encodes the point as [col, row], the layout file convention.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Col, p.Row})
}

// UnmarshalJSON decodes a [col, row] pair.
func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("point: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("point: expected [col, row], got %d values", len(pair))
	}
	p.Col, p.Row = pair[0], pair[1]
	return nil
}
