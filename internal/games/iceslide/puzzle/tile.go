package puzzle

// Tile is the content of a single grid cell.
type Tile uint8

const (
	Ice Tile = iota
	Wall
	Rock
	Start
	End
	Player
)

// Blocks reports whether the tile stops a slide.
func (t Tile) Blocks() bool {
	return t == Wall || t == Rock
}

// Char returns the layout grid code for the tile. Ice is a blank so that
// exported grids read like the board.
func (t Tile) Char() byte {
	switch t {
	case Wall:
		return 'W'
	case Rock:
		return 'R'
	case Start:
		return 'S'
	case End:
		return 'E'
	case Player:
		return 'P'
	default:
		return ' '
	}
}

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Rock:
		return "Rock"
	case Start:
		return "Start"
	case End:
		return "End"
	case Player:
		return "Player"
	default:
		return "Ice"
	}
}

// ParseTile decodes a layout grid code.
func ParseTile(c byte) (Tile, bool) {
	switch c {
	case 'W':
		return Wall, true
	case 'R':
		return Rock, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	case 'P':
		return Player, true
	case ' ', '.':
		return Ice, true
	}
	return Ice, false
}
