package iceslide

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/iceslide/internal/core"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
)

// cellW is the number of screen columns per board cell.
const cellW = 2

const helpLine = " ←↑↓→/wasd slide  space reset  v view  g solution  n next  Q exit"

// viewport is the window of board coordinates drawn on screen. It may
// extend past the board edges.
type viewport struct {
	origin     puzzle.Point
	rows, cols int
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.board == nil {
		msg := "Press Q to leave"
		if g.genErr != nil {
			msg = g.genErr.Error()
		}
		g.renderOverlay(dst, "No puzzle", msg)
		return
	}

	vp, ok := g.viewport(dst)
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	g.renderBoard(dst, vp)
	g.renderFooter(dst)

	if g.board.Won() && !g.board.Busy() {
		sub := fmt.Sprintf("%d slides", g.slides)
		if g.level != nil {
			sub = "Press R to replay"
		}
		g.renderOverlay(dst, "Solved!", sub)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Solved: %d | Slides: %d", g.Title(), g.solved, g.slides)
	if g.solution.Found() {
		hud += fmt.Sprintf(" | Par: %d", g.solution.Len())
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderFooter draws the solution, when revealed, or the key help.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.showSolution {
		text := " Solution: none"
		if g.solution.Found() {
			text = fmt.Sprintf(" Solution: %s (%d moves)", g.solution.String(), g.solution.Len())
		}
		dst.DrawTextColored(0, y, text, core.ColorBrightCyan)
		return
	}
	dst.DrawTextColored(0, y, helpLine, core.ColorGray)
}

// viewport picks the board window for the current view mode. The full view
// falls back to the focused one when the board does not fit.
func (g *Game) viewport(dst *core.Screen) (viewport, bool) {
	availW := dst.Width()
	availH := dst.Height() - 3 // HUD, separator, footer

	fits := func(vp viewport) bool {
		return vp.cols*cellW <= availW && vp.rows <= availH
	}

	if !g.focused {
		full := viewport{
			origin: puzzle.P(-1, -1),
			rows:   g.board.Rows() + 2,
			cols:   g.board.Cols() + 2,
		}
		if fits(full) {
			return full, true
		}
	}

	radius := g.cfg.View.FocusRadius
	if radius <= 0 {
		radius = 4
	}
	for ; radius > 0; radius-- {
		p := g.board.Player()
		focus := viewport{
			origin: puzzle.P(p.Row-radius, p.Col-radius),
			rows:   2*radius + 1,
			cols:   2*radius + 1,
		}
		if fits(focus) {
			return focus, true
		}
	}
	return viewport{}, false
}

// renderBoard draws every cell of the viewport centered in the play area.
func (g *Game) renderBoard(dst *core.Screen, vp viewport) {
	area := core.NewRect(0, 2, dst.Width(), dst.Height()-3)
	r := area.Centered(vp.cols*cellW, vp.rows)

	for dr := 0; dr < vp.rows; dr++ {
		for dc := 0; dc < vp.cols; dc++ {
			p := puzzle.P(vp.origin.Row+dr, vp.origin.Col+dc)
			text, color := g.cellGlyph(p)
			dst.DrawTextColored(r.X+dc*cellW, r.Y+dr, text, color)
		}
	}
}

// cellGlyph returns the two-column text for a board coordinate.
func (g *Game) cellGlyph(p puzzle.Point) (string, core.Color) {
	b := g.board

	if !b.InBounds(p) {
		switch p {
		case b.Start().Step(outward(b, b.Start())):
			return arrow(outward(b, b.Start()).Opposite()), core.ColorBrightGreen
		case b.End().Step(outward(b, b.End())):
			return arrow(outward(b, b.End())), core.ColorBrightRed
		}
		if g.focused && noise(g.noiseSeed, p) {
			return "██", core.ColorGray
		}
		return "  ", core.ColorDefault
	}

	switch b.Tile(p) {
	case puzzle.Wall:
		return "██", core.ColorGray
	case puzzle.Rock:
		return "▓▓", core.ColorWhite
	case puzzle.Start:
		return "██", core.ColorGreen
	case puzzle.End:
		return "██", core.ColorRed
	case puzzle.Player:
		return "██", core.ColorBrightYellow
	default:
		return "░░", core.ColorIce
	}
}

// outward returns the direction pointing off the board from a border cell.
func outward(b *puzzle.Board, p puzzle.Point) puzzle.Direction {
	switch {
	case p.Row == 0:
		return puzzle.Up
	case p.Row == b.Rows()-1:
		return puzzle.Down
	case p.Col == 0:
		return puzzle.Left
	default:
		return puzzle.Right
	}
}

func arrow(d puzzle.Direction) string {
	switch d {
	case puzzle.Up:
		return "↑↑"
	case puzzle.Down:
		return "↓↓"
	case puzzle.Left:
		return "←←"
	default:
		return "→→"
	}
}

// noiseSeed hashes the rock layout so each board gets its own noise.
func noiseSeed(b *puzzle.Board) uint32 {
	h := fnv.New32a()
	for _, r := range b.Rocks() {
		fmt.Fprintf(h, "%d,%d;", r.Row, r.Col)
	}
	return h.Sum32()
}

// noise fills the space around the board in the focused view so the edge
// of the board is not given away. It is stable per board and position.
func noise(seed uint32, p puzzle.Point) bool {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d:%d:%d", seed, p.Row, p.Col)
	return h.Sum32()%10 < 8
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
