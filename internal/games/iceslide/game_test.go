package iceslide

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/iceslide/internal/config"
	"github.com/vovakirdan/iceslide/internal/core"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/levels"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
	"github.com/vovakirdan/iceslide/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// isolate keeps user config files out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

// detourLevel is a 7x7 board whose only shortest route is DLDRD.
func detourLevel(solution string) levels.Level {
	return levels.Level{
		ID:   "detour",
		Name: "Detour",
		Layout: puzzle.Layout{
			Rows:     7,
			Cols:     7,
			Start:    puzzle.P(0, 2),
			End:      puzzle.P(6, 4),
			Rocks:    []puzzle.Point{puzzle.P(2, 3), puzzle.P(4, 2), puzzle.P(5, 5)},
			Solution: solution,
		},
	}
}

func newLevelGame(t *testing.T, solution string) *Game {
	t.Helper()
	isolate(t)
	g := NewLevel(detourLevel(solution))
	g.Reset(testRuntime(1))
	if g.Board() == nil {
		t.Fatalf("level did not load: %v", g.Err())
	}
	return g
}

func actionFor(d puzzle.Direction) core.Action {
	switch d {
	case puzzle.Up:
		return core.ActionUp
	case puzzle.Right:
		return core.ActionRight
	case puzzle.Down:
		return core.ActionDown
	default:
		return core.ActionLeft
	}
}

// press sends one action and steps until the queue drains.
func press(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in)

	empty := core.NewInputFrame()
	for i := 0; i < 1000 && g.Board() != nil && g.Board().Busy(); i++ {
		g.Step(empty)
	}
}

func play(g *Game, moves string) {
	dirs, _ := puzzle.ParseDirections(moves)
	for _, d := range dirs {
		press(g, actionFor(d))
	}
}

func TestPresetsRegistered(t *testing.T) {
	for _, name := range config.DefaultIceConfig().PresetNames() {
		id := IDPrefix + name
		if !registry.Exists(id) {
			t.Errorf("preset %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestTitles(t *testing.T) {
	g := New(config.DefaultIceConfig().Presets[0])
	if g.Title() != "Ice Slide (Easy)" {
		t.Errorf("Title() = %q", g.Title())
	}
	if !strings.Contains(g.Description(), "7x7") {
		t.Errorf("Description() = %q", g.Description())
	}

	lg := NewLevel(detourLevel(""))
	if lg.ID() != "level-detour" || lg.Title() != "Ice Slide: Detour" {
		t.Errorf("level ID/Title = %q/%q", lg.ID(), lg.Title())
	}
}

func TestLevelSolveScores(t *testing.T) {
	g := newLevelGame(t, "")

	if got := g.Solution().String(); got != "DLDRD" {
		t.Fatalf("Solution() = %q, expected DLDRD", got)
	}

	play(g, "DLDRD")

	snap := g.Snapshot()
	if snap.State != StateSolved {
		t.Fatalf("State = %s, expected solved (player %v)", snap.State, snap.Player)
	}
	if snap.Solved != 1 || g.State().Score != 1 {
		t.Errorf("Solved = %d, Score = %d, expected 1", snap.Solved, g.State().Score)
	}
	if snap.Slides != 5 {
		t.Errorf("Slides = %d, expected 5", snap.Slides)
	}
}

func TestRevealedSolutionDoesNotScore(t *testing.T) {
	g := newLevelGame(t, "")

	press(g, core.ActionShowSolution)
	if !g.Snapshot().ShowSolution {
		t.Fatal("solution should be shown")
	}

	play(g, "DLDRD")
	if !g.Board().Won() {
		t.Fatal("expected the board to be solved")
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0 after revealing the solution", g.State().Score)
	}
}

func TestRefusedSlideNotCounted(t *testing.T) {
	g := newLevelGame(t, "")

	// Up from the top border runs straight into the edge of the grid.
	press(g, core.ActionUp)
	if g.Snapshot().Slides != 0 {
		t.Errorf("Slides = %d, expected 0", g.Snapshot().Slides)
	}
}

func TestResetReturnsToStart(t *testing.T) {
	g := newLevelGame(t, "")

	press(g, core.ActionDown)
	if g.Board().Player() == g.Board().Start() {
		t.Fatal("slide down should move the player")
	}

	press(g, core.ActionReset)
	snap := g.Snapshot()
	if snap.Player != g.Board().Start() {
		t.Errorf("player = %v, expected start", snap.Player)
	}
	if snap.Slides != 0 {
		t.Errorf("Slides = %d, expected 0 after reset", snap.Slides)
	}
}

func TestLevelReplayAfterWin(t *testing.T) {
	g := newLevelGame(t, "")
	play(g, "DLDRD")

	// The banner stays up in level mode.
	empty := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		g.Step(empty)
	}
	if !g.Board().Won() {
		t.Fatal("level mode should not advance on its own")
	}

	press(g, core.ActionReset)
	if g.Board().Won() || g.Board().Player() != g.Board().Start() {
		t.Errorf("replay should restart the level, got %+v", g.Snapshot())
	}
}

func TestToggleViewAndExit(t *testing.T) {
	g := newLevelGame(t, "")

	focused := g.Snapshot().Focused
	press(g, core.ActionToggleView)
	if g.Snapshot().Focused == focused {
		t.Error("view mode should toggle")
	}

	press(g, core.ActionExit)
	if !g.State().Exited {
		t.Error("expected exited state")
	}
	if g.Snapshot().State != StateExited {
		t.Errorf("State = %s, expected exited", g.Snapshot().State)
	}
}

func TestStoredLevelSolution(t *testing.T) {
	tests := []struct {
		stored string
		want   string
	}{
		{"DRULDRD", "DRULDRD"},
		{"UU", "DLDRD"},
		{"", "DLDRD"},
	}

	for _, tt := range tests {
		g := newLevelGame(t, tt.stored)
		if got := g.Solution().String(); got != tt.want {
			t.Errorf("stored %q: Solution() = %q, expected %q", tt.stored, got, tt.want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	isolate(t)
	preset := config.DefaultIceConfig().Presets[0]

	g1 := New(preset)
	g1.Reset(testRuntime(12345))
	g2 := New(preset)
	g2.Reset(testRuntime(12345))

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Board != s2.Board {
		t.Errorf("boards differ:\n%s\n\n%s", s1.Board, s2.Board)
	}
	if s1.Solution != s2.Solution || s1.Attempts != s2.Attempts {
		t.Errorf("solution/attempts differ: %q/%d vs %q/%d", s1.Solution, s1.Attempts, s2.Solution, s2.Attempts)
	}
	if len(s1.Solution) < preset.MinMoves {
		t.Errorf("solution %q shorter than %d", s1.Solution, preset.MinMoves)
	}
}

func TestGeneratedBoardAdvancesAfterWin(t *testing.T) {
	isolate(t)
	g := New(config.DefaultIceConfig().Presets[0])
	g.Reset(testRuntime(7))

	first := g.Snapshot().Board
	play(g, g.Solution().String())
	if !g.Board().Won() {
		t.Fatalf("playing the solution should win, player at %v", g.Board().Player())
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}

	empty := core.NewInputFrame()
	for i := 0; i < 61; i++ {
		g.Step(empty)
	}
	snap := g.Snapshot()
	if snap.State != StatePlaying || snap.Board == first {
		t.Errorf("expected a fresh board after the banner, state %s", snap.State)
	}
	if snap.Solved != 1 {
		t.Errorf("Solved = %d, expected it to carry over", snap.Solved)
	}
}

func TestNextPuzzle(t *testing.T) {
	isolate(t)
	g := New(config.DefaultIceConfig().Presets[0])
	g.Reset(testRuntime(3))

	first := g.Snapshot().Board
	press(g, core.ActionNextPuzzle)

	snap := g.Snapshot()
	if snap.Board == first {
		t.Error("next puzzle should generate a new board")
	}
	if snap.Solved != 0 {
		t.Errorf("skipping should not score, Solved = %d", snap.Solved)
	}
}

func TestOverrides(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { SetOverrides(config.Overrides{}) })

	SetOverrides(config.Overrides{Cols: 3, Rows: 3, MinMoves: 2})
	g := New(config.DefaultIceConfig().Presets[0])
	g.Reset(testRuntime(5))
	if g.Board() == nil {
		t.Fatalf("generation failed: %v", g.Err())
	}
	if g.Board().Rows() != 5 || g.Board().Cols() != 5 {
		t.Errorf("board is %dx%d, expected 5x5", g.Board().Rows(), g.Board().Cols())
	}
	if !strings.Contains(g.Snapshot().Title, "custom 3x3") {
		t.Errorf("Title = %q", g.Snapshot().Title)
	}

	SetOverrides(config.Overrides{Cols: 99})
	g.Reset(testRuntime(5))
	if !g.State().GameOver {
		t.Error("invalid overrides should end the game")
	}
	if !errors.Is(g.Err(), config.ErrInvalidPuzzle) {
		t.Errorf("Err() = %v, expected ErrInvalidPuzzle", g.Err())
	}
	if g.Snapshot().State != StateFailed {
		t.Errorf("State = %s, expected failed", g.Snapshot().State)
	}
}

func TestRender(t *testing.T) {
	g := newLevelGame(t, "")
	if g.Snapshot().Focused {
		press(g, core.ActionToggleView)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Ice Slide: Detour", "Par: 5", "░░", "▓▓", "↓↓", "slide"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	press(g, core.ActionShowSolution)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Solution: DLDRD (5 moves)") {
		t.Errorf("solution line missing:\n%s", screen.String())
	}
}

func TestRenderSolvedBanner(t *testing.T) {
	g := newLevelGame(t, "")
	play(g, "DLDRD")

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Solved!") {
		t.Errorf("expected solved banner:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newLevelGame(t, "")

	screen := core.NewScreen(30, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small overlay:\n%s", screen.String())
	}
}
