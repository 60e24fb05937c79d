// Package iceslide implements the ice sliding puzzle as a registry game.
// Each difficulty preset is registered under its own ID; a game can also be
// built around a fixed level loaded from disk.
package iceslide

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/iceslide/internal/config"
	"github.com/vovakirdan/iceslide/internal/core"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/levels"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
	"github.com/vovakirdan/iceslide/internal/registry"
)

// IDPrefix is prepended to preset names to form registry IDs.
const IDPrefix = "ice-"

// solvedBannerSecs is how long "Solved!" stays up before the next puzzle.
const solvedBannerSecs = 1

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath string
	overrides  config.Overrides
	logger     *log.Logger
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetOverrides replaces preset fields for every following Reset.
func SetOverrides(o config.Overrides) {
	overrides = o
}

// SetLogger sets the logger that receives generator progress. Nil
// disables it.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game is one running puzzle session: a sequence of boards of the same
// difficulty, or a single fixed level.
type Game struct {
	preset config.PuzzleConfig
	level  *levels.Level

	cfg    config.IceConfig
	puzzle config.PuzzleConfig
	rng    *rand.Rand
	tick   uint64

	moveEvery  int // Ticks between processed moves
	moveTicker int
	bannerLen  int // Ticks the solved banner stays up

	board     *puzzle.Board
	solution  puzzle.Solution
	noiseSeed uint32
	attempts  int
	slides    int // Slides made on the current board

	solved       int
	bannerTicks  int
	revealed     bool // Solution shown on the current board
	focused      bool
	showSolution bool
	exited       bool
	gameOver     bool
	genErr       error
}

// New creates a game for the given difficulty preset.
func New(preset config.PuzzleConfig) *Game {
	return &Game{preset: preset}
}

// NewLevel creates a game that plays a single fixed level.
func NewLevel(lvl levels.Level) *Game {
	return &Game{level: &lvl}
}

func init() {
	for _, p := range config.DefaultIceConfig().Presets {
		p := p
		registry.Register(IDPrefix+p.Name, func() registry.Game {
			return New(p)
		})
	}
}

// ID returns the game identifier, used for score storage.
func (g *Game) ID() string {
	if g.level != nil {
		return "level-" + g.level.ID
	}
	return IDPrefix + g.preset.Name
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.level != nil {
		return "Ice Slide: " + g.level.Title()
	}
	if g.preset.Title != "" {
		return g.preset.Title
	}
	return "Ice Slide (" + g.preset.Name + ")"
}

// Description summarizes the preset for menus.
func (g *Game) Description() string {
	if g.level != nil {
		return fmt.Sprintf("%dx%d fixed level", g.level.Layout.Cols-2, g.level.Layout.Rows-2)
	}
	p := g.preset
	return fmt.Sprintf("%dx%d, %d+ moves, %d%% rocks", p.Cols, p.Rows, p.MinMoves, p.RockPercent)
}

// Reset loads the configuration and produces the first board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadIce(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultIceConfig()
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.solved = 0
	g.exited = false
	g.gameOver = false
	g.genErr = nil
	g.focused = cfg.View.Focused

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	perSec := cfg.View.MovesPerSec
	if perSec <= 0 {
		perSec = 20
	}
	g.moveEvery = max(1, tickRate/perSec)
	g.bannerLen = tickRate * solvedBannerSecs

	if g.level == nil {
		// The configured preset of the same name wins over the built-in one
		preset := g.preset
		if p, err := cfg.PresetByName(g.preset.Name); err == nil {
			preset = p
		}
		preset, err = config.ApplyOverrides(preset, overrides)
		if err != nil {
			g.fail(err)
			return
		}
		g.puzzle = preset
	}

	g.nextBoard()
}

// nextBoard generates a fresh board, or rebuilds the fixed level.
func (g *Game) nextBoard() {
	g.slides = 0
	g.bannerTicks = 0
	g.revealed = false
	g.showSolution = false
	g.moveTicker = 0

	if g.level != nil {
		b, err := g.level.Board()
		if err != nil {
			g.fail(err)
			return
		}
		g.board = b
		g.solution = levelSolution(g.level, b)
		g.attempts = 0
		g.noiseSeed = noiseSeed(b)
		return
	}

	res, err := puzzle.Generate(context.Background(), puzzle.GenParams{
		Rows:        g.puzzle.BoardRows(),
		Cols:        g.puzzle.BoardCols(),
		RockPercent: g.puzzle.RockPercent,
		MinMoves:    g.puzzle.MinMoves,
		MaxAttempts: g.cfg.Generator.MaxAttempts,
		Logger:      logger,
	}, g.rng)
	if err != nil {
		g.fail(err)
		return
	}
	g.board = res.Board
	g.solution = res.Solution
	g.attempts = res.Attempts
	g.noiseSeed = noiseSeed(res.Board)
}

// levelSolution prefers the solution stored with the level when it still
// solves the board, otherwise searches for one.
func levelSolution(lvl *levels.Level, b *puzzle.Board) puzzle.Solution {
	if moves, err := puzzle.ParseDirections(lvl.Layout.Solution); err == nil && len(moves) > 0 && puzzle.Verify(b, moves) {
		return puzzle.Solution{Steps: moves}
	}
	return puzzle.Solve(b, 0)
}

func (g *Game) fail(err error) {
	g.genErr = err
	g.gameOver = true
	g.board = nil
	if logger != nil {
		logger.Error("cannot produce a puzzle", "game", g.ID(), "err", err)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.gameOver || g.exited || g.board == nil {
		return core.StepResult{State: g.State()}
	}

	// Solved banner, then on to the next board
	if g.board.Won() && !g.board.Busy() {
		g.bannerTicks++
		switch {
		case in.Has(core.ActionExit):
			g.exited = true
		case g.level != nil:
			if in.Has(core.ActionReset) || in.Has(core.ActionNextPuzzle) {
				g.board.Restart()
				g.slides = 0
			}
		case g.bannerTicks >= g.bannerLen || in.Has(core.ActionNextPuzzle):
			g.nextBoard()
		}
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.processMove()
	}

	return core.StepResult{State: g.State()}
}

// processInput turns actions into queued moves.
func (g *Game) processInput(in core.InputFrame) {
	if in.Has(core.ActionNextPuzzle) && g.level == nil {
		g.nextBoard()
		return
	}

	for _, d := range []struct {
		action core.Action
		dir    puzzle.Direction
	}{
		{core.ActionUp, puzzle.Up},
		{core.ActionRight, puzzle.Right},
		{core.ActionDown, puzzle.Down},
		{core.ActionLeft, puzzle.Left},
	} {
		if in.Has(d.action) && g.board.RequestSlide(d.dir) {
			g.slides++
			break
		}
	}

	if in.Has(core.ActionReset) {
		g.board.RequestReset()
	}
	if in.Has(core.ActionToggleView) {
		g.board.Enqueue(puzzle.MoveChangeView)
	}
	if in.Has(core.ActionShowSolution) {
		g.board.Enqueue(puzzle.MoveShowSolution)
	}
	if in.Has(core.ActionExit) {
		g.board.Enqueue(puzzle.MoveExit)
	}
}

// processMove applies at most one queued move.
func (g *Game) processMove() {
	wasWon := g.board.Won()

	move, ok := g.board.ProcessMove()
	if !ok {
		return
	}

	switch move.Kind {
	case puzzle.MoveReset:
		g.slides = 0
	case puzzle.MoveChangeView:
		g.focused = !g.focused
	case puzzle.MoveShowSolution:
		g.showSolution = !g.showSolution
		g.revealed = true
	case puzzle.MoveExit:
		g.exited = true
	}

	if !wasWon && g.board.Won() && !g.revealed {
		g.solved++
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.solved,
		GameOver: g.gameOver,
		Exited:   g.exited,
	}
}

// Err returns the error that ended the game, if any.
func (g *Game) Err() error {
	return g.genErr
}

// Board returns the board in play, nil after a generation failure.
func (g *Game) Board() *puzzle.Board {
	return g.board
}

// Solution returns the shortest known solution of the current board.
func (g *Game) Solution() puzzle.Solution {
	return g.solution
}
