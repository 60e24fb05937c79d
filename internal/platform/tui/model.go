package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/iceslide/internal/config"
	"github.com/vovakirdan/iceslide/internal/core"
	"github.com/vovakirdan/iceslide/internal/registry"
	"github.com/vovakirdan/iceslide/internal/storage"
)

// GameModel is the Bubble Tea model that drives one puzzle game.
// Standalone runs quit the program when the player leaves the game; inside
// a session it hands control back to the menu instead.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	inSession  bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
	status     string // One-shot message, e.g. where a screenshot went
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithLogger attaches a logger for save failures.
func (m GameModel) WithLogger(l *log.Logger) GameModel {
	m.logger = l
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	// gameState is picked up on the first tick (value receiver)
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Board generation does not depend on the screen, so no reset
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.status = m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}

	// Nothing left to play after a generation failure
	if m.gameState.GameOver && m.inputFrame.Has(core.ActionExit) {
		return m.leave()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Exited {
		return m.leave()
	}

	return m, tickCmd(m.config.TickRate)
}

// leave records the run and ends the game.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.saveScore()
	if m.inSession {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// saveScore stores the number of solved puzzles once per run.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.store == nil {
		return
	}
	m.scoreSaved = true

	score := m.game.State().Score
	if score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), score); err != nil && m.logger != nil {
		m.logger.Warn("cannot save score", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot writes the current screen to ~/.iceslide/screenshots and
// returns a status line.
func (m *GameModel) saveScreenshot() string {
	m.game.Render(m.screen)

	dir := config.UserDir("screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "screenshot failed: " + err.Error()
	}
	return "saved " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextColored(0, m.screen.Height()-1, " "+m.status, core.ColorBrightGreen)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left the game inside a session.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
