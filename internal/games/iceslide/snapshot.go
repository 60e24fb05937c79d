package iceslide

import "github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"

// StateType names the phase the game is in.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateSliding  StateType = "sliding"
	StateSolved   StateType = "solved"
	StateFailed   StateType = "failed"
	StateExited   StateType = "exited"
	StateNoPuzzle StateType = "no_puzzle"
)

// Snapshot captures the game state for determinism tests and replay.
type Snapshot struct {
	Tick         uint64
	Title        string
	Solved       int
	Slides       int
	Attempts     int
	Player       puzzle.Point
	Solution     string
	Pending      int
	Focused      bool
	ShowSolution bool
	Board        string
	State        StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		Title:        g.Title(),
		Solved:       g.solved,
		Slides:       g.slides,
		Attempts:     g.attempts,
		Solution:     g.solution.String(),
		Focused:      g.focused,
		ShowSolution: g.showSolution,
		State:        StatePlaying,
	}

	switch {
	case g.exited:
		s.State = StateExited
	case g.gameOver:
		s.State = StateFailed
	case g.board == nil:
		s.State = StateNoPuzzle
	}
	if g.board == nil {
		return s
	}

	s.Player = g.board.Player()
	s.Pending = len(g.board.Pending())
	s.Board = g.board.String()
	if s.State == StatePlaying {
		switch {
		case g.board.Won():
			s.State = StateSolved
		case g.board.Busy():
			s.State = StateSliding
		}
	}
	return s
}
