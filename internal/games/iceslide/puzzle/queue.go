package puzzle

// MoveKind identifies a queued action.
type MoveKind uint8

const (
	MoveSlide MoveKind = iota
	MoveReset
	MoveChangeView
	MoveShowSolution
	MoveExit
)

// String returns the move kind name.
func (k MoveKind) String() string {
	switch k {
	case MoveSlide:
		return "Slide"
	case MoveReset:
		return "Reset"
	case MoveChangeView:
		return "ChangeView"
	case MoveShowSolution:
		return "ShowSolution"
	case MoveExit:
		return "Exit"
	}
	return "Unknown"
}

// Slide is an in-flight move: a direction and the cells still to travel.
type Slide struct {
	Direction Direction
	Steps     int
}

// Move is one entry of the move queue. Slide is only meaningful for
// MoveSlide.
type Move struct {
	Kind  MoveKind
	Slide Slide
}

// SlideMove creates a slide of the given length.
func SlideMove(d Direction, steps int) Move {
	return Move{Kind: MoveSlide, Slide: Slide{Direction: d, Steps: steps}}
}

// Busy reports whether queued moves are still pending.
func (b *Board) Busy() bool {
	return len(b.queue) > 0
}

// Pending returns a copy of the queued moves, front first.
func (b *Board) Pending() []Move {
	return append([]Move(nil), b.queue...)
}

// RequestSlide queues a slide in d. It is refused while the queue is not
// empty (the player is still sliding) or when the player cannot move in d.
func (b *Board) RequestSlide(d Direction) bool {
	if b.Busy() {
		return false
	}
	steps := b.StepsInDirection(d)
	if steps == 0 {
		return false
	}
	b.queue = append(b.queue, SlideMove(d, steps))
	return true
}

// RequestReset drops every pending move and queues a return to the start,
// unless the player already stands there.
func (b *Board) RequestReset() {
	b.queue = b.queue[:0]
	if b.player != b.start {
		b.queue = append(b.queue, Move{Kind: MoveReset})
	}
}

// Enqueue appends a control move (view change, solution, exit).
func (b *Board) Enqueue(kind MoveKind) {
	b.queue = append(b.queue, Move{Kind: kind})
}

// ProcessMove pops and applies the move at the front of the queue. A slide
// advances the player one cell; if cells remain it goes back to the front so
// the slide animates one tile per call. Reset jumps to the start. Other
// kinds are returned for the caller to act on.
//
// ok is false when the queue is empty.
func (b *Board) ProcessMove() (move Move, ok bool) {
	if len(b.queue) == 0 {
		return Move{}, false
	}

	move = b.queue[0]
	b.queue = b.queue[1:]

	switch move.Kind {
	case MoveSlide:
		if move.Slide.Steps > 1 {
			rest := SlideMove(move.Slide.Direction, move.Slide.Steps-1)
			b.queue = append([]Move{rest}, b.queue...)
		}
		b.MovePlayer(move.Slide.Direction)
	case MoveReset:
		b.UpdatePlayerPosition(b.start.Row, b.start.Col)
		b.won = false
	}

	return move, true
}
