package puzzle

import "testing"

func TestRequestSlide(t *testing.T) {
	b := openBoard()

	if b.RequestSlide(Left) {
		t.Error("slide into a wall should be refused")
	}
	if b.Busy() {
		t.Error("refused slide should not be queued")
	}

	if !b.RequestSlide(Down) {
		t.Fatal("slide down should be accepted")
	}
	if b.RequestSlide(Down) {
		t.Error("slide while busy should be refused")
	}

	pending := b.Pending()
	if len(pending) != 1 || pending[0] != SlideMove(Down, 3) {
		t.Errorf("Pending() = %+v, expected one slide down of 3", pending)
	}
}

func TestProcessMoveAnimatesOneCellPerCall(t *testing.T) {
	b := openBoard()
	b.RequestSlide(Down)
	b.Enqueue(MoveShowSolution)

	steps := []struct {
		player  Point
		pending []Move
	}{
		{P(1, 1), []Move{SlideMove(Down, 2), {Kind: MoveShowSolution}}},
		{P(2, 1), []Move{SlideMove(Down, 1), {Kind: MoveShowSolution}}},
		{P(3, 1), []Move{{Kind: MoveShowSolution}}},
	}

	for i, want := range steps {
		move, ok := b.ProcessMove()
		if !ok {
			t.Fatalf("step %d: queue unexpectedly empty", i)
		}
		if move.Kind != MoveSlide {
			t.Errorf("step %d: kind = %s, expected Slide", i, move.Kind)
		}
		if b.Player() != want.player {
			t.Errorf("step %d: player = %v, expected %v", i, b.Player(), want.player)
		}
		pending := b.Pending()
		if len(pending) != len(want.pending) {
			t.Fatalf("step %d: pending = %+v, expected %+v", i, pending, want.pending)
		}
		for j := range pending {
			if pending[j] != want.pending[j] {
				t.Errorf("step %d: pending[%d] = %+v, expected %+v", i, j, pending[j], want.pending[j])
			}
		}
	}

	move, ok := b.ProcessMove()
	if !ok || move.Kind != MoveShowSolution {
		t.Errorf("ProcessMove() = %+v, %v, expected ShowSolution", move, ok)
	}

	if _, ok := b.ProcessMove(); ok {
		t.Error("ProcessMove on an empty queue should report false")
	}
}

func TestSlideToGoalWins(t *testing.T) {
	b := openBoard()

	for _, d := range []Direction{Down, Right, Down} {
		if !b.RequestSlide(d) {
			t.Fatalf("slide %s refused at %v", d.Name(), b.Player())
		}
		for b.Busy() {
			b.ProcessMove()
		}
	}

	if !b.Won() {
		t.Error("expected won after DRD")
	}
	if b.Tile(b.End()) != Player {
		t.Errorf("end tile = %s, expected Player", b.Tile(b.End()))
	}
}

func TestRequestReset(t *testing.T) {
	b := openBoard()

	b.RequestReset()
	if b.Busy() {
		t.Error("reset at the start should queue nothing")
	}

	b.RequestSlide(Down)
	for b.Busy() {
		b.ProcessMove()
	}
	b.Enqueue(MoveChangeView)

	b.RequestReset()
	pending := b.Pending()
	if len(pending) != 1 || pending[0].Kind != MoveReset {
		t.Fatalf("Pending() = %+v, expected a single Reset", pending)
	}

	move, ok := b.ProcessMove()
	if !ok || move.Kind != MoveReset {
		t.Fatalf("ProcessMove() = %+v, %v, expected Reset", move, ok)
	}
	if b.Player() != b.Start() {
		t.Errorf("player = %v, expected start", b.Player())
	}
	if b.Tile(P(3, 1)) != Ice {
		t.Errorf("vacated tile = %s, expected Ice", b.Tile(P(3, 1)))
	}
	if b.Tile(b.Start()) != Player {
		t.Errorf("start tile = %s, expected Player", b.Tile(b.Start()))
	}
}

func TestResetDuringSlide(t *testing.T) {
	b := openBoard()
	b.RequestSlide(Down)
	b.ProcessMove()

	b.RequestReset()
	b.ProcessMove()

	if b.Busy() {
		t.Errorf("queue should be empty after reset, got %+v", b.Pending())
	}
	if b.Player() != b.Start() {
		t.Errorf("player = %v, expected start", b.Player())
	}
}

func TestMoveKindString(t *testing.T) {
	tests := []struct {
		kind MoveKind
		want string
	}{
		{MoveSlide, "Slide"},
		{MoveReset, "Reset"},
		{MoveChangeView, "ChangeView"},
		{MoveShowSolution, "ShowSolution"},
		{MoveExit, "Exit"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, expected %q", tt.kind, got, tt.want)
		}
	}
}
