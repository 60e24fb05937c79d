package puzzle

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestRandomEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := Layout{Rows: 6, Cols: 9}

	for i := 0; i < 500; i++ {
		start, end := RandomEndpoints(l.Rows, l.Cols, rng)
		if start == end {
			t.Fatalf("start and end coincide at %v", start)
		}
		if !l.onBorder(start) || !l.onBorder(end) {
			t.Fatalf("endpoints %v, %v not on a non-corner border cell", start, end)
		}
	}
}

func TestRandomRocks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	if rocks := RandomRocks(9, 9, 0, rng); len(rocks) != 0 {
		t.Errorf("0%% rocks produced %d rocks", len(rocks))
	}
	if rocks := RandomRocks(9, 9, 100, rng); len(rocks) != 49 {
		t.Errorf("100%% rocks produced %d rocks, expected 49", len(rocks))
	}

	for _, r := range RandomRocks(9, 9, 30, rng) {
		if r.Row < 1 || r.Row > 7 || r.Col < 1 || r.Col > 7 {
			t.Errorf("rock %v outside the interior", r)
		}
	}
}

func TestGenerate(t *testing.T) {
	params := GenParams{
		Rows:        9,
		Cols:        9,
		RockPercent: 15,
		MinMoves:    4,
		MaxAttempts: 100_000,
	}

	res, err := Generate(context.Background(), params, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	b := res.Board
	if b.Rows() != 9 || b.Cols() != 9 {
		t.Errorf("board is %dx%d, expected 9x9", b.Rows(), b.Cols())
	}
	if res.Solution.Len() < params.MinMoves {
		t.Errorf("solution %q shorter than %d", res.Solution.String(), params.MinMoves)
	}
	if !Verify(b, res.Solution.Steps) {
		t.Errorf("solution %q does not verify", res.Solution.String())
	}
	if res.Attempts < 1 || res.Attempts > params.MaxAttempts {
		t.Errorf("Attempts = %d", res.Attempts)
	}
	if b.Player() != b.Start() || b.Busy() || b.Won() {
		t.Error("generated board should be fresh")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	params := DefaultGenParams()
	params.MinMoves = 3

	a, err := Generate(context.Background(), params, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := Generate(context.Background(), params, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if a.Board.String() != b.Board.String() {
		t.Errorf("same seed produced different boards:\n%s\n\n%s", a.Board, b.Board)
	}
	if a.Attempts != b.Attempts {
		t.Errorf("attempts differ: %d vs %d", a.Attempts, b.Attempts)
	}
}

func TestGenerateExhausted(t *testing.T) {
	// No 3x3 board needs more than two moves.
	params := GenParams{Rows: 3, Cols: 3, MinMoves: 5, MaxAttempts: 50}

	res, err := Generate(context.Background(), params, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("expected ErrGenerationExhausted, got %v", err)
	}
	if res.Board != nil {
		t.Error("exhausted generation should not return a board")
	}
	if res.Attempts != 50 {
		t.Errorf("Attempts = %d, expected 50", res.Attempts)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	params := GenParams{Rows: 3, Cols: 3, MinMoves: 5}
	_, err := Generate(ctx, params, rand.New(rand.NewSource(1)))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
