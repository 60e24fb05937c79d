package puzzle

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// DefaultMaxAttempts is the retry ceiling for Generate.
const DefaultMaxAttempts = 1_000_000

// depthSlack is how far past the minimum the generator lets the solver look.
const depthSlack = 2

// ErrGenerationExhausted is returned when no board met the requirements
// within the attempt ceiling. The request parameters must change for a
// retry to make sense.
var ErrGenerationExhausted = errors.New("puzzle: no solvable board found within attempt limit")

// GenParams configures random board generation.
type GenParams struct {
	Rows        int // Board rows, border included
	Cols        int // Board columns, border included
	RockPercent int // Chance (0-100) that an interior cell is a rock
	MinMoves    int // Shortest solution must be at least this long
	MaxAttempts int // Retry ceiling (0 = DefaultMaxAttempts)

	// Logger receives debug progress ("boards generated") at every power
	// of ten attempts. Nil disables logging.
	Logger *log.Logger
}

// DefaultGenParams returns the parameters of the default 7x7 puzzle.
func DefaultGenParams() GenParams {
	return GenParams{
		Rows:        9,
		Cols:        9,
		RockPercent: 15,
		MinMoves:    7,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Result is an accepted board together with its shortest solution.
type Result struct {
	Board    *Board
	Solution Solution
	Attempts int
	Elapsed  time.Duration
}

// RandomEndpoints picks distinct start and end points uniformly from the
// border cells, corners excluded.
func RandomEndpoints(rows, cols int, rng *rand.Rand) (start, end Point) {
	if rows < MinSize || cols < MinSize {
		panic(fmt.Sprintf("puzzle: board must be at least %dx%d, got %dx%d", MinSize, MinSize, rows, cols))
	}

	candidates := make([]Point, 0, 2*(cols-2)+2*(rows-2))
	for c := 1; c < cols-1; c++ {
		candidates = append(candidates, Point{Row: 0, Col: c}, Point{Row: rows - 1, Col: c})
	}
	for r := 1; r < rows-1; r++ {
		candidates = append(candidates, Point{Row: r, Col: 0}, Point{Row: r, Col: cols - 1})
	}

	si := rng.Intn(len(candidates))
	ei := rng.Intn(len(candidates))
	for ei == si {
		ei = rng.Intn(len(candidates))
	}
	return candidates[si], candidates[ei]
}

// RandomRocks samples every interior cell independently, turning it into a
// rock with the given percent probability.
func RandomRocks(rows, cols, percent int, rng *rand.Rand) []Point {
	var rocks []Point
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			if rng.Intn(100)+1 <= percent {
				rocks = append(rocks, Point{Row: r, Col: c})
			}
		}
	}
	return rocks
}

// RandomBoard builds one unchecked candidate board.
func RandomBoard(p GenParams, rng *rand.Rand) *Board {
	start, end := RandomEndpoints(p.Rows, p.Cols, rng)
	rocks := RandomRocks(p.Rows, p.Cols, p.RockPercent, rng)
	return New(p.Rows, p.Cols, start, end, rocks)
}

// Generate draws random boards until one has a shortest solution of at
// least p.MinMoves moves. The solver is bounded to MinMoves+2 moves so
// boards with long or no solutions are rejected quickly.
//
// ctx is checked between attempts. When the attempt ceiling is reached the
// returned error wraps ErrGenerationExhausted.
func Generate(ctx context.Context, p GenParams, rng *rand.Rand) (Result, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	maxDepth := p.MinMoves + depthSlack

	began := time.Now()
	nextReport := 1

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Attempts: attempt - 1, Elapsed: time.Since(began)}, fmt.Errorf("puzzle: generation cancelled: %w", err)
			}
		}

		if p.Logger != nil && attempt == nextReport {
			p.Logger.Debug("generating",
				"boards", humanize.Comma(int64(attempt)),
				"elapsed", time.Since(began).Round(time.Millisecond),
			)
			nextReport *= 10
		}

		board := RandomBoard(p, rng)
		sol := Solve(board, maxDepth)
		if !sol.Found() || sol.Len() < p.MinMoves {
			continue
		}

		res := Result{
			Board:    board,
			Solution: sol,
			Attempts: attempt,
			Elapsed:  time.Since(began),
		}
		if p.Logger != nil {
			p.Logger.Debug("board accepted",
				"boards", humanize.Comma(int64(attempt)),
				"moves", sol.Len(),
				"solution", sol.String(),
				"elapsed", res.Elapsed.Round(time.Millisecond),
			)
		}
		return res, nil
	}

	return Result{Attempts: maxAttempts, Elapsed: time.Since(began)},
		fmt.Errorf("%w (%s attempts, %dx%d, %d%% rocks, %d moves)",
			ErrGenerationExhausted, humanize.Comma(int64(maxAttempts)),
			p.Rows, p.Cols, p.RockPercent, p.MinMoves)
}
