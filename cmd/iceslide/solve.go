package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
)

var (
	flagSolveAll   bool
	flagSolveDepth int
	flagSolveLimit int
)

var solveCmd = &cobra.Command{
	Use:   "solve <level>",
	Short: "Solve a level file",
	Long: `Find the shortest solution of a level. The argument is a level file, a
level ID in --levels or the name of a saved level.

With --all every solution that never revisits a position is listed,
shortest first. Bound the search with --depth and --limit on open boards.

Examples:
  iceslide solve levels/first-steps.json
  iceslide solve detour --all --depth 8
  iceslide solve weekly-challenge --all --limit 5`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSolveAll, "all", false, "List every solution instead of the shortest")
	solveCmd.Flags().IntVar(&flagSolveDepth, "depth", 0, "Maximum solution length (0 = unbounded)")
	solveCmd.Flags().IntVar(&flagSolveLimit, "limit", 0, "Stop after this many solutions with --all (0 = all)")
}

func runSolve(_ *cobra.Command, args []string) {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		fatalf("%v", err)
	}
	board, err := lvl.Board()
	if err != nil {
		fatalf("%s: %v", args[0], err)
	}

	fmt.Printf("%s (%dx%d)\n\n", lvl.Title(), board.Cols(), board.Rows())
	fmt.Println(board.String())
	fmt.Println()

	if flagSolveAll {
		printAllSolutions(board)
		return
	}

	sol := puzzle.Solve(board, flagSolveDepth)
	if !sol.Found() {
		fmt.Printf("No solution (%s positions searched)\n", humanize.Comma(int64(sol.EdgesTraversed)))
		return
	}
	fmt.Printf("Shortest solution: %s (%d moves, %s positions searched)\n",
		sol.String(), sol.Len(), humanize.Comma(int64(sol.EdgesTraversed)))

	if lvl.Layout.Solution == "" {
		return
	}
	stored, err := puzzle.ParseDirections(lvl.Layout.Solution)
	switch {
	case err != nil:
		fmt.Printf("Stored solution %q is malformed: %v\n", lvl.Layout.Solution, err)
	case !puzzle.Verify(board, stored):
		fmt.Printf("Stored solution %q does not reach the exit\n", lvl.Layout.Solution)
	case len(stored) > sol.Len():
		fmt.Printf("Stored solution %s works but is %d moves longer\n", lvl.Layout.Solution, len(stored)-sol.Len())
	}
}

func printAllSolutions(board *puzzle.Board) {
	res := puzzle.Enumerate(board, puzzle.EnumerateOptions{
		MaxDepth: flagSolveDepth,
		Limit:    flagSolveLimit,
	})
	if !res.Solvable() {
		fmt.Printf("No solution (%s slides tried)\n", humanize.Comma(int64(res.EdgesTraversed)))
		return
	}

	fmt.Printf("%d solutions (%s slides tried):\n", len(res.Solutions), humanize.Comma(int64(res.EdgesTraversed)))
	for i, moves := range res.Solutions {
		fmt.Printf("  %3d. %-24s %d moves\n", i+1, puzzle.FormatDirections(moves), len(moves))
	}
}
