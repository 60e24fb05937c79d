package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/iceslide/internal/games/iceslide"
	"github.com/vovakirdan/iceslide/internal/registry"
	"github.com/vovakirdan/iceslide/internal/storage"
)

var flagScoresClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [puzzle]",
	Short: "Show best runs",
	Long: `Display the top 10 runs for a difficulty or level. A run's score is the
number of puzzles solved without revealing the solution.

Without an argument, a summary of every puzzle with recorded runs is shown.

Examples:
  iceslide scores
  iceslide scores hard
  iceslide scores level-detour
  iceslide scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs for the puzzle")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			fatalf("--clear needs a puzzle")
		}
		printAllStats(store)
		return
	}

	gameID := resolveGameID(store, args[0])
	title := gameID
	if game, err := registry.Create(gameID); err == nil {
		title = game.Title()
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Cleared runs for %s\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fatalf("retrieving scores: %v", err)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Solved", "When")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8s  %s\n", i+1, humanize.Comma(int64(entry.Score)), humanize.Time(entry.CreatedAt))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %s  Best: %d  Average: %.1f  Total solved: %s\n",
			humanize.Comma(int64(stats.RunsCount)), stats.HighScore, stats.AvgScore, humanize.Comma(stats.TotalSolved))
	}
}

// resolveGameID maps "hard" to "ice-hard" and "detour" to "level-detour"
// when the bare name is not a known puzzle.
func resolveGameID(store *storage.Store, name string) string {
	candidates := []string{name}
	if !strings.HasPrefix(name, iceslide.IDPrefix) && !strings.HasPrefix(name, "level-") {
		candidates = append(candidates, iceslide.IDPrefix+name, "level-"+name)
	}

	for _, id := range candidates {
		if registry.Exists(id) {
			return id
		}
		if stats, err := store.GetGameStats(id); err == nil && stats.RunsCount > 0 {
			return id
		}
	}
	return name
}

func printAllStats(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fatalf("%v", err)
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'iceslide play' to start one.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %-6s  %-6s  %s\n", "Puzzle", "Runs", "Best", "Last played")
	fmt.Printf("  %-20s  %-6s  %-6s  %s\n", "------", "----", "----", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-20s  %-6s  %-6d  %s\n", id, humanize.Comma(int64(st.RunsCount)), st.HighScore, humanize.Time(st.LastPlayed))
	}
}
