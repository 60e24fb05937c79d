package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iceslide/internal/games/iceslide"
	"github.com/vovakirdan/iceslide/internal/platform/tui"
	"github.com/vovakirdan/iceslide/internal/registry"
)

var (
	flagPlayLevel     string
	flagPlayOverrides overrideFlags
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play generated puzzles or a fixed level",
	Long: `Start playing. Without --level a fresh board of the chosen difficulty is
generated after every solve; the run's score is the number of boards solved
without revealing the solution.

Controls:
  Arrows/WASD/HJKL  - Slide
  Space/R           - Back to the start
  V                 - Toggle focused/full view
  G                 - Show the solution (the board no longer scores)
  N                 - Skip to a new board
  Shift+Q/Esc       - Leave the game and save the score
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Examples:
  iceslide play
  iceslide play hard
  iceslide play --cols 10 --rows 6 --moves 8
  iceslide play --level first-steps
  iceslide play --level ./my-level.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLevel, "level", "", "Level file, level ID or saved level name")
	flagPlayOverrides.register(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	var game registry.Game

	if flagPlayLevel != "" {
		lvl, err := resolveLevel(flagPlayLevel)
		if err != nil {
			fatalf("%v", err)
		}
		game = iceslide.NewLevel(lvl)
	} else {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		preset, err := resolvePreset(loadConfig(), name)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Run 'iceslide list' to see available difficulties.")
			fatalf("%v", err)
		}
		iceslide.SetOverrides(flagPlayOverrides.overrides())

		game, err = registry.Create(iceslide.IDPrefix + preset.Name)
		if err != nil {
			// Presets added in a custom config are not registered
			game = iceslide.New(preset)
		}
	}

	// Open score storage
	store := openStoreOptional()

	runErr := tui.Run(game, store, runtimeConfig(), newLogger("iceslide"))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running game: %v", runErr)
	}
}
