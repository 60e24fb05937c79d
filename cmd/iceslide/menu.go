package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iceslide/internal/games/iceslide"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/levels"
	"github.com/vovakirdan/iceslide/internal/platform/tui"
	"github.com/vovakirdan/iceslide/internal/registry"
	"github.com/vovakirdan/iceslide/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a puzzle interactively",
	Long: `Start in interactive menu mode.

The menu lists every difficulty, the level files in --levels and the saved
level library. After a game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select puzzle
  Tab          - Scoreboard
  Q            - Quit

Examples:
  iceslide menu
  iceslide menu --levels ./my-levels`,
	Run: runMenu,
}

// menuLevels gathers level files and saved levels for the menu.
func menuLevels(store *storage.Store) []levels.Level {
	lvls, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		lvls = nil
	}

	if store != nil {
		if saved, err := store.ListLevels(""); err == nil {
			for i := range saved {
				lvls = append(lvls, savedToLevel(&saved[i]))
			}
		}
	}
	return lvls
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStoreOptional()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	logger := newLogger("iceslide")

	// Menu loop
	for {
		lvls := menuLevels(store)

		menuResult, err := tui.RunMenu(store, cfg, lvls)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.WantsScoreboard {
			extra := make([]registry.GameInfo, 0, len(lvls))
			for _, lvl := range lvls {
				g := iceslide.NewLevel(lvl)
				extra = append(extra, registry.GameInfo{ID: g.ID(), Title: g.Title()})
			}
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, extra)
			if err != nil || !goBack {
				return
			}
			continue
		}

		if menuResult.Quit || menuResult.Item == nil {
			return
		}

		game, err := menuResult.Item.Game()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}
