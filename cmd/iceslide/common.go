package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/iceslide/internal/config"
	"github.com/vovakirdan/iceslide/internal/core"
	"github.com/vovakirdan/iceslide/internal/games/iceslide"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/levels"
	"github.com/vovakirdan/iceslide/internal/storage"
)

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates a stderr logger with the given prefix.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// runtimeConfig builds the game runtime config from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// rng returns a random source seeded from --seed or the clock.
func rng() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// openStoreOptional opens the database, warning instead of failing.
func openStoreOptional() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// loadConfig reads the difficulty config, falling back to the defaults.
func loadConfig() config.IceConfig {
	cfg, err := config.LoadIce(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
		return config.DefaultIceConfig()
	}
	return cfg
}

// overrideFlags are the preset overrides shared by play and generate.
type overrideFlags struct {
	cols, rows, moves, rocks int
}

func (o *overrideFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.cols, "cols", 0, "Interior columns (overrides preset)")
	cmd.Flags().IntVar(&o.rows, "rows", 0, "Interior rows (overrides preset)")
	cmd.Flags().IntVar(&o.moves, "moves", 0, "Minimum solution length (overrides preset)")
	cmd.Flags().IntVar(&o.rocks, "rocks", 0, "Rock percentage (overrides preset)")
}

func (o overrideFlags) overrides() config.Overrides {
	return config.Overrides{Cols: o.cols, Rows: o.rows, MinMoves: o.moves, RockPercent: o.rocks}
}

// resolvePreset accepts "hard" or "ice-hard"; empty picks the default.
func resolvePreset(cfg config.IceConfig, name string) (config.PuzzleConfig, error) {
	name = strings.TrimPrefix(name, iceslide.IDPrefix)
	return cfg.PresetByName(name)
}

// resolveLevel finds a level by file path, by ID in the level directory,
// or by name in the saved level library.
func resolveLevel(ref string) (levels.Level, error) {
	loader := levels.NewLoader(flagLevelsDir)

	if _, err := os.Stat(ref); err == nil {
		return loader.LoadFile(ref)
	}

	lvl, err := loader.LoadByID(ref)
	if err == nil {
		return lvl, nil
	}
	if !errors.Is(err, levels.ErrNotFound) && !errors.Is(err, os.ErrNotExist) {
		return levels.Level{}, err
	}

	store, openErr := storage.Open(flagDBPath)
	if openErr != nil {
		return levels.Level{}, err
	}
	defer store.Close()

	saved, getErr := store.GetLevel(ref)
	if getErr != nil {
		return levels.Level{}, fmt.Errorf("%w: %s", levels.ErrNotFound, ref)
	}
	return savedToLevel(saved), nil
}

// savedToLevel adapts a library entry to a playable level.
func savedToLevel(s *storage.SavedLevel) levels.Level {
	return levels.Level{
		ID:     s.Name,
		Name:   s.Name,
		Layout: s.Layout,
		Metadata: map[string]string{
			"difficulty": s.Difficulty,
			"saved":      s.CreatedAt.Format(time.RFC3339),
		},
	}
}
