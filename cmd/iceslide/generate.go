package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/iceslide/internal/config"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/levels"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
	"github.com/vovakirdan/iceslide/internal/storage"
)

var (
	flagGenFormat    string
	flagGenOut       string
	flagGenSave      string
	flagGenName      string
	flagGenQuiet     bool
	flagGenOverrides overrideFlags
)

var generateCmd = &cobra.Command{
	Use:   "generate [difficulty]",
	Short: "Print a generated board and its solution",
	Long: `Generate a solvable board without starting the game. The layout (with the
shortest solution) is written to stdout as JSON or YAML; the board and a
summary go to stderr.

Points are written as [col, row]. In the grid, W is a wall, R a rock, S the
start gate and E the exit.

Examples:
  iceslide generate
  iceslide generate hard --seed 42
  iceslide generate --cols 8 --rows 5 --moves 6 --format yaml
  iceslide generate medium --out levels/my-level.yaml
  iceslide generate extreme --save weekly-challenge`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagGenFormat, "format", "json", "Output format: json or yaml")
	generateCmd.Flags().StringVarP(&flagGenOut, "out", "o", "", "Write the level to this file (format from extension)")
	generateCmd.Flags().StringVar(&flagGenSave, "save", "", "Save the board to the level library under this name")
	generateCmd.Flags().StringVar(&flagGenName, "name", "", "Level name written with the layout")
	generateCmd.Flags().BoolVarP(&flagGenQuiet, "quiet", "q", false, "Do not print the board and summary")
	flagGenOverrides.register(generateCmd)
}

func runGenerate(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	preset, err := resolvePreset(cfg, name)
	if err != nil {
		fatalf("%v", err)
	}
	preset, err = config.ApplyOverrides(preset, flagGenOverrides.overrides())
	if err != nil {
		fatalf("%v", err)
	}

	// Ctrl+C abandons a long search
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	params := puzzle.GenParams{
		Rows:        preset.BoardRows(),
		Cols:        preset.BoardCols(),
		RockPercent: preset.RockPercent,
		MinMoves:    preset.MinMoves,
		MaxAttempts: cfg.Generator.MaxAttempts,
	}
	if flagDebug {
		params.Logger = newLogger("generator")
	}

	res, err := puzzle.Generate(ctx, params, rng())
	if err != nil {
		fatalf("%v", err)
	}

	layout := res.Board.Layout()
	layout.Solution = res.Solution.String()

	lvl := levels.Level{
		ID:     flagGenName,
		Name:   flagGenName,
		Layout: layout,
		Metadata: map[string]string{
			"difficulty": preset.Name,
		},
	}

	if !flagGenQuiet {
		fmt.Fprintln(os.Stderr, res.Board.String())
		fmt.Fprintf(os.Stderr, "%s: %dx%d board after %s attempts in %s\n",
			preset.Title, preset.Cols, preset.Rows, humanize.Comma(int64(res.Attempts)), res.Elapsed.Round(time.Millisecond))
		fmt.Fprintf(os.Stderr, "Shortest solution: %s (%d moves)\n", res.Solution.String(), res.Solution.Len())
	}

	if flagGenSave != "" {
		saveGenerated(flagGenSave, preset.Name, layout)
	}

	if flagGenOut != "" {
		ext := filepath.Ext(flagGenOut)
		if lvl.ID == "" {
			lvl.ID = strings.TrimSuffix(filepath.Base(flagGenOut), ext)
		}
		data, err := levels.Encode(lvl, ext)
		if err != nil {
			fatalf("%v", err)
		}
		if err := os.WriteFile(flagGenOut, data, 0o644); err != nil {
			fatalf("writing %s: %v", flagGenOut, err)
		}
		if !flagGenQuiet {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", flagGenOut)
		}
		return
	}

	data, err := levels.Encode(lvl, "."+flagGenFormat)
	if err != nil {
		fatalf("%v", err)
	}
	os.Stdout.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Println()
	}
}

// saveGenerated stores the layout in the level library.
func saveGenerated(name, difficulty string, layout puzzle.Layout) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening database: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveLevel(name, difficulty, layout); err != nil {
		fatalf("%v", err)
	}
	if !flagGenQuiet {
		fmt.Fprintf(os.Stderr, "Saved as %q\n", name)
	}
}
