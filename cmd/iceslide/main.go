// iceslide is a terminal ice sliding puzzle: slide across the ice from the
// start gate to the exit in as few moves as possible.
//
// Usage:
//
//	iceslide list                 - List difficulty presets and levels
//	iceslide play [difficulty]    - Play generated puzzles
//	iceslide menu                 - Pick a puzzle interactively
//	iceslide generate [difficulty] - Print a generated board and its solution
//	iceslide solve <file>         - Solve a level file
//	iceslide levels               - List level files and saved levels
//	iceslide scores [puzzle]      - Show best runs
//	iceslide serve                - Start SSH server for remote play
//	iceslide web                  - Start the HTTP board API
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.iceslide/scores.db)
//	--config <path>  - Use a custom difficulty config
//	--levels <dir>   - Level directory (default: ./levels)
//	--debug          - Log generator progress
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iceslide/internal/games/iceslide"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "iceslide",
	Short: "Ice Slide - a sliding puzzle for your terminal",
	Long: `Ice Slide is a terminal puzzle. The player stands on ice and keeps
sliding until a wall or rock stops them; find the way from the start gate to
the exit.

Available commands:
  list      - Show difficulty presets and levels
  play      - Play generated puzzles or a level file
  menu      - Interactive puzzle picker
  generate  - Print a generated board with its solution
  solve     - Solve a level file
  levels    - List level files and the saved level library
  scores    - View best runs
  serve     - Start SSH server for remote play
  web       - Start the HTTP board API

Examples:
  iceslide play
  iceslide play hard --seed 7
  iceslide generate medium --format yaml
  iceslide solve levels/first-steps.json --all
  iceslide serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		iceslide.SetConfigPath(flagConfig)
		if flagDebug {
			iceslide.SetLogger(newLogger("generator"))
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.iceslide/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom difficulty config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "levels", "Directory with level files")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}
