package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/iceslide/internal/games/iceslide/levels"
	"github.com/vovakirdan/iceslide/internal/storage"
)

var (
	flagLevelsDifficulty string
	flagExportFormat     string
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List level files and saved levels",
	Long: `Show the level files in --levels and the boards saved to the level
library with 'iceslide generate --save'.

Examples:
  iceslide levels
  iceslide levels --difficulty hard
  iceslide levels export weekly-challenge --format yaml
  iceslide levels rm weekly-challenge`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var levelsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved level",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsRm,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Write a saved level to the level directory",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsExport,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDifficulty, "difficulty", "", "Only list saved levels of this difficulty")
	levelsExportCmd.Flags().StringVar(&flagExportFormat, "format", "json", "File format: json or yaml")

	levelsCmd.AddCommand(levelsRmCmd)
	levelsCmd.AddCommand(levelsExportCmd)
}

func runLevels(_ *cobra.Command, _ []string) {
	files, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		fmt.Printf("No level files in %s\n", flagLevelsDir)
	} else {
		fmt.Printf("Level files in %s:\n", flagLevelsDir)
		fmt.Println()
		for _, lvl := range files {
			fmt.Printf("  %-20s  %-7s  %s\n", lvl.ID,
				fmt.Sprintf("%dx%d", lvl.Layout.Cols, lvl.Layout.Rows), lvl.Title())
		}
	}
	fmt.Println()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening database: %v", err)
	}
	defer store.Close()

	saved, err := store.ListLevels(flagLevelsDifficulty)
	if err != nil {
		fatalf("%v", err)
	}
	if len(saved) == 0 {
		fmt.Println("No saved levels. Use 'iceslide generate --save <name>' to add one.")
		return
	}

	fmt.Println("Saved levels:")
	fmt.Println()
	fmt.Printf("  %-20s  %-10s  %-7s  %-5s  %s\n", "Name", "Difficulty", "Size", "Moves", "Saved")
	fmt.Printf("  %-20s  %-10s  %-7s  %-5s  %s\n", "----", "----------", "----", "-----", "-----")
	for _, s := range saved {
		fmt.Printf("  %-20s  %-10s  %-7s  %-5d  %s\n", s.Name, s.Difficulty,
			fmt.Sprintf("%dx%d", s.Layout.Cols, s.Layout.Rows), s.MinMoves, humanize.Time(s.CreatedAt))
	}
}

func runLevelsRm(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening database: %v", err)
	}
	defer store.Close()

	if err := store.DeleteLevel(args[0]); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("Deleted %q\n", args[0])
}

func runLevelsExport(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening database: %v", err)
	}
	defer store.Close()

	saved, err := store.GetLevel(args[0])
	if err != nil {
		fatalf("%v", err)
	}

	path, err := levels.Write(flagLevelsDir, savedToLevel(saved), "."+flagExportFormat)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}
