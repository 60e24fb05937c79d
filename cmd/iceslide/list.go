package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iceslide/internal/games/iceslide/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets and levels",
	Long:  `Shows the configured difficulty presets and the level files found in --levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Println("Difficulties:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range cfg.Presets {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %-5s  %s\n", maxNameLen, "Name", "Size", "Moves", "Rocks", "Title")
	fmt.Printf("  %-*s  %-7s  %-5s  %-5s  %s\n", maxNameLen, "----", "----", "-----", "-----", "-----")
	for _, p := range cfg.Presets {
		marker := ""
		if p.Name == cfg.Default {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-7s  %-5d  %-5s  %s%s\n",
			maxNameLen, p.Name, fmt.Sprintf("%dx%d", p.Cols, p.Rows), p.MinMoves,
			fmt.Sprintf("%d%%", p.RockPercent), p.Title, marker)
	}

	lvls, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err == nil && len(lvls) > 0 {
		fmt.Println()
		fmt.Printf("Levels in %s:\n", flagLevelsDir)
		fmt.Println()
		for _, lvl := range lvls {
			fmt.Printf("  %-16s  %s\n", lvl.ID, lvl.Title())
		}
	}

	fmt.Println()
	fmt.Println("Run 'iceslide play <difficulty>' or 'iceslide play --level <id>' to play.")
}
