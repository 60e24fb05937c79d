package config

import (
	_ "embed"
)

//go:embed defaults/iceslide.yaml
var defaultIceYAML []byte

// DefaultIceConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultIceConfig() IceConfig {
	return IceConfig{
		Default: DifficultyEasy,
		Generator: GeneratorConfig{
			MaxAttempts: 1_000_000,
		},
		View: ViewConfig{
			Focused:     true,
			FocusRadius: 4,
			MovesPerSec: 20,
		},
		Presets: []PuzzleConfig{
			{Name: DifficultyEasy, Title: "Ice Slide (Easy)", Cols: 7, Rows: 7, MinMoves: 7, RockPercent: 15},
			{Name: DifficultyMedium, Title: "Ice Slide (Medium)", Cols: 12, Rows: 12, MinMoves: 11, RockPercent: 15},
			{Name: DifficultyHard, Title: "Ice Slide (Hard)", Cols: 17, Rows: 17, MinMoves: 18, RockPercent: 10},
			{Name: DifficultyExtreme, Title: "Ice Slide (Extreme)", Cols: 20, Rows: 20, MinMoves: 25, RockPercent: 12},
		},
	}
}
