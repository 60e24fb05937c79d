// Package config provides YAML-based puzzle configuration loading and
// difficulty presets for the ice slide games.
package config

import (
	"errors"
	"fmt"
)

// Limits accepted for a puzzle preset. Sizes count interior cells only;
// the wall border adds two in each dimension.
const (
	MinInterior    = 3
	MaxInterior    = 20
	MinMoves       = 1
	MaxMoves       = 30
	MinRockPercent = 0
	MaxRockPercent = 50
)

// ErrInvalidPuzzle is wrapped by every validation failure.
var ErrInvalidPuzzle = errors.New("config: invalid puzzle settings")

// IceConfig contains all configuration for the ice slide puzzles.
type IceConfig struct {
	Default   string          `yaml:"default"` // Preset used when none is named
	Generator GeneratorConfig `yaml:"generator"`
	View      ViewConfig      `yaml:"view"`
	Presets   []PuzzleConfig  `yaml:"presets"`
}

// GeneratorConfig tunes the generate-and-retry loop.
type GeneratorConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Boards tried before giving up
}

// ViewConfig controls how a running puzzle is drawn.
type ViewConfig struct {
	Focused     bool `yaml:"focused"`      // Start in the player-centered view
	FocusRadius int  `yaml:"focus_radius"` // Cells shown around the player
	MovesPerSec int  `yaml:"moves_per_sec"`
}

// PuzzleConfig describes one difficulty preset.
type PuzzleConfig struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Cols        int    `yaml:"cols"` // Interior columns
	Rows        int    `yaml:"rows"` // Interior rows
	MinMoves    int    `yaml:"min_moves"`
	RockPercent int    `yaml:"rock_percent"`
}

// BoardRows returns the board height including the wall border.
func (p PuzzleConfig) BoardRows() int { return p.Rows + 2 }

// BoardCols returns the board width including the wall border.
func (p PuzzleConfig) BoardCols() int { return p.Cols + 2 }

// Validate checks the preset against the accepted limits.
func (p PuzzleConfig) Validate() error {
	if p.Cols < MinInterior || p.Cols > MaxInterior {
		return fmt.Errorf("%w: cols %d not in %d..%d", ErrInvalidPuzzle, p.Cols, MinInterior, MaxInterior)
	}
	if p.Rows < MinInterior || p.Rows > MaxInterior {
		return fmt.Errorf("%w: rows %d not in %d..%d", ErrInvalidPuzzle, p.Rows, MinInterior, MaxInterior)
	}
	if p.MinMoves < MinMoves || p.MinMoves > MaxMoves {
		return fmt.Errorf("%w: min moves %d not in %d..%d", ErrInvalidPuzzle, p.MinMoves, MinMoves, MaxMoves)
	}
	if p.RockPercent < MinRockPercent || p.RockPercent > MaxRockPercent {
		return fmt.Errorf("%w: rock percent %d not in %d..%d", ErrInvalidPuzzle, p.RockPercent, MinRockPercent, MaxRockPercent)
	}
	return nil
}

// Validate checks every preset and that the default preset exists.
func (c IceConfig) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("%w: no presets", ErrInvalidPuzzle)
	}
	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("%w: preset without a name", ErrInvalidPuzzle)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate preset %q", ErrInvalidPuzzle, p.Name)
		}
		seen[p.Name] = true
		if err := p.Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	if c.Default != "" && !seen[c.Default] {
		return fmt.Errorf("%w: default preset %q not defined", ErrInvalidPuzzle, c.Default)
	}
	if c.Generator.MaxAttempts < 0 {
		return fmt.Errorf("%w: negative max attempts", ErrInvalidPuzzle)
	}
	return nil
}
