package config

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty preset names shipped in the default configuration.
const (
	DifficultyEasy    = "easy"
	DifficultyMedium  = "medium"
	DifficultyHard    = "hard"
	DifficultyExtreme = "extreme"
)

// ErrUnknownDifficulty is returned when a preset name is not configured.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// PresetNames returns the configured preset names in file order.
func (c IceConfig) PresetNames() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

// PresetByName looks up a preset case-insensitively. An empty name selects
// the default preset.
func (c IceConfig) PresetByName(name string) (PuzzleConfig, error) {
	if name == "" {
		name = c.Default
	}
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return PuzzleConfig{}, fmt.Errorf("%w %q (have %s)", ErrUnknownDifficulty, name, strings.Join(c.PresetNames(), ", "))
}

// Overrides replaces individual preset fields. Zero values leave the
// preset untouched.
type Overrides struct {
	Cols        int
	Rows        int
	MinMoves    int
	RockPercent int
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// ApplyOverrides returns p with the overrides applied and validated.
func ApplyOverrides(p PuzzleConfig, o Overrides) (PuzzleConfig, error) {
	if o.Cols != 0 {
		p.Cols = o.Cols
	}
	if o.Rows != 0 {
		p.Rows = o.Rows
	}
	if o.MinMoves != 0 {
		p.MinMoves = o.MinMoves
	}
	if o.RockPercent != 0 {
		p.RockPercent = o.RockPercent
	}
	if !o.IsZero() {
		p.Title = fmt.Sprintf("%s (custom %dx%d)", p.Title, p.Cols, p.Rows)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
