// Package config provides YAML-based settings loading, presets and
// validation for the cubes game.
package config

import (
	"errors"
	"fmt"
)

// Accepted ranges for Settings fields.
const (
	MinGridSize       = 3
	MaxGridSize       = 30
	MinColorsCount    = 3
	MaxColorsCount    = 7
	MinMultipleColors = 2
	MaxMultipleColors = 3
)

// ErrInvalidSettings is returned by Settings.Validate for out-of-range values.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings describes how a board is generated.
type Settings struct {
	GridSize       int `yaml:"grid_size"`       // Board is GridSize x GridSize
	ColorsCount    int `yaml:"colors_count"`    // Palette entries in play
	MultipleColors int `yaml:"multiple_colors"` // Colors on a multicolor cube
	MulticubeCount int `yaml:"multicube_count"` // Budget of multicolor cubes
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		GridSize:       15,
		ColorsCount:    5,
		MultipleColors: 2,
		MulticubeCount: 0,
	}
}

// MaxMulticubes returns the largest multicolor budget accepted for a grid size.
func MaxMulticubes(gridSize int) int {
	return gridSize * 2
}

// Validate checks every field against its accepted range.
// The game itself does not validate; front-ends call this before construction.
func (s Settings) Validate() error {
	switch {
	case s.GridSize < MinGridSize || s.GridSize > MaxGridSize:
		return fmt.Errorf("%w: grid size %d not in [%d, %d]", ErrInvalidSettings, s.GridSize, MinGridSize, MaxGridSize)
	case s.ColorsCount < MinColorsCount || s.ColorsCount > MaxColorsCount:
		return fmt.Errorf("%w: colors count %d not in [%d, %d]", ErrInvalidSettings, s.ColorsCount, MinColorsCount, MaxColorsCount)
	case s.MultipleColors < MinMultipleColors || s.MultipleColors > MaxMultipleColors:
		return fmt.Errorf("%w: multiple colors %d not in [%d, %d]", ErrInvalidSettings, s.MultipleColors, MinMultipleColors, MaxMultipleColors)
	case s.MulticubeCount < 0 || s.MulticubeCount > MaxMulticubes(s.GridSize):
		return fmt.Errorf("%w: multicube count %d not in [0, %d]", ErrInvalidSettings, s.MulticubeCount, MaxMulticubes(s.GridSize))
	}
	return nil
}
