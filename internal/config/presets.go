package config

import (
	"fmt"
	"strings"
)

// Preset represents a named set of settings adjustments.
type Preset string

const (
	PresetEasy    Preset = "easy"
	PresetNormal  Preset = "normal"
	PresetHard    Preset = "hard"
	PresetRainbow Preset = "rainbow"
	PresetPrism   Preset = "prism"
)

// Presets returns every known preset in display order.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard, PresetRainbow, PresetPrism}
}

// ParsePreset converts a name to a Preset.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", s)
}

// Description returns a one-line summary of the preset.
func (p Preset) Description() string {
	switch p {
	case PresetEasy:
		return "3 colors, single-color cubes"
	case PresetNormal:
		return "5 colors, single-color cubes"
	case PresetHard:
		return "7 colors, single-color cubes"
	case PresetRainbow:
		return "5 colors, up to 2*size two-color cubes"
	case PresetPrism:
		return "6 colors, up to size three-color cubes"
	default:
		return ""
	}
}

// ApplyPreset modifies the settings based on a preset.
// The grid size is kept; multicube budgets scale with it.
func ApplyPreset(s *Settings, preset Preset) {
	switch preset {
	case PresetEasy:
		s.ColorsCount = 3
		s.MulticubeCount = 0
	case PresetNormal:
		s.ColorsCount = 5
		s.MulticubeCount = 0
	case PresetHard:
		s.ColorsCount = 7
		s.MulticubeCount = 0
	case PresetRainbow:
		s.ColorsCount = 5
		s.MultipleColors = 2
		s.MulticubeCount = MaxMulticubes(s.GridSize)
	case PresetPrism:
		s.ColorsCount = 6
		s.MultipleColors = 3
		s.MulticubeCount = s.GridSize
	}
}
