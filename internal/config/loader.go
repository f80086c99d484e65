package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/cubes.yaml
var defaultCubesYAML []byte

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultCubesYAML
}

// Load loads game settings.
// Search order: customPath -> ~/.cubes/configs/cubes.yaml -> ./configs/cubes.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	cfg := DefaultSettings()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "cubes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultSettings()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cubes.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultSettings()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCubesYAML, &cfg); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Save writes settings as YAML to path, creating parent directories.
// An empty path means ~/.cubes/configs/cubes.yaml.
func Save(path string, s Settings) error {
	if path == "" {
		path = UserPath("configs", "cubes.yaml")
		if path == "" {
			return fmt.Errorf("config: no home directory to save settings in")
		}
	}
	path = ExpandHome(path)

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
