package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("DefaultSettings().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		valid  bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"smallest grid", func(s *Settings) { s.GridSize = 3 }, true},
		{"grid too small", func(s *Settings) { s.GridSize = 2 }, false},
		{"grid too large", func(s *Settings) { s.GridSize = 31 }, false},
		{"seven colors", func(s *Settings) { s.ColorsCount = 7 }, true},
		{"too many colors", func(s *Settings) { s.ColorsCount = 8 }, false},
		{"too few colors", func(s *Settings) { s.ColorsCount = 2 }, false},
		{"three-color cubes", func(s *Settings) { s.MultipleColors = 3 }, true},
		{"four-color cubes", func(s *Settings) { s.MultipleColors = 4 }, false},
		{"negative budget", func(s *Settings) { s.MulticubeCount = -1 }, false},
		{"budget at bound", func(s *Settings) { s.MulticubeCount = 30 }, true},
		{"budget over bound", func(s *Settings) { s.MulticubeCount = 31 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			err := s.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() = %v, expected ErrInvalidSettings", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	s := DefaultSettings()
	s.GridSize = 10

	ApplyPreset(&s, PresetRainbow)
	if s.ColorsCount != 5 || s.MultipleColors != 2 || s.MulticubeCount != 20 {
		t.Errorf("rainbow preset gave %+v", s)
	}

	ApplyPreset(&s, PresetHard)
	if s.ColorsCount != 7 || s.MulticubeCount != 0 {
		t.Errorf("hard preset gave %+v", s)
	}

	for _, p := range Presets() {
		s := DefaultSettings()
		ApplyPreset(&s, p)
		if err := s.Validate(); err != nil {
			t.Errorf("preset %s produces invalid settings: %v", p, err)
		}
		if p.Description() == "" {
			t.Errorf("preset %s has no description", p)
		}
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset(" Hard ")
	if err != nil || p != PresetHard {
		t.Errorf("ParsePreset(\" Hard \") = %q, %v", p, err)
	}
	if _, err := ParsePreset("impossible"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes.yaml")
	data := []byte("grid_size: 8\ncolors_count: 4\nmultiple_colors: 3\nmulticube_count: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := Settings{GridSize: 8, ColorsCount: 4, MultipleColors: 3, MulticubeCount: 5}
	if s != want {
		t.Errorf("Load() = %+v, expected %+v", s, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubes.yaml")
	if err := os.WriteFile(path, []byte("grid_size: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.GridSize != 6 || s.ColorsCount != DefaultSettings().ColorsCount {
		t.Errorf("Load() = %+v, expected grid 6 with default colors", s)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".cubes", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cubes.yaml"), []byte("colors_count: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.ColorsCount != 6 {
		t.Errorf("user config not picked up, got %+v", s)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("embedded defaults = %+v, expected %+v", s, DefaultSettings())
	}
	if len(DefaultYAML()) == 0 {
		t.Error("embedded default YAML is empty")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/x/y.txt"); got != filepath.Join(home, "x", "y.txt") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome should keep absolute paths, got %q", got)
	}
	if got := UserPath("a.txt"); got != filepath.Join(home, ".cubes", "a.txt") {
		t.Errorf("UserPath = %q", got)
	}
}

func TestSaveThenLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := Settings{GridSize: 20, ColorsCount: 6, MultipleColors: 3, MulticubeCount: 12}
	if err := Save("", want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".cubes", "configs", "cubes.yaml")); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() after Save() = %+v, expected %+v", got, want)
	}

	custom := filepath.Join(t.TempDir(), "nested", "custom.yaml")
	if err := Save(custom, DefaultSettings()); err != nil {
		t.Fatalf("Save(custom) failed: %v", err)
	}
	if got, err := Load(custom); err != nil || got != DefaultSettings() {
		t.Errorf("Load(custom) = %+v, %v", got, err)
	}
}
