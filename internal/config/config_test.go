package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParsesAndValidates(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded default YAML failed to parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Embedded default YAML is invalid: %v", err)
	}
	def := DefaultConfig()
	if cfg.Board != def.Board {
		t.Errorf("Embedded board %+v differs from hardcoded %+v", cfg.Board, def.Board)
	}
	if cfg.Gravity != def.Gravity {
		t.Errorf("Embedded gravity %+v differs from hardcoded %+v", cfg.Gravity, def.Gravity)
	}
	if cfg.Scoring.Piece != def.Scoring.Piece || cfg.LineTable() != def.LineTable() {
		t.Errorf("Embedded scoring %+v differs from hardcoded %+v", cfg.Scoring, def.Scoring)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Board.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Board.Cols = -1 }},
		{"zero gravity", func(c *Config) { c.Gravity.Interval = 0 }},
		{"short line table", func(c *Config) { c.Scoring.Lines = []int{100} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should reject this config")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := []byte(`
board:
  rows: 16
  cols: 8
gravity:
  interval: 0.3
scoring:
  piece: 2
  lines: [50, 150, 250, 400]
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.Board.Rows != 16 || cfg.Board.Cols != 8 {
		t.Errorf("Board = %+v, want 16x8", cfg.Board)
	}
	if cfg.Gravity.Interval != 0.3 {
		t.Errorf("Gravity interval = %g, want 0.3", cfg.Gravity.Interval)
	}
	if cfg.LineTable() != [4]int{50, 150, 250, 400} {
		t.Errorf("Line table = %v", cfg.LineTable())
	}
}

func TestLoadRejectsMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  rows: 0\n  cols: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with an invalid explicit config should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 0.8},
		{DifficultyNormal, 0.5},
		{DifficultyHard, 0.25},
		{DifficultyFixed, 0.5}, // keeps config value
		{"", 0.5},              // no preset, keeps config value
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Gravity.Interval != tc.want {
			t.Errorf("Preset %q: gravity = %g, want %g", tc.preset, cfg.Gravity.Interval, tc.want)
		}
	}
}
