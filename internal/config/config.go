// Package config provides YAML-based rule configuration loading and
// difficulty presets for the blockfall platform.
package config

import "fmt"

// Config contains all tunable rules for a game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GravityConfig defines the pacing of automatic drops.
type GravityConfig struct {
	// Interval is the real-time duration in seconds between automatic
	// downward shifts.
	Interval float64 `yaml:"interval"`
}

// ScoringConfig defines the scoring policy.
type ScoringConfig struct {
	// Piece is awarded for every locked piece.
	Piece int `yaml:"piece"`
	// Lines awards points by rows cleared at once: index 0 is a single,
	// index 3 the four-row clear. The curve escalates so a quadruple
	// beats four singles.
	Lines []int `yaml:"lines"`
}

// Validate checks that the config describes a playable rule set.
func (c Config) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("config: invalid board size %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Gravity.Interval <= 0 {
		return fmt.Errorf("config: gravity interval must be positive, got %g", c.Gravity.Interval)
	}
	if len(c.Scoring.Lines) != 4 {
		return fmt.Errorf("config: scoring.lines needs 4 entries, got %d", len(c.Scoring.Lines))
	}
	return nil
}

// LineTable returns the scoring table as a fixed-size array.
// Call Validate first; short tables are zero-padded here.
func (c Config) LineTable() [4]int {
	var table [4]int
	copy(table[:], c.Scoring.Lines)
	return table
}
