package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default rule set, used as the
// last-resort fallback if the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Gravity: GravityConfig{
			Interval: 0.5,
		},
		Scoring: ScoringConfig{
			Piece: 1,
			Lines: []int{100, 300, 500, 800},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
