package config

// DifficultyPreset represents a named gravity pacing.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// GravityForPreset returns the gravity interval in seconds for a preset.
// Returns 0 for unknown or fixed presets, meaning "keep the config value".
func GravityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyNormal:
		return 0.5
	case DifficultyHard:
		return 0.25
	default:
		return 0
	}
}

// ApplyPreset overrides the config's gravity interval with the preset's
// pacing. The fixed preset (and an empty preset) leaves the config alone.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if g := GravityForPreset(preset); g > 0 {
		cfg.Gravity.Interval = g
	}
}
