// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Gravity  GravityConfig  `yaml:"gravity"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Rotation RotationConfig `yaml:"rotation"`
}

// BoardConfig defines the well dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines how fast pieces fall.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"` // Milliseconds between gravity steps
}

// SpawnConfig defines where new pieces appear.
type SpawnConfig struct {
	Column int `yaml:"column"` // Left column of the bounding box; -1 = derive from width
}

// RotationConfig defines the wall-kick table.
type RotationConfig struct {
	// Kicks are horizontal offsets tried in order after a blocked rotation.
	// An empty list reverts blocked rotations without kicking.
	Kicks []int `yaml:"kicks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// GravityForPreset returns the gravity interval in milliseconds for a preset,
// or 0 when the preset keeps the configured value.
func GravityForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 800
	case DifficultyNormal:
		return 500
	case DifficultyHard:
		return 250
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset leaves the config untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
