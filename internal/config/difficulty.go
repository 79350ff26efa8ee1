package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. An empty name means no preset.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplySnakePreset modifies the speed settings for a difficulty preset.
// Normal and the empty preset keep the loaded values.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialIntervalMs = 200
		cfg.Speed.MinIntervalMs = 80
		cfg.Speed.DecrementMs = 5
	case DifficultyHard:
		cfg.Speed.InitialIntervalMs = 100
		cfg.Speed.MinIntervalMs = 40
		cfg.Speed.DecrementMs = 10
	case DifficultyFixed:
		// No speed range left, so milestones never change the interval.
		cfg.Speed.MinIntervalMs = cfg.Speed.InitialIntervalMs
	}
}
