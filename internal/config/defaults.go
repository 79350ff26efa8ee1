package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  20,
			Height: 20,
		},
		Speed: SnakeSpeed{
			InitialIntervalMs: 150,
			MinIntervalMs:     50,
			DecrementMs:       10,
		},
		Scoring: SnakeScoring{
			PerFood:      10,
			SpeedupEvery: 50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
