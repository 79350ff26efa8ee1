// Package config provides YAML-based engine configuration loading and
// difficulty presets for the snake game.
package config

import "github.com/vovakirdan/tui-snake/internal/games/snake"

// SnakeConfig is the on-disk form of the engine configuration.
type SnakeConfig struct {
	Grid    SnakeGrid    `yaml:"grid"`
	Speed   SnakeSpeed   `yaml:"speed"`
	Scoring SnakeScoring `yaml:"scoring"`
	Rules   SnakeRules   `yaml:"rules"`
}

// SnakeGrid defines the board size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSpeed defines the tick interval progression in milliseconds.
type SnakeSpeed struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
	DecrementMs       int `yaml:"decrement_ms"`
}

// SnakeScoring defines points and speed-up milestones.
type SnakeScoring struct {
	PerFood      int `yaml:"per_food"`
	SpeedupEvery int `yaml:"speedup_every"` // Score step that triggers a speed-up
}

// SnakeRules holds rule toggles.
type SnakeRules struct {
	AllowTailChase bool `yaml:"allow_tail_chase"`
}

// Engine converts the file form into engine constants.
func (c SnakeConfig) Engine() snake.Config {
	return snake.Config{
		GridWidth:             c.Grid.Width,
		GridHeight:            c.Grid.Height,
		InitialTickInterval:   c.Speed.InitialIntervalMs,
		MinTickInterval:       c.Speed.MinIntervalMs,
		TickIntervalDecrement: c.Speed.DecrementMs,
		ScorePerFood:          c.Scoring.PerFood,
		SpeedupScoreThreshold: c.Scoring.SpeedupEvery,
		AllowTailChase:        c.Rules.AllowTailChase,
	}
}

// Validate checks the values the engine would reject.
func (c SnakeConfig) Validate() error {
	return c.Engine().Validate()
}
