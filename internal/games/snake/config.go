package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds the engine constants fixed at construction time.
// Tick intervals are in milliseconds.
type Config struct {
	GridWidth             int
	GridHeight            int
	InitialTickInterval   int
	MinTickInterval       int
	TickIntervalDecrement int
	ScorePerFood          int
	SpeedupScoreThreshold int

	// AllowTailChase lets the head enter the cell the tail vacates on the same
	// tick. Off by default: the full pre-move body counts for self collision.
	AllowTailChase bool
}

// DefaultConfig returns the classic 20x20 setup.
func DefaultConfig() Config {
	return Config{
		GridWidth:             20,
		GridHeight:            20,
		InitialTickInterval:   150,
		MinTickInterval:       50,
		TickIntervalDecrement: 10,
		ScorePerFood:          10,
		SpeedupScoreThreshold: 50,
	}
}

// Validate rejects degenerate grids and non-positive constants.
func (c Config) Validate() error {
	if c.GridWidth <= 1 || c.GridHeight <= 1 {
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d", ErrInvalidConfig, c.GridWidth, c.GridHeight)
	}

	positive := []struct {
		name  string
		value int
	}{
		{"initial tick interval", c.InitialTickInterval},
		{"min tick interval", c.MinTickInterval},
		{"tick interval decrement", c.TickIntervalDecrement},
		{"score per food", c.ScorePerFood},
		{"speed-up score threshold", c.SpeedupScoreThreshold},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.MinTickInterval > c.InitialTickInterval {
		return fmt.Errorf("%w: min tick interval %d exceeds initial %d",
			ErrInvalidConfig, c.MinTickInterval, c.InitialTickInterval)
	}
	return nil
}
