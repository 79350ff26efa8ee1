package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is a read-only copy of the engine state for renderers and tests.
type Snapshot struct {
	Width        int
	Height       int
	Body         []core.Point // Head first
	Food         core.Point
	Direction    Direction
	Pending      Direction
	Score        int
	TickInterval int // Milliseconds
	SpeedPercent int
	Phase        Phase
	Paused       bool
	Ticks        uint64
	EndReason    EndReason
}

// Head returns the head position, or (-1,-1) before the first Start.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{X: -1, Y: -1}
	}
	return s.Body[0]
}

// Snapshot returns a copy of the current state. The body slice is not shared
// with the engine.
func (e *Engine) Snapshot() Snapshot {
	body := make([]core.Point, len(e.body))
	copy(body, e.body)

	return Snapshot{
		Width:        e.cfg.GridWidth,
		Height:       e.cfg.GridHeight,
		Body:         body,
		Food:         e.food,
		Direction:    e.direction,
		Pending:      e.pending,
		Score:        e.score,
		TickInterval: e.interval,
		SpeedPercent: e.SpeedPercent(),
		Phase:        e.phase,
		Paused:       e.paused,
		Ticks:        e.ticks,
		EndReason:    e.endReason,
	}
}
