// Package snake implements the deterministic Snake simulation engine.
// The engine owns a single game session and advances it one cell per Tick.
// It performs no I/O and owns no timer: hosts schedule Tick themselves,
// re-reading TickInterval after every call.
//
// An Engine is not safe for concurrent use. Hosts must serialize Tick,
// SetDirection and the pause calls, e.g. by driving them from one event loop.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameID identifies the game for score storage.
const GameID = "snake"

// Phase is the coarse session state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason records why a session reached PhaseGameOver.
type EndReason string

const (
	EndNone      EndReason = ""
	EndWall      EndReason = "wall"
	EndSelf      EndReason = "self"
	EndBoardFull EndReason = "board_full"
)

// TickResult describes what a single Tick did.
type TickResult struct {
	Moved    bool // The snake advanced one cell
	Ate      bool // Food was eaten this tick
	SpedUp   bool // The tick interval was reduced
	GameOver bool // The session ended this tick
}

// Engine is the Snake simulation engine.
type Engine struct {
	cfg    Config
	bounds core.Rect
	rng    *rand.Rand

	body      []core.Point // Head at index 0
	direction Direction    // Committed heading for the next move
	pending   Direction    // Last accepted request, committed at the next tick
	food      core.Point
	score     int
	interval  int // Milliseconds

	phase     Phase
	paused    bool
	ticks     uint64
	endReason EndReason
}

// New validates cfg and returns an engine in PhaseNotStarted.
// The seed drives food placement, so equal seeds replay identically.
func New(cfg Config, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	return &Engine{
		cfg:       cfg,
		bounds:    core.NewRect(0, 0, cfg.GridWidth, cfg.GridHeight),
		rng:       rand.New(rand.NewSource(seed)),
		direction: DirRight,
		pending:   DirRight,
		interval:  cfg.InitialTickInterval,
		phase:     PhaseNotStarted,
	}, nil
}

// Start discards any previous session and begins a new one.
func (e *Engine) Start() {
	e.body = []core.Point{e.bounds.Center()}
	e.direction = DirRight
	e.pending = DirRight
	e.score = 0
	e.interval = e.cfg.InitialTickInterval
	e.phase = PhaseRunning
	e.paused = false
	e.ticks = 0
	e.endReason = EndNone

	// A fresh grid of at least 2x2 always has a free cell.
	e.food, _ = e.placeFood()
}

// SetDirection queues a heading for the next tick. Requests are ignored
// outside PhaseRunning and when they reverse the committed heading.
// It reports whether the request was accepted.
func (e *Engine) SetDirection(d Direction) bool {
	if e.phase != PhaseRunning {
		return false
	}
	if d == e.direction.Opposite() {
		return false
	}
	e.pending = d
	return true
}

// Pause suspends ticking. Direction requests stay effective while paused.
func (e *Engine) Pause() {
	if e.phase == PhaseRunning {
		e.paused = true
	}
}

// Resume continues a paused session.
func (e *Engine) Resume() {
	if e.phase == PhaseRunning {
		e.paused = false
	}
}

// TogglePause flips the paused flag while running.
func (e *Engine) TogglePause() {
	if e.phase == PhaseRunning {
		e.paused = !e.paused
	}
}

// Tick advances the simulation by one cell.
func (e *Engine) Tick() TickResult {
	if e.phase != PhaseRunning || e.paused {
		return TickResult{}
	}

	e.direction = e.pending
	dx, dy := e.direction.Delta()
	newHead := e.body[0].Add(dx, dy)

	if !e.bounds.Contains(newHead) {
		e.end(EndWall)
		return TickResult{GameOver: true}
	}

	willEat := newHead == e.food
	if e.hitsBody(newHead, willEat) {
		e.end(EndSelf)
		return TickResult{GameOver: true}
	}

	e.body = append(e.body, core.Point{})
	copy(e.body[1:], e.body)
	e.body[0] = newHead
	e.ticks++

	res := TickResult{Moved: true}
	if !willEat {
		e.body = e.body[:len(e.body)-1]
		return res
	}

	res.Ate = true
	e.score += e.cfg.ScorePerFood
	if e.score%e.cfg.SpeedupScoreThreshold == 0 {
		next := max(e.interval-e.cfg.TickIntervalDecrement, e.cfg.MinTickInterval)
		res.SpedUp = next < e.interval
		e.interval = next
	}

	food, ok := e.placeFood()
	if !ok {
		e.end(EndBoardFull)
		res.GameOver = true
		return res
	}
	e.food = food
	return res
}

// hitsBody checks p against the current body. The tail only counts as free
// when tail chasing is enabled and it will be vacated this tick.
func (e *Engine) hitsBody(p core.Point, willEat bool) bool {
	n := len(e.body)
	if e.cfg.AllowTailChase && !willEat {
		n--
	}
	for _, seg := range e.body[:n] {
		if seg == p {
			return true
		}
	}
	return false
}

func (e *Engine) end(reason EndReason) {
	e.phase = PhaseGameOver
	e.paused = false
	e.endReason = reason
}

// IsOver reports whether the session has ended.
func (e *Engine) IsOver() bool {
	return e.phase == PhaseGameOver
}

// Phase returns the current session phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Paused reports whether a running session is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// TickIntervalMs returns the current tick interval in milliseconds.
func (e *Engine) TickIntervalMs() int {
	return e.interval
}

// TickInterval returns the delay the host should wait before the next Tick.
func (e *Engine) TickInterval() time.Duration {
	return time.Duration(e.interval) * time.Millisecond
}

// SpeedPercent maps the interval onto 0..100 between initial and minimum.
func (e *Engine) SpeedPercent() int {
	span := e.cfg.InitialTickInterval - e.cfg.MinTickInterval
	if span <= 0 {
		return 0
	}
	return ((e.cfg.InitialTickInterval-e.interval)*100 + span/2) / span
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}
