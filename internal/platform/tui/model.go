package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpHeight is the number of rows reserved below the board for key help.
// The help bar is dropped when the terminal has no row to spare.
const helpHeight = 1

// Options configure a game model.
type Options struct {
	Engine  snake.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; nil disables high scores
	Logger  *log.Logger    // Optional; nil discards logs
	User    string         // Player name for logs, set by the SSH server
}

// Model is the Bubble Tea model that hosts one snake engine.
// Bubble Tea calls Update from a single goroutine, which serializes every
// engine call as the engine requires.
type Model struct {
	engine *snake.Engine
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	user   string

	sessionID  string
	highScore  int
	baseHigh   int  // High score when the current game started
	scoreSaved bool // Whether the score has been saved for the current game over
	tickSeq    uint64

	dragging  bool
	dragStart core.Point

	showHelp bool
	quitting bool
}

// NewModel creates a model with a fresh engine in the not-started phase.
func NewModel(opts Options) (Model, error) {
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine, err := snake.New(opts.Engine, seed)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		engine: engine,
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		store:  opts.Store,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		user:   opts.User,
	}
	m.layout(opts.Runtime.ScreenW, opts.Runtime.ScreenH)

	if m.store != nil {
		high, err := m.store.HighScore(snake.GameID)
		if err != nil {
			logger.Warn("could not read high score", "error", err)
		}
		m.highScore = high
	}

	return m, nil
}

// Init implements tea.Model. Ticking starts with the first game.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m.apply(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Seq != m.tickSeq {
			return m, nil // Stale tick from before a pause or restart
		}
		return m.handleTick()
	}

	return m, nil
}

// layout sizes the board screen and decides whether the help bar fits.
func (m *Model) layout(width, height int) {
	_, minH := snake.MinScreenSize(m.engine.Config())
	m.showHelp = height >= minH+helpHeight
	if m.showHelp {
		height -= helpHeight
	}
	m.screen.Resize(width, height)
	m.help.Width = width
}

// apply runs a single action against the engine.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	phase := m.engine.Phase()

	if action.IsDirection() {
		if d, ok := snake.DirectionFromAction(action); ok {
			m.engine.SetDirection(d)
		}
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		if phase == snake.PhaseRunning && m.engine.Score() > 0 {
			m.recordScore("game quit")
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if phase != snake.PhaseRunning {
			return m.startGame()
		}

	case core.ActionRestart:
		if phase == snake.PhaseGameOver {
			return m.startGame()
		}

	case core.ActionPause:
		if phase != snake.PhaseRunning {
			return m.startGame()
		}
		m.engine.TogglePause()
		if m.engine.Paused() {
			m.tickSeq++ // Drop the pending tick; nothing ticks while paused
			return m, nil
		}
		return m, m.scheduleTick()
	}

	return m, nil
}

// handleMouse turns a left-button drag into a swipe and a click into a tap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.dragging = true
		m.dragStart = core.Point{X: msg.X, Y: msg.Y}
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		// Terminal rows are about twice as tall as columns.
		dx := msg.X - m.dragStart.X
		dy := (msg.Y - m.dragStart.Y) * 2
		gesture := core.ClassifySwipe(dx, dy, core.DefaultSwipeDistance)
		if gesture.Tap {
			return m.apply(core.ActionPause)
		}
		return m.apply(gesture.Action)
	}
	return m, nil
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	m.engine.Start()
	m.sessionID = uuid.NewString()
	m.scoreSaved = false
	m.baseHigh = m.highScore
	m.logger.Debug("game started", "session", m.sessionID, "user", m.user)
	return m, m.scheduleTick()
}

// scheduleTick programs the next tick from the engine's current interval.
func (m *Model) scheduleTick() tea.Cmd {
	m.tickSeq++
	return tickCmd(m.engine.TickInterval(), m.tickSeq)
}

// handleTick advances the engine and reschedules while the game runs.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.engine.Tick()

	if res.SpedUp {
		m.logger.Debug("speed up", "session", m.sessionID, "interval", m.engine.TickInterval())
	}
	if res.GameOver {
		m.recordScore("game over")
		return m, nil
	}
	if m.engine.Phase() != snake.PhaseRunning || m.engine.Paused() {
		return m, nil
	}
	return m, m.scheduleTick()
}

// recordScore saves the current score once per game, either when the game
// ends or when the player quits mid-game.
func (m *Model) recordScore(event string) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	snap := m.engine.Snapshot()
	m.logger.Info(event,
		"session", m.sessionID,
		"user", m.user,
		"score", snap.Score,
		"length", len(snap.Body),
		"reason", string(snap.EndReason),
	)

	if snap.Score <= 0 {
		return
	}
	if m.store != nil {
		if _, err := m.store.SaveScore(snake.GameID, m.sessionID, snap.Score); err != nil {
			m.logger.Warn("could not save score", "session", m.sessionID, "error", err)
		}
	}
	m.highScore = max(m.highScore, snap.Score)
}

// hud compares the live score against the high score held when the game
// started.
func (m Model) hud() snake.HUD {
	score := m.engine.Score()
	return snake.HUD{
		HighScore: max(m.highScore, score),
		NewHigh:   score > 0 && score > m.baseHigh,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.engine.Snapshot(), m.screen, m.hud())
	if !m.showHelp {
		return RenderScreen(m.screen)
	}
	return fmt.Sprintf("%s\n%s", RenderScreen(m.screen), m.help.View(m.keys))
}

// MinTerminalSize returns the smallest terminal that shows the whole board.
func MinTerminalSize(cfg snake.Config) (w, h int) {
	return snake.MinScreenSize(cfg)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
