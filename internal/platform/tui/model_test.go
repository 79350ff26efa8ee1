package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store, seed int64) Model {
	t.Helper()
	m, err := NewModel(Options{
		Engine:  snake.DefaultConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 60, ScreenH: 30, Seed: seed},
		Store:   store,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model, cmd
}

// tick delivers the tick the model is currently waiting for.
func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{Seq: m.tickSeq})
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := snake.DefaultConfig()
	cfg.GridWidth = 1

	_, err := NewModel(Options{
		Engine:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 60, ScreenH: 30, Seed: 1},
	})
	if err == nil {
		t.Fatal("expected error for invalid engine config")
	}
}

func TestNewModelReadsHighScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(snake.GameID, "old", 70); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := newTestModel(t, store, 1)
	if m.highScore != 70 {
		t.Errorf("highScore = %d, want 70", m.highScore)
	}
}

func TestStartWithEnter(t *testing.T) {
	m := newTestModel(t, nil, 1)
	if m.engine.Phase() != snake.PhaseNotStarted {
		t.Fatalf("phase = %v, want not_started", m.engine.Phase())
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.engine.Phase() != snake.PhaseRunning {
		t.Errorf("phase = %v, want running", m.engine.Phase())
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}
	if _, err := uuid.Parse(m.sessionID); err != nil {
		t.Errorf("sessionID %q is not a UUID: %v", m.sessionID, err)
	}
}

func TestSpaceStartsWhenNotRunning(t *testing.T) {
	m := newTestModel(t, nil, 1)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.engine.Phase() != snake.PhaseRunning {
		t.Errorf("phase = %v, want running", m.engine.Phase())
	}
	if m.engine.Paused() {
		t.Error("space before start should not pause")
	}
}

func TestDirectionKeys(t *testing.T) {
	m := newTestModel(t, nil, 1)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.engine.Phase() != snake.PhaseNotStarted {
		t.Fatal("direction key should not start the game")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, runeKey('w'))
	if got := m.engine.Snapshot().Pending; got != snake.DirUp {
		t.Errorf("pending = %v, want up", got)
	}

	// Reversal of the committed heading (right) is rejected.
	m, _ = update(t, m, runeKey('a'))
	if got := m.engine.Snapshot().Pending; got != snake.DirUp {
		t.Errorf("pending after reversal = %v, want up", got)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t, nil, 1)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, TickMsg{Seq: m.tickSeq - 1})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if got := m.engine.Snapshot().Ticks; got != 0 {
		t.Errorf("ticks after stale message = %d, want 0", got)
	}

	seq := m.tickSeq
	m, cmd = tick(t, m)
	if got := m.engine.Snapshot().Ticks; got != 1 {
		t.Errorf("ticks = %d, want 1", got)
	}
	if cmd == nil {
		t.Error("running game should schedule the next tick")
	}
	if m.tickSeq != seq+1 {
		t.Errorf("tickSeq = %d, want %d", m.tickSeq, seq+1)
	}
}

func TestPauseHaltsTicks(t *testing.T) {
	m := newTestModel(t, nil, 1)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	pending := m.tickSeq

	m, cmd := update(t, m, runeKey('p'))
	if !m.engine.Paused() {
		t.Fatal("p should pause a running game")
	}
	if cmd != nil {
		t.Error("pausing should not schedule a tick")
	}

	// The tick scheduled before the pause is now stale.
	m, _ = update(t, m, TickMsg{Seq: pending})
	if got := m.engine.Snapshot().Ticks; got != 0 {
		t.Errorf("ticks while paused = %d, want 0", got)
	}

	m, cmd = update(t, m, runeKey('p'))
	if m.engine.Paused() {
		t.Error("p should resume a paused game")
	}
	if cmd == nil {
		t.Error("resuming should schedule a tick")
	}

	m, _ = tick(t, m)
	if got := m.engine.Snapshot().Ticks; got != 1 {
		t.Errorf("ticks after resume = %d, want 1", got)
	}
}

func TestMouseSwipeAndTap(t *testing.T) {
	m := newTestModel(t, nil, 1)

	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	}
	release := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
	}

	// A tap before the game starts begins a game.
	m, _ = update(t, m, press(10, 10))
	m, _ = update(t, m, release(10, 10))
	if m.engine.Phase() != snake.PhaseRunning {
		t.Fatalf("tap should start the game, phase = %v", m.engine.Phase())
	}

	// Two rows down counts as four cells of vertical travel.
	m, _ = update(t, m, press(10, 10))
	m, _ = update(t, m, release(10, 12))
	if got := m.engine.Snapshot().Pending; got != snake.DirDown {
		t.Errorf("pending after swipe = %v, want down", got)
	}

	// A tap while running toggles pause.
	m, _ = update(t, m, press(5, 5))
	m, _ = update(t, m, release(6, 5))
	if !m.engine.Paused() {
		t.Error("tap while running should pause")
	}

	// A release without a press is ignored.
	m, _ = update(t, m, release(30, 5))
	if !m.engine.Paused() {
		t.Error("stray release should be ignored")
	}
}

// seedWithFoodAhead finds a seed whose first food lies on the start row to
// the right of the head, so a straight run eats it and then hits the wall.
func seedWithFoodAhead(t *testing.T) int64 {
	t.Helper()
	cfg := snake.DefaultConfig()
	for seed := int64(1); seed < 10000; seed++ {
		e, err := snake.New(cfg, seed)
		if err != nil {
			t.Fatalf("snake.New() failed: %v", err)
		}
		e.Start()
		snap := e.Snapshot()
		if snap.Food.Y == snap.Head().Y && snap.Food.X > snap.Head().X {
			return seed
		}
	}
	t.Fatal("no seed places food ahead of the head")
	return 0
}

func TestGameOverSavesScoreOnce(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store, seedWithFoodAhead(t))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 100 && !m.engine.IsOver(); i++ {
		m, _ = tick(t, m)
	}
	if !m.engine.IsOver() {
		t.Fatal("game should end at the wall")
	}
	final := m.engine.Score()
	if final < 10 {
		t.Fatalf("score = %d, want at least 10", final)
	}

	// Extra ticks after game over must not save again.
	var cmd tea.Cmd
	m, cmd = update(t, m, TickMsg{Seq: m.tickSeq})
	if cmd != nil {
		t.Error("finished game should not schedule ticks")
	}

	scores, err := store.TopScores(snake.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != final || scores[0].SessionID != m.sessionID {
		t.Errorf("saved entry = %+v, want score %d for session %s", scores[0], final, m.sessionID)
	}

	hud := m.hud()
	if hud.HighScore != final || !hud.NewHigh {
		t.Errorf("hud = %+v, want new high score %d", hud, final)
	}

	// Restart gives a new session and clears the badge.
	firstSession := m.sessionID
	m, _ = update(t, m, runeKey('r'))
	if m.engine.Phase() != snake.PhaseRunning {
		t.Errorf("r should restart after game over, phase = %v", m.engine.Phase())
	}
	if m.sessionID == firstSession {
		t.Error("restart should assign a new session ID")
	}
	if m.hud().NewHigh {
		t.Error("new game should not show the new high score badge")
	}
}

func TestQuitMidGameSavesScore(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store, seedWithFoodAhead(t))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 100 && m.engine.Score() == 0; i++ {
		m, _ = tick(t, m)
	}
	if m.engine.Phase() != snake.PhaseRunning {
		t.Fatalf("phase = %v, want running after eating", m.engine.Phase())
	}
	live := m.engine.Score()
	if live <= 0 {
		t.Fatal("snake should have eaten the food ahead")
	}

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("q should return a quit command")
	}

	high, err := store.HighScore(snake.GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != live {
		t.Errorf("stored high score = %d, want %d", high, live)
	}

	// A second quit message must not write another row.
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	scores, err := store.TopScores(snake.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].SessionID != m.sessionID {
		t.Errorf("scores = %+v, want one row for session %s", scores, m.sessionID)
	}
}

func TestQuitWithoutScoreSavesNothing(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store, 1)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = update(t, m, runeKey('q'))

	scores, err := store.TopScores(snake.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("saved %d scores for a zero-score quit, want 0", len(scores))
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, nil, 1)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	session := m.sessionID

	m, _ = update(t, m, runeKey('r'))
	if m.sessionID != session || m.engine.Snapshot().Ticks != 1 {
		t.Error("r should not restart a running game")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t, nil, 1)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if m.screen.Width() != 80 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, want 80x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
	if !m.showHelp {
		t.Error("help bar should fit in a 40-row terminal")
	}

	// A classic 80x24 terminal fits the default board only without help.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.showHelp {
		t.Error("help bar should be hidden when the board needs every row")
	}
	if m.screen.Height() != 24 {
		t.Errorf("screen height = %d, want 24", m.screen.Height())
	}
	if strings.Contains(m.View(), "Window too small") {
		t.Error("default board should fit 80x24")
	}
}

func TestViewAndQuit(t *testing.T) {
	m := newTestModel(t, nil, 1)

	view := m.View()
	if !strings.Contains(view, "SCORE") || !strings.Contains(view, "SNAKE") {
		t.Errorf("view missing HUD or title:\n%s", view)
	}

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("q should return a quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
