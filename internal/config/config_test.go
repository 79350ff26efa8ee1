package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded defaults drifted from DefaultSnakeConfig():\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
	if !reflect.DeepEqual(cfg.Engine(), snake.DefaultConfig()) {
		t.Errorf("defaults differ from the engine defaults: %+v", cfg.Engine())
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Grid.Width != 20 {
		t.Errorf("Grid.Width = %d, expected 20", cfg.Grid.Width)
	}
}

func TestLoadSnakeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if source != path || cfg.Grid.Width != 12 {
		t.Errorf("got width %d from %q, expected 12 from %q", cfg.Grid.Width, source, path)
	}
}

func TestLoadSnakeCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 30
speed:
  decrement_ms: 5
rules:
  allow_tail_chase: true
`)

	cfg, source, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}

	eng := cfg.Engine()
	if eng.GridWidth != 30 || eng.GridHeight != 20 {
		t.Errorf("grid = %dx%d, expected 30x20", eng.GridWidth, eng.GridHeight)
	}
	if eng.TickIntervalDecrement != 5 || eng.InitialTickInterval != 150 {
		t.Errorf("speed = %+v", cfg.Speed)
	}
	if !eng.AllowTailChase {
		t.Error("allow_tail_chase should be true")
	}
}

func TestLoadSnakeEmptyFileUsesDefaults(t *testing.T) {
	cfg, _, err := LoadSnake(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("empty file should yield defaults, got %+v", cfg)
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"malformed yaml", "grid: [", "failed to parse"},
		{"unknown key", "grid:\n  widht: 10\n", "failed to parse"},
		{"degenerate grid", "grid:\n  width: 1\n", "grid must be at least 2x2"},
		{"zero food score", "scoring:\n  per_food: 0\n", "score per food must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadSnake(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSnakeValidationWrapsEngineError(t *testing.T) {
	_, _, err := LoadSnake(writeConfig(t, "speed:\n  min_interval_ms: 500\n"))
	if !errors.Is(err, snake.ErrInvalidConfig) {
		t.Errorf("error %v should wrap snake.ErrInvalidConfig", err)
	}
}

func TestLoadSnakeMissingFile(t *testing.T) {
	_, _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestMarshalSnakeRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Rules.AllowTailChase = true

	data, err := MarshalSnake(cfg)
	if err != nil {
		t.Fatalf("MarshalSnake() failed: %v", err)
	}
	back, err := parseSnake(data)
	if err != nil {
		t.Fatalf("parseSnake() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, back) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", cfg, back)
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset           DifficultyPreset
		initial, minimum int
	}{
		{"", 150, 50},
		{DifficultyNormal, 150, 50},
		{DifficultyEasy, 200, 80},
		{DifficultyHard, 100, 40},
		{DifficultyFixed, 150, 150},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)

			if cfg.Speed.InitialIntervalMs != tc.initial || cfg.Speed.MinIntervalMs != tc.minimum {
				t.Errorf("speed = %+v, expected %d/%d", cfg.Speed, tc.initial, tc.minimum)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced an invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficulty(name); err != nil {
			t.Errorf("ParseDifficulty(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("ParseDifficulty should reject unknown presets")
	}
}
