package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake in the current terminal.

Controls:
  Arrows/WASD     - Steer
  Enter/Space     - Start
  Space/P/Esc     - Pause and resume
  R/Enter         - Play again (after game over)
  Mouse drag      - Swipe to steer, click to start or pause
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slow start, gentle speed-ups
  normal - Values from the config file
  hard   - Fast start, low speed floor
  fixed  - No speed-ups, stays at the initial interval

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-snake.yaml
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer closeLog()

	fileCfg, source, err := loadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		return fmt.Errorf("loading config: %w", err)
	}
	engineCfg := fileCfg.Engine()
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	minW, minH := tui.MinTerminalSize(engineCfg)
	if runtime.ScreenW < minW || runtime.ScreenH < minH {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: terminal is %dx%d, the board needs %dx%d\n",
			runtime.ScreenW, runtime.ScreenH, minW, minH)
		logger.Warn("terminal too small", "width", runtime.ScreenW, "height", runtime.ScreenH)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(tui.Options{
		Engine:  engineCfg,
		Runtime: runtime,
		Store:   store,
		Logger:  logger,
	}); err != nil {
		logger.Error("game exited with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
