package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show snake high scores",
	Long: `Display the high score table.

In an interactive terminal the scores open in a scrollable table.
Use --plain (or pipe the output) for a text listing.

Examples:
  snake scores
  snake scores --plain --limit 5
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores in the text listing")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a text listing instead of the table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded snake scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearScores(snake.GameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			return fmt.Errorf("showing scores: %w", err)
		}
		return nil
	}

	if err := printScores(out, store, flagScoresLimit); err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	return nil
}

func printScores(out io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(snake.GameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Snake")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Session", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-------", "----")

	for i, entry := range scores {
		session := entry.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, session, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(snake.GameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
