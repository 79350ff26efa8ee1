package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout constants for the terminal renderer.
const (
	cellWidth = 2 // Terminal columns per grid cell, keeps cells roughly square
	hudHeight = 2 // Status line plus separator
)

// HUD carries host-side values shown next to the board.
type HUD struct {
	HighScore int
	NewHigh   bool // Current score beats the stored high score
}

// MinScreenSize returns the smallest terminal that fits the board and HUD.
func MinScreenSize(cfg Config) (w, h int) {
	return cfg.GridWidth*cellWidth + 2, cfg.GridHeight + 2 + hudHeight
}

// Render draws a snapshot into the screen buffer.
func Render(snap Snapshot, dst *core.Screen, hud HUD) {
	dst.Clear()
	renderHUD(snap, dst, hud)

	boardW := snap.Width*cellWidth + 2
	boardH := snap.Height + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	box := core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, boardH)
	dst.DrawBox(box, core.ColorGray)

	origin := core.Point{X: box.X + 1, Y: box.Y + 1}
	for y := range snap.Height {
		for x := range snap.Width {
			dst.SetColored(origin.X+x*cellWidth, origin.Y+y, '·', core.ColorGray)
		}
	}

	if snap.Phase != PhaseNotStarted {
		drawCell(dst, origin, snap.Food, '●', ' ', core.ColorBrightRed)
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, origin, snap.Body[i], '█', '█', core.ColorBrightGreen)
		} else {
			drawCell(dst, origin, snap.Body[i], '▓', '▓', core.ColorGreen)
		}
	}

	switch {
	case snap.Phase == PhaseNotStarted:
		renderOverlay(dst, "SNAKE", "Press SPACE or ENTER to start")
	case snap.Phase == PhaseGameOver:
		title := "GAME OVER"
		if snap.EndReason == EndBoardFull {
			title = "BOARD CLEARED"
		}
		renderOverlay(dst, title, fmt.Sprintf("Final score: %d  -  ENTER to play again", snap.Score))
	case snap.Paused:
		renderOverlay(dst, "PAUSED", "Press SPACE to resume")
	}
}

func drawCell(dst *core.Screen, origin, p core.Point, left, right rune, c core.Color) {
	x := origin.X + p.X*cellWidth
	y := origin.Y + p.Y
	dst.SetColored(x, y, left, c)
	dst.SetColored(x+1, y, right, c)
}

func renderHUD(snap Snapshot, dst *core.Screen, hud HUD) {
	line := fmt.Sprintf(" SCORE: %04d  HIGH: %04d  SPEED: %d%%", snap.Score, max(hud.HighScore, snap.Score), snap.SpeedPercent)
	dst.DrawText(0, 0, line, core.ColorBrightWhite)
	if hud.NewHigh {
		dst.DrawText(len(line)+2, 0, "NEW HIGH SCORE!", core.ColorYellow)
	}
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
