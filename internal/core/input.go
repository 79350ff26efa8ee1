package core

// Action represents a semantic game action, abstracted from physical key presses
// and pointer gestures.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, swipe up
	ActionDown           // S, Down arrow, swipe down
	ActionLeft           // A, Left arrow, swipe left
	ActionRight          // D, Right arrow, swipe right
	ActionStart          // Enter, Space, tap - start a new game
	ActionPause          // P, Esc, Space, tap - toggle pause while running
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action requests a heading change.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
