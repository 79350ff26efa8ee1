package core

// DefaultSwipeDistance is the minimum drag distance, in terminal cells, that
// counts as a swipe rather than a tap.
const DefaultSwipeDistance = 3

// Gesture is the classification of a pointer press/release pair.
type Gesture struct {
	Tap    bool   // Movement stayed below the threshold on both axes
	Action Action // Direction action for a swipe, ActionNone for a tap
}

// ClassifySwipe turns a drag vector into a tap or a directional swipe.
// A drag shorter than minDistance on both axes is a tap. Otherwise the
// dominant axis decides the direction; ties go to the vertical axis.
func ClassifySwipe(dx, dy, minDistance int) Gesture {
	if minDistance <= 0 {
		minDistance = DefaultSwipeDistance
	}
	if Abs(dx) < minDistance && Abs(dy) < minDistance {
		return Gesture{Tap: true}
	}

	if Abs(dx) > Abs(dy) {
		if dx > 0 {
			return Gesture{Action: ActionRight}
		}
		return Gesture{Action: ActionLeft}
	}
	if dy > 0 {
		return Gesture{Action: ActionDown}
	}
	return Gesture{Action: ActionUp}
}
