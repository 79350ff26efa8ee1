package core

import "testing"

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionStart, ActionPause, ActionRestart, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		tap    bool
		action Action
	}{
		{"no movement is a tap", 0, 0, true, ActionNone},
		{"short drag is a tap", 2, -2, true, ActionNone},
		{"right swipe", 5, 1, false, ActionRight},
		{"left swipe", -5, 2, false, ActionLeft},
		{"down swipe", 1, 4, false, ActionDown},
		{"up swipe", 0, -3, false, ActionUp},
		{"diagonal tie goes vertical", 4, 4, false, ActionDown},
		{"one axis over threshold", 3, 0, false, ActionRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := ClassifySwipe(tc.dx, tc.dy, 3)
			if g.Tap != tc.tap || g.Action != tc.action {
				t.Errorf("ClassifySwipe(%d, %d) = %+v, expected tap=%v action=%v", tc.dx, tc.dy, g, tc.tap, tc.action)
			}
		})
	}
}

func TestClassifySwipeDefaultThreshold(t *testing.T) {
	if g := ClassifySwipe(DefaultSwipeDistance-1, 0, 0); !g.Tap {
		t.Error("non-positive threshold should fall back to the default")
	}
}
