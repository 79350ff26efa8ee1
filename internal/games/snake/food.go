package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// placeFood picks a uniformly random cell not covered by the body.
// It samples x and y independently and rejects occupied cells; once the
// rejections exceed a budget proportional to the grid area it samples from
// the explicit free-cell list instead. It returns false only when the body
// covers the whole grid.
func (e *Engine) placeFood() (core.Point, bool) {
	occupied := make(map[core.Point]struct{}, len(e.body))
	for _, seg := range e.body {
		occupied[seg] = struct{}{}
	}
	if len(occupied) >= e.bounds.Area() {
		return core.Point{X: -1, Y: -1}, false
	}

	for range e.bounds.Area() * 4 {
		p := core.Point{X: e.rng.Intn(e.bounds.W), Y: e.rng.Intn(e.bounds.H)}
		if _, taken := occupied[p]; !taken {
			return p, true
		}
	}

	free := make([]core.Point, 0, e.bounds.Area()-len(occupied))
	for y := range e.bounds.H {
		for x := range e.bounds.W {
			p := core.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free[e.rng.Intn(len(free))], true
}
