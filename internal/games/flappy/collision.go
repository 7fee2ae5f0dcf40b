package flappy

import (
	"github.com/vovakirdan/flappyboi/internal/config"
	"github.com/vovakirdan/flappyboi/internal/core"
)

// touchesFloor reports whether the bird's lower edge reached the floor.
// The ceiling is never fatal; Bird.Advance clamps it instead.
func touchesFloor(b Bird, halfExtent float64) bool {
	return b.Pos.Y-halfExtent <= 0
}

// firstPipeHit returns the index of the first pipe the hitbox overlaps.
func firstPipeHit(hitbox core.Circle, pipes []Pipe, cfg config.Pipes) (int, bool) {
	for i, p := range pipes {
		if hitbox.Intersects(p.Bounds(cfg)) {
			return i, true
		}
	}
	return -1, false
}
