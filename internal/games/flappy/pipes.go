package flappy

import (
	"github.com/vovakirdan/flappyboi/internal/config"
	"github.com/vovakirdan/flappyboi/internal/core"
)

// Pipe is one half of an obstacle pair. Pos is the anchor on the gap edge:
// a flipped (top) pipe rises from its anchor, an unflipped (bottom) pipe
// hangs below it down past the floor.
type Pipe struct {
	Pos     core.Vec2
	Flipped bool
	Passed  bool
}

// Bounds returns the collision box for the pipe.
func (p Pipe) Bounds(cfg config.Pipes) core.Aabb {
	center := p.Pos
	if p.Flipped {
		center.Y += cfg.Height / 2
	} else {
		center.Y -= cfg.Height / 2
	}
	return core.NewAabb(center, core.Vec2{X: cfg.Width / 2, Y: cfg.Height / 2})
}

// gapAnchors returns the anchor heights of the top and bottom pipe for a gap center.
func gapAnchors(center, opening float64) (top, bottom float64) {
	return center + opening/2, center - opening/2
}

// PipePool owns a fixed set of pipe pairs. Pipes scrolling off the left
// edge are moved behind the rightmost one instead of being reallocated.
// Slots 2i and 2i+1 always hold the bottom and top half of pair i.
type PipePool struct {
	pipes []Pipe
	cfg   config.Pipes
	rng   Rand
}

// NewPipePool creates an empty pool.
func NewPipePool(cfg config.Pipes, rng Rand) *PipePool {
	return &PipePool{
		pipes: make([]Pipe, 0, cfg.Pairs*2),
		cfg:   cfg,
		rng:   rng,
	}
}

// Spawn lays out every pair, evenly spaced from FirstX, each with its own gap.
func (pp *PipePool) Spawn() {
	pp.pipes = pp.pipes[:0]
	for i := 0; i < pp.cfg.Pairs; i++ {
		x := pp.cfg.FirstX + float64(i)*pp.cfg.Gap
		top, bottom := gapAnchors(pp.drawGapCenter(), pp.cfg.Opening)
		pp.pipes = append(pp.pipes,
			Pipe{Pos: core.Vec2{X: x, Y: bottom}},
			Pipe{Pos: core.Vec2{X: x, Y: top}, Flipped: true},
		)
	}
}

// Clear removes every pipe.
func (pp *PipePool) Clear() {
	pp.pipes = pp.pipes[:0]
}

// Pipes returns the current pipes. The slice is owned by the pool.
func (pp *PipePool) Pipes() []Pipe {
	return pp.pipes
}

// RightmostX returns the largest pipe x, or 0 for an empty pool.
func (pp *PipePool) RightmostX() float64 {
	if len(pp.pipes) == 0 {
		return 0
	}
	best := pp.pipes[0].Pos.X
	for _, p := range pp.pipes[1:] {
		if p.Pos.X > best {
			best = p.Pos.X
		}
	}
	return best
}

// Advance scrolls every pipe left by speed*dt and recycles the ones past
// the left edge. One gap center is drawn per call and shared by every
// pipe recycled in it, so both halves of a pair stay aligned.
// The recycle target is measured from the rightmost pipe after this
// step's scroll, keeping consecutive pairs exactly Gap apart.
// Returns the number of pipes recycled.
func (pp *PipePool) Advance(dt, speed float64) int {
	if len(pp.pipes) == 0 {
		return 0
	}

	shift := speed * dt
	target := pp.RightmostX() - shift + pp.cfg.Gap
	top, bottom := gapAnchors(pp.drawGapCenter(), pp.cfg.Opening)
	edge := -pp.cfg.Width / 2

	recycled := 0
	for i := range pp.pipes {
		p := &pp.pipes[i]
		p.Pos.X -= shift
		if p.Pos.X >= edge {
			continue
		}
		p.Pos.X = target
		if p.Flipped {
			p.Pos.Y = top
		} else {
			p.Pos.Y = bottom
		}
		p.Passed = false
		recycled++
	}
	return recycled
}

func (pp *PipePool) drawGapCenter() float64 {
	return float64(drawInclusive(pp.rng, pp.cfg.GapMin, pp.cfg.GapMax))
}
