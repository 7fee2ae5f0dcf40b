package flappy

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappyboi/internal/core"
)

// CheckInvariants verifies the structural rules the simulation relies on
// and returns every violation joined into one error.
func (g *Game) CheckInvariants() error {
	var errs []error

	pipes := g.pipes.Pipes()
	want := 0
	if g.phase == PhasePlaying {
		want = 2 * g.cfg.Pipes.Pairs
	}
	if len(pipes) != want {
		errs = append(errs, fmt.Errorf("pipe count %d in %s, expected %d", len(pipes), g.phase, want))
	}
	for i := 0; i+1 < len(pipes); i += 2 {
		bottom, top := pipes[i], pipes[i+1]
		if bottom.Flipped == top.Flipped {
			errs = append(errs, fmt.Errorf("pair %d: expected exactly one flipped pipe", i/2))
		}
		if bottom.Pos.X != top.Pos.X {
			errs = append(errs, fmt.Errorf("pair %d: halves at x=%v and x=%v", i/2, bottom.Pos.X, top.Pos.X))
		}
	}

	b := g.bird
	if !core.Finite(b.Pos.X) || !core.Finite(b.Pos.Y) || !core.Finite(b.Speed) || !core.Finite(b.Angle) {
		errs = append(errs, fmt.Errorf("bird has non-finite state %+v", b))
	}
	if b.Pos.Y < 0 || b.Pos.Y > g.cfg.World.Height {
		errs = append(errs, fmt.Errorf("bird y=%v outside [0, %v]", b.Pos.Y, g.cfg.World.Height))
	}
	if b.Angle < g.cfg.Rotation.Min || b.Angle > g.cfg.Rotation.Max {
		errs = append(errs, fmt.Errorf("bird angle %v outside [%v, %v]", b.Angle, g.cfg.Rotation.Min, g.cfg.Rotation.Max))
	}

	if g.board.Score < 0 || g.board.Score > g.board.Highscore {
		errs = append(errs, fmt.Errorf("score %d exceeds highscore %d", g.board.Score, g.board.Highscore))
	}

	return errors.Join(errs...)
}
