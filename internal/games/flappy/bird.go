package flappy

import (
	"github.com/vovakirdan/flappyboi/internal/config"
	"github.com/vovakirdan/flappyboi/internal/core"
)

// Bird is the player-controlled actor. X never changes after spawn.
type Bird struct {
	Pos   core.Vec2 // Center, world units
	Speed float64   // Vertical, negative = falling
	Angle float64   // Cosmetic tilt in degrees
}

// Reset puts the bird back at its spawn pose.
func (b *Bird) Reset(spawn core.Vec2) {
	b.Pos = spawn
	b.Speed = 0
	b.Angle = 0
}

// Advance integrates one step. An impulse replaces the current speed;
// otherwise gravity accelerates the bird down to the terminal speed.
// Y always ends inside [0, ceiling].
func (b *Bird) Advance(dt float64, jumped bool, phys config.Physics, rot config.Rotation, ceiling float64) {
	if jumped {
		b.Speed = phys.JumpSpeed
	} else {
		b.Speed += phys.Gravity * dt
		if b.Speed < phys.MaxFallSpeed {
			b.Speed = phys.MaxFallSpeed
		}
	}

	b.Pos.Y += b.Speed * dt

	// Stop upward momentum at the ceiling, stacked impulses cannot climb further.
	if b.Pos.Y > ceiling {
		b.Speed = 0
	}
	b.Pos.Y = core.ClampF(b.Pos.Y, 0, ceiling)

	switch {
	case b.Speed > 0:
		b.Angle += rot.UpRate * dt
	case b.Speed < rot.DownThreshold:
		b.Angle -= rot.DownRate * dt
	}
	b.Angle = core.ClampF(b.Angle, rot.Min, rot.Max)
}

// Hitbox returns the bounding circle used against pipes.
func (b Bird) Hitbox(p config.Player) core.Circle {
	return core.NewCircle(b.Pos, p.Height/2-p.HitboxShrink)
}
