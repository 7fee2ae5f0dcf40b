package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappyboi/internal/config"
	"github.com/vovakirdan/flappyboi/internal/core"
)

const dt60 = 1.0 / 60

func newTestBird(cfg config.FlappyConfig) Bird {
	var b Bird
	b.Reset(core.Vec2{X: cfg.Player.X, Y: cfg.World.Height / 2})
	return b
}

func TestBirdStaysInBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := newTestBird(cfg)

	for i := 0; i < 600; i++ {
		jump := i%3 == 0 || i > 400
		b.Advance(dt60, jump, cfg.Physics, cfg.Rotation, cfg.World.Height)
		if b.Pos.Y < 0 || b.Pos.Y > cfg.World.Height {
			t.Fatalf("step %d: y=%v escaped [0, %v]", i, b.Pos.Y, cfg.World.Height)
		}
		if b.Angle < cfg.Rotation.Min || b.Angle > cfg.Rotation.Max {
			t.Fatalf("step %d: angle=%v escaped clamp", i, b.Angle)
		}
	}
}

func TestBirdTerminalVelocity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.World.Height = 1e6
	b := newTestBird(cfg)

	for i := 0; i < 300; i++ {
		b.Advance(dt60, false, cfg.Physics, cfg.Rotation, cfg.World.Height)
		if b.Speed < cfg.Physics.MaxFallSpeed {
			t.Fatalf("step %d: speed %v below terminal %v", i, b.Speed, cfg.Physics.MaxFallSpeed)
		}
	}
	if b.Speed != cfg.Physics.MaxFallSpeed {
		t.Errorf("speed after a long fall = %v, expected %v", b.Speed, cfg.Physics.MaxFallSpeed)
	}
}

func TestBirdImpulseReplacesSpeed(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	for _, start := range []float64{-800, -10, 0, 150} {
		b := newTestBird(cfg)
		b.Speed = start
		b.Advance(dt60, true, cfg.Physics, cfg.Rotation, cfg.World.Height)
		if b.Speed != cfg.Physics.JumpSpeed {
			t.Errorf("speed after impulse from %v = %v, expected %v", start, b.Speed, cfg.Physics.JumpSpeed)
		}
		want := cfg.World.Height/2 + cfg.Physics.JumpSpeed*dt60
		if math.Abs(b.Pos.Y-want) > 1e-9 {
			t.Errorf("y after impulse = %v, expected %v", b.Pos.Y, want)
		}
	}
}

func TestBirdCeilingStopsClimb(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := newTestBird(cfg)
	b.Pos.Y = cfg.World.Height - 1

	b.Advance(dt60, true, cfg.Physics, cfg.Rotation, cfg.World.Height)

	if b.Pos.Y != cfg.World.Height {
		t.Errorf("y = %v, expected clamped to %v", b.Pos.Y, cfg.World.Height)
	}
	if b.Speed != 0 {
		t.Errorf("speed at ceiling = %v, expected 0", b.Speed)
	}
}

func TestBirdTilt(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	t.Run("rising tilts up", func(t *testing.T) {
		b := newTestBird(cfg)
		b.Advance(dt60, true, cfg.Physics, cfg.Rotation, cfg.World.Height)
		if want := cfg.Rotation.UpRate * dt60; math.Abs(b.Angle-want) > 1e-9 {
			t.Errorf("angle = %v, expected %v", b.Angle, want)
		}
	})

	t.Run("slow fall keeps angle", func(t *testing.T) {
		b := newTestBird(cfg)
		b.Angle = 12
		b.Speed = -50
		b.Advance(dt60, false, cfg.Physics, cfg.Rotation, cfg.World.Height)
		if b.Angle != 12 {
			t.Errorf("angle = %v, expected unchanged 12", b.Angle)
		}
	})

	t.Run("fast fall tilts down to clamp", func(t *testing.T) {
		b := newTestBird(cfg)
		b.Speed = cfg.Physics.MaxFallSpeed
		for i := 0; i < 60; i++ {
			b.Advance(dt60, false, cfg.Physics, cfg.Rotation, 1e6)
		}
		if b.Angle != cfg.Rotation.Min {
			t.Errorf("angle = %v, expected %v", b.Angle, cfg.Rotation.Min)
		}
	})
}

func TestBirdHitbox(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := newTestBird(cfg)

	hb := b.Hitbox(cfg.Player)
	if hb.Center != b.Pos {
		t.Errorf("hitbox center = %+v, expected %+v", hb.Center, b.Pos)
	}
	if want := cfg.Player.Height/2 - 1; hb.Radius != want {
		t.Errorf("hitbox radius = %v, expected %v", hb.Radius, want)
	}
}

func TestTouchesFloor(t *testing.T) {
	tests := []struct {
		y, ext float64
		want   bool
	}{
		{1, 0, false},
		{0, 0, true},
		{0.5, 0.5, true},
		{0.6, 0.5, false},
	}
	for _, tc := range tests {
		b := Bird{Pos: core.Vec2{X: 200, Y: tc.y}}
		if got := touchesFloor(b, tc.ext); got != tc.want {
			t.Errorf("touchesFloor(y=%v, ext=%v) = %v, expected %v", tc.y, tc.ext, got, tc.want)
		}
	}
}
