package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{Width: 400, Height: 400},
		Physics: Physics{
			Gravity:      -600,
			JumpSpeed:    300,
			MaxFallSpeed: -800,
		},
		Rotation: Rotation{
			UpRate:        600,
			DownRate:      480,
			DownThreshold: -110,
			Min:           -90,
			Max:           30,
		},
		Player: Player{
			X:            200,
			Width:        34,
			Height:       24,
			FloorExtent:  0.5,
			HitboxShrink: 1,
		},
		Pipes: Pipes{
			Pairs:      5,
			Width:      52,
			Height:     320,
			Opening:    120,
			Gap:        250,
			Speed:      150,
			FirstX:     400,
			GapMin:     70,
			GapMax:     300,
			PassMargin: 30,
		},
		Timing: Timing{SplashSeconds: 1.5},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
