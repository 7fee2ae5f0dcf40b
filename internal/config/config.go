// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tuning for the simulation.
type FlappyConfig struct {
	World      World            `yaml:"world"`
	Physics    Physics          `yaml:"physics"`
	Rotation   Rotation         `yaml:"rotation"`
	Player     Player           `yaml:"player"`
	Pipes      Pipes            `yaml:"pipes"`
	Timing     Timing           `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// World defines the playfield size in world units.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the vertical integration parameters. Units per second.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Negative: pulls toward the floor
	JumpSpeed    float64 `yaml:"jump_speed"`     // Speed set by an impulse
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Floor on speed (terminal velocity)
}

// Rotation defines the cosmetic tilt. Degrees and degrees per second.
type Rotation struct {
	UpRate        float64 `yaml:"up_rate"`
	DownRate      float64 `yaml:"down_rate"`
	DownThreshold float64 `yaml:"down_threshold"` // Speed below which the bird noses down
	Min           float64 `yaml:"min"`
	Max           float64 `yaml:"max"`
}

// Player defines the bird's spawn column and size.
type Player struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FloorExtent  float64 `yaml:"floor_extent"`  // Vertical half extent used by the floor check
	HitboxShrink float64 `yaml:"hitbox_shrink"` // Subtracted from half height for the pipe hitbox
}

// Pipes defines the obstacle pool.
type Pipes struct {
	Pairs      int     `yaml:"pairs"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Opening    float64 `yaml:"opening"` // Vertical size of the passable gap
	Gap        float64 `yaml:"gap"`     // Horizontal distance between pairs
	Speed      float64 `yaml:"speed"`
	FirstX     float64 `yaml:"first_x"`
	GapMin     int     `yaml:"gap_min"` // Inclusive range for the gap center
	GapMax     int     `yaml:"gap_max"`
	PassMargin float64 `yaml:"pass_margin"`
}

// Timing defines state machine durations.
type Timing struct {
	SplashSeconds float64 `yaml:"splash_seconds"`
}

// DifficultyConfig defines optional difficulty progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to pipe speed at max difficulty
}

// Validate reports every setting that would break the step algorithm.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.Physics.Gravity < 0, "gravity must be negative, got %v", c.Physics.Gravity)
	check(c.Physics.JumpSpeed > 0, "jump_speed must be positive, got %v", c.Physics.JumpSpeed)
	check(c.Physics.MaxFallSpeed < 0, "max_fall_speed must be negative, got %v", c.Physics.MaxFallSpeed)
	check(c.Rotation.Min <= c.Rotation.Max, "rotation min %v above max %v", c.Rotation.Min, c.Rotation.Max)
	check(c.Player.Height > 0 && c.Player.Width > 0, "player size must be positive")
	check(c.Player.HitboxShrink < c.Player.Height/2, "hitbox_shrink %v leaves no hitbox", c.Player.HitboxShrink)
	check(c.Pipes.Pairs >= 1, "pipes.pairs must be at least 1, got %d", c.Pipes.Pairs)
	check(c.Pipes.Width > 0 && c.Pipes.Height > 0, "pipe size must be positive")
	check(c.Pipes.Gap > 0, "pipes.gap must be positive, got %v", c.Pipes.Gap)
	check(c.Pipes.Speed >= 0, "pipes.speed must not be negative, got %v", c.Pipes.Speed)
	check(c.Pipes.GapMin <= c.Pipes.GapMax, "pipes.gap_min %d above gap_max %d", c.Pipes.GapMin, c.Pipes.GapMax)
	check(c.Timing.SplashSeconds >= 0, "timing.splash_seconds must not be negative")

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Empty means "use the file".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}
