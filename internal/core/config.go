package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from flags and the terminal size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation steps per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Check simulation invariants after every step
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// StepSeconds returns the fixed simulation time step for the tick rate.
func (c RuntimeConfig) StepSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
