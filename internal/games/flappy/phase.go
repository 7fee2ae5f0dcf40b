package flappy

// Phase is the active state of the game state machine.
type Phase int

const (
	PhaseSplash      Phase = iota // Title card, leaves on its own
	PhaseMenu                     // Waiting for confirm
	PhasePlaying                  // Simulation running
	PhaseDeathScreen              // Last run's score shown, waiting for confirm
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "Splash"
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseDeathScreen:
		return "DeathScreen"
	default:
		return "Unknown"
	}
}

// splashTimer is a one-shot countdown.
type splashTimer struct {
	duration float64
	elapsed  float64
	fired    bool
}

func newSplashTimer(seconds float64) splashTimer {
	return splashTimer{duration: seconds}
}

// Tick advances the timer and reports true on the single step that
// crosses the duration.
func (t *splashTimer) Tick(dt float64) bool {
	if t.fired {
		return false
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.fired = true
		return true
	}
	return false
}
