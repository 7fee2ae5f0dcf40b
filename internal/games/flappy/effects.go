package flappy

// Sound is a fire-and-forget playback request for the audio layer.
type Sound int

const (
	SoundJump Sound = iota + 1
	SoundDeath
	SoundScore
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "Jump"
	case SoundDeath:
		return "Death"
	case SoundScore:
		return "Score"
	default:
		return "Unknown"
	}
}

// DeathCause says why a run ended.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseFloor
	CausePipe
)

// String returns a human-readable name for the cause.
func (c DeathCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseFloor:
		return "floor"
	case CausePipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// State is the externally visible summary of the game.
type State struct {
	Phase     Phase
	Score     int
	Highscore int
}

// StepResult is returned by Game.Step after each simulation step.
type StepResult struct {
	State
	PhaseChanged bool       // Phase differs from the one before this step
	Sounds       []Sound    // Requests emitted this step, in order
	Death        DeathCause // Set on the step a run ends
}
