// Package flappy implements the Flappy Bird simulation core.
// The player keeps a bird airborne through gaps in an endless stream of
// pipes. Everything here is deterministic given the step durations, the
// input frames and the random source; rendering targets core.Screen and
// sound is only requested, never played.
package flappy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappyboi/internal/config"
	"github.com/vovakirdan/flappyboi/internal/core"
)

// HighscoreStore persists the best score between processes.
type HighscoreStore interface {
	LoadHighscore() (int, error)
	SaveHighscore(score int) error
}

// RunRecorder is optionally implemented by stores that keep run history.
type RunRecorder interface {
	RecordRun(score int) error
}

// Option configures a Game.
type Option func(*Game)

// WithStore sets the highscore store. A nil store keeps scores in memory.
func WithStore(s HighscoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithRand sets the random source used for gap draws.
func WithRand(r Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = NewRand(seed) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithDebug enables invariant checks after every step.
func WithDebug(on bool) Option {
	return func(g *Game) { g.debug = on }
}

// Game is the simulation context: it owns every entity and runs the
// systems in a fixed order each step.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        Rand
	store      HighscoreStore
	logger     *log.Logger
	debug      bool

	phase  Phase
	splash splashTimer
	bird   Bird
	pipes  *PipePool
	board  Scoreboard
	steps  int // Steps since process start
}

// New creates a game in the Splash phase and loads the stored highscore.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRand(1)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.pipes = NewPipePool(cfg.Pipes, g.rng)
	g.bird.Reset(g.spawnPoint())
	g.splash = newSplashTimer(cfg.Timing.SplashSeconds)
	g.phase = PhaseSplash
	g.board.Highscore = g.loadHighscore()
	g.board.persisted = g.board.Highscore
	return g
}

func (g *Game) spawnPoint() core.Vec2 {
	return core.Vec2{X: g.cfg.Player.X, Y: g.cfg.World.Height / 2}
}

func (g *Game) loadHighscore() int {
	if g.store == nil {
		return 0
	}
	hs, err := g.store.LoadHighscore()
	if err != nil {
		g.logger.Warn("could not load highscore, starting from 0", "error", err)
		return 0
	}
	if hs < 0 {
		g.logger.Warn("ignoring negative stored highscore", "value", hs)
		return 0
	}
	return hs
}

// StepQueue drains the queue once and advances the simulation.
// Actions pushed after the drain are left for the next step.
func (g *Game) StepQueue(dt float64, q *core.EventQueue) StepResult {
	return g.Step(dt, core.NewInputFrame(q.DrainAll()...))
}

// Step advances the simulation by dt seconds.
// Negative or non-finite durations are treated as zero.
func (g *Game) Step(dt float64, in core.InputFrame) StepResult {
	if dt < 0 || !core.Finite(dt) {
		dt = 0
	}
	g.steps++

	prev := g.phase
	var res StepResult

	switch g.phase {
	case PhaseSplash:
		// Input is drained and discarded while the title card shows.
		if g.splash.Tick(dt) {
			g.enter(PhaseMenu)
		}
	case PhaseMenu, PhaseDeathScreen:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.enter(PhasePlaying)
		}
	case PhasePlaying:
		g.play(dt, in.Has(core.ActionJump), &res)
	}

	if g.debug {
		if err := g.CheckInvariants(); err != nil {
			g.logger.Error("simulation invariant violated", "step", g.steps, "phase", g.phase, "error", err)
		}
	}

	res.State = g.State()
	res.PhaseChanged = g.phase != prev
	return res
}

// play runs one Playing step: pipes, bird, scoring, then collisions.
func (g *Game) play(dt float64, jumped bool, res *StepResult) {
	speed := g.difficulty.Speed(g.cfg.Pipes.Speed, g.board.Score)
	g.pipes.Advance(dt, speed)

	if jumped {
		res.Sounds = append(res.Sounds, SoundJump)
	}
	g.bird.Advance(dt, jumped, g.cfg.Physics, g.cfg.Rotation, g.cfg.World.Height)

	points := awardPassing(g.pipes.Pipes(), g.bird.Pos.X, g.cfg.Pipes.PassMargin, &g.board)
	for i := 0; i < points; i++ {
		res.Sounds = append(res.Sounds, SoundScore)
	}

	if cause := g.deathCause(); cause != CauseNone {
		res.Death = cause
		res.Sounds = append(res.Sounds, SoundDeath)
		g.logger.Debug("run ended", "cause", cause, "score", g.board.Score)
		g.bird.Reset(g.spawnPoint())
		g.enter(PhaseDeathScreen)
	}
}

// deathCause checks the floor first; the first pipe hit ends the run.
func (g *Game) deathCause() DeathCause {
	if touchesFloor(g.bird, g.cfg.Player.FloorExtent) {
		return CauseFloor
	}
	if _, hit := firstPipeHit(g.bird.Hitbox(g.cfg.Player), g.pipes.Pipes(), g.cfg.Pipes); hit {
		return CausePipe
	}
	return CauseNone
}

// enter performs the exit actions of the current phase and the entry
// actions of next. Only Playing creates and tears down the world.
func (g *Game) enter(next Phase) {
	if g.phase == PhasePlaying {
		g.pipes.Clear()
		g.recordRun()
	}

	g.logger.Debug("phase changed", "from", g.phase, "to", next)
	g.phase = next

	switch next {
	case PhasePlaying:
		g.board.resetRun()
		g.bird.Reset(g.spawnPoint())
		g.pipes.Spawn()
	case PhaseDeathScreen:
		g.persistHighscore()
	}
}

func (g *Game) persistHighscore() {
	if g.store == nil || !g.board.dirty() {
		return
	}
	if err := g.store.SaveHighscore(g.board.Highscore); err != nil {
		// Stays dirty, the next death screen retries.
		g.logger.Warn("could not save highscore", "highscore", g.board.Highscore, "error", err)
		return
	}
	g.board.persisted = g.board.Highscore
}

func (g *Game) recordRun() {
	rec, ok := g.store.(RunRecorder)
	if !ok {
		return
	}
	if err := rec.RecordRun(g.board.Score); err != nil {
		g.logger.Warn("could not record run", "score", g.board.Score, "error", err)
	}
}

// State returns the current phase and scores.
func (g *Game) State() State {
	return State{
		Phase:     g.phase,
		Score:     g.board.Score,
		Highscore: g.board.Highscore,
	}
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// Pipes returns a copy of the pipe pool contents. Empty outside Playing.
func (g *Game) Pipes() []Pipe {
	out := make([]Pipe, len(g.pipes.Pipes()))
	copy(out, g.pipes.Pipes())
	return out
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Steps returns the number of steps taken since creation.
func (g *Game) Steps() int {
	return g.steps
}
