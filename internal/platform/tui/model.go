package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappyboi/internal/audio"
	"github.com/vovakirdan/flappyboi/internal/core"
	"github.com/vovakirdan/flappyboi/internal/games/flappy"
)

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig // Tick rate and initial terminal size
	Player  audio.Player       // Nil plays nothing
	Logger  *log.Logger
}

// Model is the Bubble Tea model driving one game.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	queue    *core.EventQueue
	player   audio.Player
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	fps      int
	dt       float64
	dropped  int // Actions rejected by a full queue
	quitting bool
}

// NewModel creates a model around an existing game.
func NewModel(game *flappy.Game, opts Options) Model {
	rc := opts.Runtime
	if rc.TickRate <= 0 {
		rc.TickRate = DefaultFPS
	}
	if opts.Player == nil {
		opts.Player = audio.Muted{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(rc.ScreenW, playRows(rc.ScreenH)),
		queue:  core.NewEventQueue(core.DefaultQueueSize),
		player: opts.Player,
		logger: opts.Logger,
		keys:   DefaultKeyMap(),
		help:   h,
		fps:    rc.TickRate,
		dt:     rc.StepSeconds(),
	}
}

// playRows leaves the last terminal row for the help line.
func playRows(height int) int {
	return max(height-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World units do not depend on the terminal, only the view changes.
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	if !m.queue.Push(action) {
		m.dropped++
		m.logger.Debug("input queue full, dropping action", "action", action)
	}
	return m, nil
}

// handleTick drains the queue once, steps the game and forwards sounds.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	res := m.game.StepQueue(m.dt, m.queue)
	for _, s := range res.Sounds {
		m.player.Play(s)
	}
	if res.PhaseChanged {
		m.logger.Debug("phase", "phase", res.Phase, "score", res.Score, "highscore", res.Highscore)
	}
	return m, tickCmd(m.fps)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the simulation driven by the model.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *flappy.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
