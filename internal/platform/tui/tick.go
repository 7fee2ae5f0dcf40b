// Package tui runs the game inside a Bubble Tea program.
// It maps keys to actions, steps the simulation on a fixed clock and
// turns the screen buffer into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the tick rate used when none is configured.
const DefaultFPS = 60

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// tickCmd returns a command that sends a tick after one frame.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
