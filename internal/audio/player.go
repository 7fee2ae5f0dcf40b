// Package audio plays the sound requests emitted by the simulation.
// Cues are synthesised on the fly with beep; nothing is loaded from disk.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappyboi/internal/games/flappy"
)

const (
	// SampleRate used for the speaker and every cue.
	SampleRate = beep.SampleRate(44100)

	// DefaultVolume is the linear master volume.
	DefaultVolume = 0.4
)

// Player accepts fire-and-forget sound requests.
type Player interface {
	Play(s flappy.Sound)
	Close() error
}

// Muted discards every request.
type Muted struct{}

func (Muted) Play(flappy.Sound) {}
func (Muted) Close() error      { return nil }

// BeepPlayer mixes cues into a single speaker stream.
type BeepPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewBeepPlayer initialises the speaker and starts the mixer.
func NewBeepPlayer(volume float64) (*BeepPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	p := &BeepPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the cue for s on the mixer. It never blocks on playback.
func (p *BeepPlayer) Play(s flappy.Sound) {
	cue := Cue(s, SampleRate, p.volume)
	if cue == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *BeepPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

// Open returns a BeepPlayer, or Muted when mute is set or no audio
// device is available.
func Open(mute bool, logger *log.Logger) Player {
	if mute {
		return Muted{}
	}
	p, err := NewBeepPlayer(DefaultVolume)
	if err != nil {
		logger.Warn("audio unavailable, continuing muted", "error", err)
		return Muted{}
	}
	return p
}
