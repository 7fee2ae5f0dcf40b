package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappyboi/internal/games/flappy"
)

// Cue synthesises the streamer for a sound request, nil for unknown sounds.
func Cue(s flappy.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case flappy.SoundJump:
		// Short upward chirp.
		st = beep.Seq(
			note(520, 30*time.Millisecond, WaveSquare, rate),
			note(780, 40*time.Millisecond, WaveSquare, rate),
		)
	case flappy.SoundScore:
		// Two-note chime, B5 then E6.
		st = beep.Seq(
			note(987.77, 60*time.Millisecond, WaveSine, rate),
			note(1318.51, 120*time.Millisecond, WaveSine, rate),
		)
	case flappy.SoundDeath:
		st = beep.Mix(
			newVolume(note(110, 300*time.Millisecond, WaveSaw, rate), 0.7),
			newVolume(note(0, 150*time.Millisecond, WaveNoise, rate), 0.3),
		)
	default:
		return nil
	}
	return newVolume(st, volume)
}
