// Package audio plays the short chime that accompanies a palette switch.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate    = beep.SampleRate(44100)
	chimeDuration = 450 * time.Millisecond
	// Envelope decay rate per second.
	chimeDecay = 9.0
)

// Root notes per palette index, C5 E5 G5 A5.
var chimeNotes = []float64{523.25, 659.25, 783.99, 880.00}

// Chime owns the speaker once it is initialised.
type Chime struct {
	volume float64
}

// NewChime initialises the speaker. It fails when no audio device is
// available; callers should carry on without sound.
func NewChime(volume float64) (*Chime, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{volume: volume}, nil
}

// Play rings the note for the given palette index.
func (c *Chime) Play(paletteIndex int) {
	freq := chimeNotes[paletteIndex%len(chimeNotes)]
	speaker.Play(&effects.Volume{
		Streamer: Tone(SampleRate, freq, chimeDuration),
		Base:     2,
		Volume:   c.volume,
	})
}

// Close drops anything still playing.
func (c *Chime) Close() {
	speaker.Clear()
}

// Tone synthesises a bell-like note: the fundamental plus a quieter octave,
// under an exponential decay. The streamer ends after d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 1 / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) * step
			env := math.Exp(-chimeDecay * t)
			v := env * (0.7*math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
