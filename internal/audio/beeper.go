package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Beeper plays tones on the system speaker.
// Until Initialize succeeds every call is a silent no-op.
type Beeper struct {
	mu          sync.Mutex
	volume      float64 // Linear gain in (0, 1]
	initialized bool
	play        func(beep.Streamer)
}

var _ Sequencer = (*Beeper)(nil)

// NewBeeper creates a beeper with linear volume in (0, 1].
func NewBeeper(volume float64) *Beeper {
	return &Beeper{
		volume: volume,
		play:   func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Initialize sets up the audio system
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	b.initialized = true
	return nil
}

// Close stops all queued sounds.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	b.initialized = false
}

// Tone plays one tone.
func (b *Beeper) Tone(freqHz float64, d time.Duration) {
	b.Sequence([]Note{{Freq: freqHz, Duration: d}})
}

// Sequence plays notes back to back.
func (b *Beeper) Sequence(notes []Note) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	if s := notesStreamer(sampleRate, notes, b.volume); s != nil {
		b.play(s)
	}
}

// notesStreamer renders notes into one streamer. Notes the generator cannot
// produce are replaced by silence of the same length.
func notesStreamer(rate beep.SampleRate, notes []Note, volume float64) beep.Streamer {
	if len(notes) == 0 || volume <= 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, 2*len(notes))
	for _, n := range notes {
		samples := rate.N(n.Duration)
		tone, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			parts = append(parts, beep.Silence(samples))
		} else {
			parts = append(parts, beep.Take(samples, tone))
		}
		if n.Pause > 0 {
			parts = append(parts, beep.Silence(rate.N(n.Pause)))
		}
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(min(volume, 1)),
	}
}
