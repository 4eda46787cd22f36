// Package audio plays the game's tone effects. Sounds are best-effort:
// a sink that cannot play simply stays silent.
package audio

import "time"

// Sink plays a single tone without blocking the caller.
type Sink interface {
	Tone(freqHz float64, d time.Duration)
}

// Sequencer is a Sink that can also queue several notes back to back.
type Sequencer interface {
	Sink
	Sequence(notes []Note)
}

// Note is one tone of an effect followed by an optional gap.
type Note struct {
	Freq     float64 // Hz
	Duration time.Duration
	Pause    time.Duration // Silence after the tone
}

// FireNotes is the shot blip.
var FireNotes = []Note{
	{Freq: 1400, Duration: 20 * time.Millisecond},
}

// HitNotes is the asteroid hit: a sharp attack, a sustain, a punch and a
// decaying slide down.
var HitNotes = []Note{
	{Freq: 1200, Duration: 30 * time.Millisecond, Pause: 10 * time.Millisecond},
	{Freq: 800, Duration: 60 * time.Millisecond, Pause: 20 * time.Millisecond},
	{Freq: 1000, Duration: 40 * time.Millisecond, Pause: 15 * time.Millisecond},
	{Freq: 600, Duration: 50 * time.Millisecond, Pause: 25 * time.Millisecond},
	{Freq: 400, Duration: 60 * time.Millisecond, Pause: 30 * time.Millisecond},
	{Freq: 200, Duration: 40 * time.Millisecond},
}

// Play plays notes on sink. Sinks without sequencing only get the first note,
// since their tones would overlap.
func Play(sink Sink, notes []Note) {
	if sink == nil || len(notes) == 0 {
		return
	}
	if seq, ok := sink.(Sequencer); ok {
		seq.Sequence(notes)
		return
	}
	sink.Tone(notes[0].Freq, notes[0].Duration)
}

// Nop is a silent sink.
type Nop struct{}

// Tone does nothing.
func (Nop) Tone(float64, time.Duration) {}

// Sequence does nothing.
func (Nop) Sequence([]Note) {}
