package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toneRecorder struct {
	tones []Note
}

func (r *toneRecorder) Tone(freq float64, d time.Duration) {
	r.tones = append(r.tones, Note{Freq: freq, Duration: d})
}

type sequenceRecorder struct {
	toneRecorder
	sequences [][]Note
}

func (r *sequenceRecorder) Sequence(notes []Note) {
	r.sequences = append(r.sequences, notes)
}

func countSamples(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestPlayUsesSequencer(t *testing.T) {
	rec := &sequenceRecorder{}
	Play(rec, HitNotes)
	require.Len(t, rec.sequences, 1)
	assert.Equal(t, HitNotes, rec.sequences[0])
	assert.Empty(t, rec.tones)
}

func TestPlayFallsBackToFirstTone(t *testing.T) {
	rec := &toneRecorder{}
	Play(rec, HitNotes)
	assert.Equal(t, []Note{{Freq: 1200, Duration: 30 * time.Millisecond}}, rec.tones)

	Play(rec, nil)
	Play(nil, FireNotes)
	assert.Len(t, rec.tones, 1)
}

func TestNotesStreamerLength(t *testing.T) {
	const rate = beep.SampleRate(1000)
	s := notesStreamer(rate, []Note{
		{Freq: 100, Duration: 30 * time.Millisecond, Pause: 10 * time.Millisecond},
		{Freq: 200, Duration: 20 * time.Millisecond},
	}, 0.5)
	require.NotNil(t, s)
	assert.Equal(t, 60, countSamples(s))
}

func TestNotesStreamerUnplayableToneIsSilent(t *testing.T) {
	const rate = beep.SampleRate(1000)
	s := notesStreamer(rate, []Note{{Freq: 5000, Duration: 10 * time.Millisecond}}, 1)
	require.NotNil(t, s)

	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	assert.Equal(t, 10, n)
	for _, smp := range buf[:n] {
		assert.Equal(t, [2]float64{0, 0}, smp)
	}
}

func TestNotesStreamerMuted(t *testing.T) {
	assert.Nil(t, notesStreamer(sampleRate, FireNotes, 0))
	assert.Nil(t, notesStreamer(sampleRate, nil, 1))
}

func TestBeeperSilentUntilInitialized(t *testing.T) {
	var played int
	b := NewBeeper(0.5)
	b.play = func(beep.Streamer) { played++ }

	b.Tone(1400, 20*time.Millisecond)
	Play(b, HitNotes)
	assert.Zero(t, played)

	b.initialized = true
	b.Tone(1400, 20*time.Millisecond)
	Play(b, HitNotes)
	assert.Equal(t, 2, played)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Play(Nop{}, HitNotes)
		Nop{}.Tone(440, time.Second)
	})
}
