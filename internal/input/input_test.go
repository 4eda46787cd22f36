package input

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeDetector(t *testing.T) {
	var d EdgeDetector
	assert.Empty(t, d.Update(Levels{}))

	events := d.Update(Levels{ButtonUp: true, ButtonFire: true})
	assert.Equal(t, []Event{
		{Button: ButtonUp, Pressed: true},
		{Button: ButtonFire, Pressed: true},
	}, events)

	assert.Empty(t, d.Update(Levels{ButtonUp: true, ButtonFire: true}), "held buttons repeat nothing")

	events = d.Update(Levels{ButtonFire: true})
	assert.Equal(t, []Event{{Button: ButtonUp, Pressed: false}}, events)
}

func TestStateApply(t *testing.T) {
	var s State
	s.Apply([]Event{
		{Button: ButtonUp, Pressed: true},
		{Button: ButtonDown, Pressed: true},
		{Button: ButtonFire, Pressed: true},
	})
	assert.True(t, s.MoveUp)
	assert.True(t, s.MoveDown, "both directions may be held")
	assert.True(t, s.Fire)

	s.Apply(nil)
	assert.True(t, s.MoveUp, "movement is a held level")
	assert.False(t, s.Fire, "fire is a per-tick edge")

	s.Apply([]Event{{Button: ButtonUp}, {Button: ButtonFire}})
	assert.False(t, s.MoveUp)
	assert.False(t, s.Fire, "fire release does not fire")

	s.Apply([]Event{{Button: ButtonQuit, Pressed: true}})
	s.Apply([]Event{{Button: ButtonQuit}})
	assert.True(t, s.Quit, "quit latches")
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "up", ButtonUp.String())
	assert.Equal(t, "quit", ButtonQuit.String())
	assert.Equal(t, "unknown", Button(42).String())
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func send(s *Stream, keys string) {
	for i := 0; i < len(keys); i++ {
		s.ch <- keys[i]
	}
}

func TestStreamPressAndRelease(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	s := newStream(clock.now)

	assert.Empty(t, s.Poll())

	send(s, "w ")
	assert.ElementsMatch(t, []Event{
		{Button: ButtonUp, Pressed: true},
		{Button: ButtonFire, Pressed: true},
	}, s.Poll())

	// Auto-repeat keeps the key held.
	clock.t = clock.t.Add(100 * time.Millisecond)
	send(s, "w")
	assert.Empty(t, s.Poll())

	clock.t = clock.t.Add(keyHoldDuration)
	assert.ElementsMatch(t, []Event{
		{Button: ButtonUp, Pressed: false},
		{Button: ButtonFire, Pressed: false},
	}, s.Poll())
}

func TestStreamArrowKeys(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	s := newStream(clock.now)

	send(s, "\x1b[B")
	assert.Equal(t, []Event{{Button: ButtonDown, Pressed: true}}, s.Poll())

	clock.t = clock.t.Add(time.Second)
	send(s, "\x1b[A")
	assert.ElementsMatch(t, []Event{
		{Button: ButtonUp, Pressed: true},
		{Button: ButtonDown, Pressed: false},
	}, s.Poll())
}

func TestStreamQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "Q", "\x03"} {
		s := newStream(time.Now)
		send(s, key)
		events := s.Poll()
		require.Len(t, events, 1, "key %q", key)
		assert.Equal(t, Event{Button: ButtonQuit, Pressed: true}, events[0])
	}
}

func TestStreamArrowSplitAcrossPolls(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	s := newStream(clock.now)
	var state State

	send(s, "\x1b")
	events := s.Poll()
	assert.Empty(t, events, "a lone ESC waits for the rest of the sequence")
	state.Apply(events)

	clock.t = clock.t.Add(10 * time.Millisecond)
	send(s, "[")
	events = s.Poll()
	assert.Empty(t, events)
	state.Apply(events)

	clock.t = clock.t.Add(10 * time.Millisecond)
	send(s, "A")
	events = s.Poll()
	assert.Equal(t, []Event{{Button: ButtonUp, Pressed: true}}, events)
	state.Apply(events)

	assert.True(t, state.MoveUp)
	assert.False(t, state.Quit, "an arrow key never quits")

	clock.t = clock.t.Add(time.Second)
	send(s, "\x1b")
	assert.Equal(t, []Event{{Button: ButtonUp, Pressed: false}}, s.Poll())
	send(s, "[B")
	assert.Equal(t, []Event{{Button: ButtonDown, Pressed: true}}, s.Poll())
}

func TestStreamLoneEscapeQuitsAfterTimeout(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	s := newStream(clock.now)

	send(s, "\x1b")
	assert.Empty(t, s.Poll())

	clock.t = clock.t.Add(escapeTimeout / 2)
	assert.Empty(t, s.Poll())

	clock.t = clock.t.Add(escapeTimeout)
	assert.Equal(t, []Event{{Button: ButtonQuit, Pressed: true}}, s.Poll())
}

func TestStreamEscapeBeforeKeyQuits(t *testing.T) {
	s := newStream(time.Now)
	send(s, "\x1bw")
	assert.ElementsMatch(t, []Event{
		{Button: ButtonQuit, Pressed: true},
		{Button: ButtonUp, Pressed: true},
	}, s.Poll())
}

func TestStreamCloseReleasesReader(t *testing.T) {
	s := StartStream(strings.NewReader(strings.Repeat("w", 4096)))
	require.NoError(t, s.Close())
	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("reader still blocked after Close")
	}
}

func TestStartStreamQuitsAtEOF(t *testing.T) {
	s := StartStream(strings.NewReader("s"))

	var state State
	require.Eventually(t, func() bool {
		state.Apply(s.Poll())
		return state.Quit
	}, time.Second, time.Millisecond)
	assert.True(t, state.MoveDown)
}

func TestSourceFunc(t *testing.T) {
	src := SourceFunc(func() []Event { return []Event{{Button: ButtonFire, Pressed: true}} })
	var s State
	s.Apply(src.Poll())
	assert.True(t, s.Fire)
}
