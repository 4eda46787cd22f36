package input

import (
	"bufio"
	"io"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last byte.
// Terminals only report presses, so holding a key is seen as auto-repeat.
const keyHoldDuration = 150 * time.Millisecond

// escapeTimeout is how long an ESC or ESC [ prefix waits for the rest of an
// escape sequence. An ESC left alone that long is the Escape key.
const escapeTimeout = 100 * time.Millisecond

const keyEscape = '\x1b'

// keyState tracks the last time each button's key was seen.
type keyState [NumButtons]time.Time

// Stream reads raw terminal bytes and reports button events.
// Implements Source.
type Stream struct {
	ch      chan byte
	done    chan struct{} // Closed by Close; stops the reader
	stopped chan struct{} // Closed when the reader goroutine returns
	once    sync.Once

	state  keyState
	edges  EdgeDetector
	now    func() time.Time
	closed bool

	pending  []byte    // Unfinished escape sequence from the last poll
	escapeAt time.Time // When the pending sequence started
}

var _ Source = (*Stream)(nil)

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine ends when r returns an error, after which the stream reports
// Quit. After Close it ends as soon as the next byte arrives.
func StartStream(r io.Reader) *Stream {
	s := newStream(time.Now)
	br := bufio.NewReader(r)
	go func() {
		defer close(s.stopped)
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func newStream(now func() time.Time) *Stream {
	return &Stream{
		ch:      make(chan byte, 128),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		now:     now,
	}
}

// Close stops delivering bytes. Input that arrives afterwards is discarded
// so the reader never blocks on a stream nobody polls.
func (s *Stream) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

// Poll drains all available bytes from the stream (non-blocking) and returns
// the press and release events since the previous poll.
func (s *Stream) Poll() []Event {
	now := s.now()
	buf := append(s.pending, s.drain()...)
	s.pending = nil

	s.parse(buf, now)

	var levels Levels
	for b := range NumButtons {
		levels[b] = !s.state[b].IsZero() && now.Sub(s.state[b]) < keyHoldDuration
	}
	if s.closed {
		levels[ButtonQuit] = true
	}
	return s.edges.Update(levels)
}

// parse records the keys in buf as seen at now. A trailing ESC or ESC [ is
// kept for the next poll until escapeTimeout passes, since the rest of an
// arrow key sequence may not have been read yet.
func (s *Stream) parse(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != keyEscape {
			if btn, ok := keyButton(b); ok {
				s.state[btn] = now
			}
			continue
		}

		rest := buf[i+1:]
		if len(rest) == 0 || (len(rest) == 1 && rest[0] == '[') {
			if s.escapeAt.IsZero() {
				s.escapeAt = now
			}
			if !s.closed && now.Sub(s.escapeAt) < escapeTimeout {
				s.pending = append(s.pending, buf[i:]...)
				return
			}
			// Overdue: a lone ESC is the Escape key, a lone ESC [ is dropped.
			s.escapeAt = time.Time{}
			if len(rest) == 0 {
				s.state[ButtonQuit] = now
			}
			return
		}
		s.escapeAt = time.Time{}

		if rest[0] != '[' {
			// Escape pressed right before another key.
			s.state[ButtonQuit] = now
			continue
		}

		// CSI sequence: ESC [ <code>
		switch rest[1] {
		case 'A': // Up arrow
			s.state[ButtonUp] = now
		case 'B': // Down arrow
			s.state[ButtonDown] = now
		}
		i += 2
	}
}

func (s *Stream) drain() []byte {
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// keyButton maps a single key byte to a button.
func keyButton(b byte) (Button, bool) {
	switch b {
	case 'w', 'W', 'i', 'I':
		return ButtonUp, true
	case 's', 'S', 'k', 'K':
		return ButtonDown, true
	case ' ', '\n', '\r':
		return ButtonFire, true
	case 'q', 'Q', '\x03': // Ctrl-C
		return ButtonQuit, true
	}
	return 0, false
}
