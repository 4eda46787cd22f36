// Package input turns device input into per-tick button events and state.
package input

// Button is a logical game button.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonFire
	ButtonQuit

	NumButtons = iota
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonFire:
		return "fire"
	case ButtonQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a press or release of a button.
type Event struct {
	Button  Button
	Pressed bool // false means released
}

// Source delivers the button events that happened since the last poll.
// Poll must not block.
type Source interface {
	Poll() []Event
}

// SourceFunc adapts a function to Source.
type SourceFunc func() []Event

// Poll calls f().
func (f SourceFunc) Poll() []Event {
	return f()
}

// Levels is a held/not-held flag per button.
type Levels [NumButtons]bool

// EdgeDetector converts sampled button levels into press and release events.
type EdgeDetector struct {
	prev Levels
}

// Update returns the events that turn the previous levels into cur.
func (d *EdgeDetector) Update(cur Levels) []Event {
	var events []Event
	for b := range NumButtons {
		if cur[b] != d.prev[b] {
			events = append(events, Event{Button: Button(b), Pressed: cur[b]})
		}
	}
	d.prev = cur
	return events
}

// State is the input the game acts on during one tick.
type State struct {
	MoveUp   bool // Held
	MoveDown bool // Held
	Fire     bool // Pressed during this tick
	Quit     bool // Latched once pressed
}

// Apply folds the events of one poll into the state.
// Fire only stays set for the tick in which it was pressed.
func (s *State) Apply(events []Event) {
	s.Fire = false
	for _, e := range events {
		switch e.Button {
		case ButtonUp:
			s.MoveUp = e.Pressed
		case ButtonDown:
			s.MoveDown = e.Pressed
		case ButtonFire:
			if e.Pressed {
				s.Fire = true
			}
		case ButtonQuit:
			if e.Pressed {
				s.Quit = true
			}
		}
	}
}
