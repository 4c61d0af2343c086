// Package input turns terminal key presses into per-tick "is held" state.
package input

import (
	"io"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and auto-repeat), so this must be a little
// longer than a typical ~30 Hz repeat interval.
const keyHoldDuration = 40 * time.Millisecond

// Direction is a logical paddle direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
)

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Up      bool
	Down    bool
	Pressed []byte // Raw bytes received this frame (empty for event sources)
	Active  bool   // Any key arrived this frame
}

// Held reports whether direction d is currently held.
func (in Input) Held(d Direction) bool {
	switch d {
	case DirUp:
		return in.Up
	case DirDown:
		return in.Down
	default:
		return false
	}
}

// Key identifies a tracked logical key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyQuit
	numKeys
)

// Tracker tracks the last time each key was pressed.
type Tracker struct {
	last [numKeys]time.Time
	hold time.Duration
}

// NewTracker creates a tracker using the default hold duration.
func NewTracker() *Tracker {
	return &Tracker{hold: keyHoldDuration}
}

// Press records a press of k at now.
func (t *Tracker) Press(k Key, now time.Time) {
	if k >= 0 && k < numKeys {
		t.last[k] = now
	}
}

// held reports whether k was pressed within the hold duration before now.
func (t *Tracker) held(k Key, now time.Time) bool {
	last := t.last[k]
	return !last.IsZero() && now.Sub(last) < t.hold
}

// Snapshot builds the input state at now.
func (t *Tracker) Snapshot(now time.Time) Input {
	return Input{
		Quit: t.held(KeyQuit, now),
		Up:   t.held(KeyUp, now),
		Down: t.held(KeyDown, now),
	}
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	tracker *Tracker
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// When r fails (EOF, closed session) the stream reports Quit from then on.
func StartStream(r io.ByteReader) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		tracker: NewTracker(),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInputAt drains all available bytes from the stream without blocking
// and returns the key state at now. Arrow keys arrive as ESC [ A/B; a lone
// ESC is not a quit key here since it may be the start of one.
func ReadInputAt(s *Stream, now time.Time) Input {
	var buf []byte

	// Drain all available bytes
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// Parse the collected bytes and update key state timestamps
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.tracker.Press(KeyUp, now)
				i += 2
				continue
			case 'B': // Down arrow
				s.tracker.Press(KeyDown, now)
				i += 2
				continue
			}
		}

		applyByte(s.tracker, b, now)
	}

	in := s.tracker.Snapshot(now)
	in.Pressed = buf
	in.Active = len(buf) > 0
	if s.closed {
		in.Quit = true
	}
	return in
}

// applyByte updates the key state timestamps based on the pressed byte.
func applyByte(t *Tracker, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // q or Ctrl-C
		t.Press(KeyQuit, now)
	case 'w', 'W', 'i', 'I':
		t.Press(KeyUp, now)
	case 's', 'S', 'k', 'K':
		t.Press(KeyDown, now)
	}
}
