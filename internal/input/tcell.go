package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EventSource collects tcell key events in the background and exposes them
// as the same held-key state the byte Stream produces.
type EventSource struct {
	events  chan tcell.Event
	tracker *Tracker
	closed  bool
}

// StartEvents spawns a goroutine polling screen for events. Polling stops
// once the screen is finalized.
func StartEvents(screen tcell.Screen) *EventSource {
	s := &EventSource{
		events:  make(chan tcell.Event, 100),
		tracker: NewTracker(),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(s.events)
				return
			}
			s.events <- ev
		}
	}()
	return s
}

// Read drains pending events (non-blocking) and returns the input at now.
// Resize events are ignored here; renderers read the size every frame.
func (s *EventSource) Read(now time.Time) Input {
	active := false

drain:
	for !s.closed {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.closed = true
				break drain
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				ApplyKey(s.tracker, key, now)
				active = true
			}
		default:
			break drain
		}
	}

	in := s.tracker.Snapshot(now)
	in.Active = active
	if s.closed {
		in.Quit = true
	}
	return in
}

// ApplyKey records a tcell key event on t.
func ApplyKey(t *Tracker, ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyUp:
		t.Press(KeyUp, now)
	case tcell.KeyDown:
		t.Press(KeyDown, now)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.Press(KeyQuit, now)
	case tcell.KeyRune:
		r := ev.Rune()
		if r < 0x80 {
			applyByte(t, byte(r), now)
		}
	}
}
