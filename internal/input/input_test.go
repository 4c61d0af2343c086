package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanReader feeds bytes to a Stream on demand.
type chanReader chan byte

func (c chanReader) ReadByte() (byte, error) {
	b, ok := <-c
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// waitFor blocks until n bytes are buffered in the stream, then reads them
// in one go so escape sequences are never split across reads.
func waitFor(t *testing.T, s *Stream, n int, now time.Time) Input {
	t.Helper()
	require.Eventually(t, func() bool { return len(s.ch) >= n }, time.Second, time.Millisecond)
	return ReadInputAt(s, now)
}

func TestReadInputKeys(t *testing.T) {
	src := make(chanReader, 16)
	s := StartStream(src)
	now := time.Unix(100, 0)

	src <- 'w'
	in := waitFor(t, s, 1, now)
	assert.True(t, in.Up)
	assert.True(t, in.Held(DirUp))
	assert.False(t, in.Held(DirDown))
	assert.True(t, in.Active)

	for _, b := range []byte("\x1b[B") {
		src <- b
	}
	in = waitFor(t, s, 3, now.Add(10*time.Millisecond))
	assert.True(t, in.Down)
	assert.True(t, in.Up, "w still held within hold duration")
	assert.False(t, in.Quit)

	in = ReadInputAt(s, now.Add(time.Second))
	assert.False(t, in.Up)
	assert.False(t, in.Down)
	assert.False(t, in.Active)
}

func TestReadInputQuitKeys(t *testing.T) {
	for _, b := range []byte{'q', 'Q', '\x03'} {
		src := make(chanReader, 1)
		s := StartStream(src)
		src <- b
		in := waitFor(t, s, 1, time.Unix(0, 0))
		assert.True(t, in.Quit, "byte %q", b)
	}
}

func TestReadInputClosedReaderQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	require.Eventually(t, func() bool {
		return ReadInputAt(s, time.Now()).Quit
	}, time.Second, time.Millisecond)

	// Stays quit without blocking.
	assert.True(t, ReadInputAt(s, time.Now()).Quit)
}

func TestReadInputLoneEscapeDoesNotQuit(t *testing.T) {
	src := make(chanReader, 4)
	s := StartStream(src)
	now := time.Unix(5, 0)

	src <- '\x1b'
	in := waitFor(t, s, 1, now)
	assert.False(t, in.Quit)
	assert.True(t, in.Active)

	// An unknown CSI final byte is dropped rather than read as keys.
	for _, b := range []byte("\x1b[C") {
		src <- b
	}
	in = waitFor(t, s, 3, now)
	assert.False(t, in.Quit)
	assert.False(t, in.Up)
	assert.False(t, in.Down)
}

func TestTrackerHoldWindow(t *testing.T) {
	tr := NewTracker()
	now := time.Unix(10, 0)
	assert.False(t, tr.Snapshot(now).Up, "never pressed")

	tr.Press(KeyUp, now)
	assert.True(t, tr.Snapshot(now.Add(keyHoldDuration-time.Millisecond)).Up)
	assert.False(t, tr.Snapshot(now.Add(keyHoldDuration)).Up)
}

func TestApplyKey(t *testing.T) {
	now := time.Unix(1, 0)
	tests := []struct {
		ev   *tcell.EventKey
		want Input
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Input{Up: true}},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Input{Down: true}},
		{tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), Input{Up: true}},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Input{Down: true}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Input{Quit: true}},
		{tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), Input{}},
	}
	for _, tt := range tests {
		tr := NewTracker()
		ApplyKey(tr, tt.ev, now)
		assert.Equal(t, tt.want, tr.Snapshot(now), tt.ev.Name())
	}
}

func TestEventSource(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	src := StartEvents(screen)

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	require.Eventually(t, func() bool {
		return src.Read(time.Now()).Up
	}, time.Second, time.Millisecond)

	screen.Fini()
	require.Eventually(t, func() bool {
		return src.Read(time.Now()).Quit
	}, time.Second, time.Millisecond)
}
