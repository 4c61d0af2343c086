package draw

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 3)

	cw.WriteAt(1, 1, "hi")
	cw.SetOffset(0, 0)
	cw.WriteAt(5, 6, "x")
	cw.WriteString("█")
	assert.Zero(t, out.Len(), "nothing written before Flush")

	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[4;3Hhi\033[6;5Hx█", out.String())

	out.Reset()
	require.NoError(t, cw.Flush())
	assert.Zero(t, out.Len(), "flushed frame is not sent twice")
}

func TestChunkWriterLargeFrame(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	frame := strings.Repeat("ab", 3*maxChunkSize)
	cw.WriteString(frame)
	require.NoError(t, cw.Flush())
	assert.Equal(t, frame, out.String())
}

func TestChunkWriterFrameProtocol(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 10, 10)
	cw.HideCursor()
	cw.ClearScreen()
	cw.ShowCursor()
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[?25l\033[H\033[2J\033[?25h", out.String(), "control sequences ignore the offset")
}

func TestRawModeRejectsNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	require.NoError(t, err)
	defer f.Close()

	restore, err := RawMode(int(f.Fd()))
	assert.Error(t, err)
	assert.Nil(t, restore)
}
