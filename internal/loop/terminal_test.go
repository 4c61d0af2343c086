package loop

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
)

func TestTcellFrontend(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	defer screen.Fini()

	cfg := config.Default()
	fe := NewTcellFrontend(screen, cfg.CourtWidth, cfg.CourtHeight)
	m := NewMatch(cfg, fixedRandom(2))

	m.Tick(input.Input{})
	m.Draw(fe)
	require.NoError(t, fe.Present())

	cells, w, _ := screen.GetContents()
	divider := cells[5*w+40].Runes
	require.NotEmpty(t, divider)
	assert.Equal(t, rune(draw.BlockFull), divider[0])

	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	require.Eventually(t, func() bool { return fe.Poll().Down }, time.Second, time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.Eventually(t, func() bool { return fe.Poll().Quit }, time.Second, time.Millisecond)
}
