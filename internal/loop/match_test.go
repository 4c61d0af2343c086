package loop

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
)

// recorder captures draw commands as strings.
type recorder struct {
	cmds []string
}

func (r *recorder) Clear(draw.Color) {
	r.cmds = append(r.cmds, "clear")
}

func (r *recorder) FillCircle(c draw.Point, radius float64, _ draw.Color) {
	r.cmds = append(r.cmds, fmt.Sprintf("circle %v,%v r%v", c.X, c.Y, radius))
}

func (r *recorder) FillRect(o draw.Point, w, h float64, _ draw.Color) {
	r.cmds = append(r.cmds, fmt.Sprintf("rect %v,%v %vx%v", o.X, o.Y, w, h))
}

func (r *recorder) Line(from, to draw.Point, _ draw.Color) {
	r.cmds = append(r.cmds, fmt.Sprintf("line %v,%v-%v,%v", from.X, from.Y, to.X, to.Y))
}

func (r *recorder) Text(s string, o draw.Point, size int, _ draw.Color) {
	r.cmds = append(r.cmds, fmt.Sprintf("text %q %v,%v s%d", s, o.X, o.Y, size))
}

func TestMatchFirstTick(t *testing.T) {
	m := NewMatch(config.Default(), fixedRandom(2))
	m.Tick(input.Input{})

	x, y := m.Ball().Position()
	assert.Equal(t, 405, x)
	assert.Equal(t, 245, y)
	assert.Equal(t, uint64(1), m.Ticks())
	left, right := m.Score()
	assert.Zero(t, left)
	assert.Zero(t, right)
}

func TestMatchDrawVersusCPU(t *testing.T) {
	m := NewMatch(config.Default(), fixedRandom(2))
	m.Tick(input.Input{Up: true})

	var r recorder
	m.Draw(&r)
	assert.Equal(t, []string{
		"clear",
		"line 400,0-400,480",
		"circle 405,245 r20",
		"rect 10,175 20x120",
		"rect 770,180 20x120",
		`text "0" 180,20 s80`,
		`text "0" 580,20 s80`,
	}, r.cmds)
}

func TestMatchClassicSharesInput(t *testing.T) {
	m := NewMatch(config.Classic(), fixedRandom(2))
	m.Tick(input.Input{Up: true})
	m.Tick(input.Input{Up: true})

	var r recorder
	m.Draw(&r)
	assert.Equal(t, []string{
		"clear",
		"line 400,0-400,480",
		"circle 410,250 r20",
		"rect 10,170 20x120",
		"rect 770,170 20x120",
	}, r.cmds, "no score text in classic mode")
}

func TestMatchScoresWhenPaddleMisses(t *testing.T) {
	cfg := config.Default()
	cfg.BallSpeedY = 0
	m := NewMatch(cfg, fixedRandom(2))
	up := input.Input{Up: true}

	// Right: bounces off the CPU paddle at x=750.
	for range 70 {
		m.Tick(up)
	}
	x, _ := m.Ball().Position()
	require.Equal(t, 750, x)

	// Back across the court past the raised left paddle.
	for range 147 {
		m.Tick(up)
	}
	x, _ = m.Ball().Position()
	require.Equal(t, 15, x)
	left, right := m.Score()
	require.Zero(t, left+right)

	m.Tick(up)
	left, right = m.Score()
	assert.Equal(t, 0, left)
	assert.Equal(t, 1, right)
	x, y := m.Ball().Position()
	assert.Equal(t, 400, x)
	assert.Equal(t, 240, y)
}

func TestMatchClassicNeverScores(t *testing.T) {
	m := NewMatch(config.Classic(), rand.New(rand.NewPCG(1, 2)))
	for range 5000 {
		m.Tick(input.Input{})
		x, y := m.Ball().Position()
		require.True(t, x > -20 && x < 820, "x=%d", x)
		require.True(t, y > -20 && y < 500, "y=%d", y)
	}
	left, right := m.Score()
	assert.Zero(t, left)
	assert.Zero(t, right)
}

func TestMatchScoreMonotonic(t *testing.T) {
	for seed := range uint64(5) {
		rng := rand.New(rand.NewPCG(seed, seed+1))
		keys := rand.New(rand.NewPCG(seed+100, 7))
		m := NewMatch(config.Default(), rng)

		prevL, prevR := m.Score()
		for range 20000 {
			m.Tick(input.Input{Up: keys.IntN(3) == 0, Down: keys.IntN(3) == 0})
			l, r := m.Score()
			require.GreaterOrEqual(t, l, prevL)
			require.GreaterOrEqual(t, r, prevR)
			require.LessOrEqual(t, (l-prevL)+(r-prevR), 1, "at most one point per tick")
			prevL, prevR = l, r
		}
	}
}

// ballAbovePaddle swaps in a ball centered at (20, 155) moving (+5, 0): after
// its move it sits 20px above the left paddle's top edge once that paddle
// steps up by one, and 25px above it otherwise.
func ballAbovePaddle(m *Match) {
	cfg := config.Default()
	cfg.CourtWidth, cfg.CourtHeight = 40, 310
	cfg.BallSpeedY = 0
	m.ball = object.NewBall(cfg, fixedRandom(2))
}

func TestMatchPaddleMovingIntoBallHitsSameTick(t *testing.T) {
	m := NewMatch(config.Default(), fixedRandom(2))
	ballAbovePaddle(m)

	m.Tick(input.Input{Up: true})

	x, y := m.Ball().Position()
	assert.Equal(t, 25, x)
	assert.Equal(t, 155, y)
	_, py := m.left.Position()
	assert.Equal(t, 175, py)
	vx, _ := m.ball.Velocity()
	assert.Equal(t, -5, vx, "reflected on the tick the paddle moved")
}

func TestMatchIdlePaddleMissesBallAbove(t *testing.T) {
	m := NewMatch(config.Default(), fixedRandom(2))
	ballAbovePaddle(m)

	m.Tick(input.Input{})

	vx, _ := m.ball.Velocity()
	assert.Equal(t, 5, vx)
}
