package loop

import (
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
)

// Match owns every entity on the court and advances them one tick at a time.
// It has no clock and no I/O; Run drives it.
type Match struct {
	cfg config.Config

	ball       *object.Ball
	left       *object.Paddle
	right      *object.Paddle
	cpu        *object.AutoPaddle // nil in classic mode
	score      *object.ScoreTracker
	collisions *CollisionResolver

	onExitLeft  func()
	onExitRight func()
	ticks       uint64
}

// NewMatch sets up the court for cfg.Mode.
func NewMatch(cfg config.Config, rng object.Random) *Match {
	m := &Match{
		cfg:        cfg,
		ball:       object.NewBall(cfg, rng),
		left:       object.NewPaddle(cfg, cfg.LeftPaddleX()),
		right:      object.NewPaddle(cfg, cfg.RightPaddleX()),
		score:      object.NewScoreTracker(cfg),
		collisions: NewCollisionResolver(cfg.HitCooldownTicks),
	}
	if cfg.Mode == config.ModeVersusCPU {
		m.cpu = object.NewAutoPaddle(m.right, cfg.ReactionThreshold)
	}
	if cfg.Boundary == config.BoundaryScore {
		m.onExitLeft = func() { m.score.RecordExit(object.SideLeft) }
		m.onExitRight = func() { m.score.RecordExit(object.SideRight) }
	}
	return m
}

// Tick advances the simulation by one step: ball, paddles, then collisions.
func (m *Match) Tick(in input.Input) {
	m.ball.Update(m.onExitLeft, m.onExitRight)

	m.left.Update(in)
	if m.cpu != nil {
		m.cpu.Update(m.ball)
	} else {
		// Classic mode: both boards follow the same keys.
		m.right.Update(in)
	}

	if m.cfg.Mode == config.ModeVersusCPU {
		m.collisions.Resolve(m.ball, m.left, m.right)
	}

	m.ticks++
}

// Draw issues the frame's draw commands back to front.
func (m *Match) Draw(r draw.Renderer) {
	r.Clear(m.cfg.Background)

	mid := m.cfg.CourtWidth / 2
	r.Line(draw.Pt(mid, 0), draw.Pt(mid, m.cfg.CourtHeight), m.cfg.Foreground)

	m.ball.Draw(r)
	m.left.Draw(r)
	m.right.Draw(r)

	if m.cfg.Mode == config.ModeVersusCPU {
		m.score.Draw(r)
	}
}

// Score returns the left and right counters.
func (m *Match) Score() (left, right int) {
	return m.score.Left(), m.score.Right()
}

// Ticks returns how many ticks have run.
func (m *Match) Ticks() uint64 {
	return m.ticks
}

// Ball exposes the ball read-only.
func (m *Match) Ball() object.BallReader {
	return m.ball
}

// Config returns the match configuration.
func (m *Match) Config() config.Config {
	return m.cfg
}
