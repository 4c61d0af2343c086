package object

import (
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/loop/config"
)

// Ball is the moving puck. Position and velocity are whole court pixels;
// only the signs of the velocity components ever change.
type Ball struct {
	x, y   int
	vx, vy int
	radius float64
	color  draw.Color

	courtW, courtH int
	boundary       config.Boundary
	rng            Random
}

// NewBall places a ball at the court center moving (+speedX, +speedY).
func NewBall(cfg config.Config, rng Random) *Ball {
	return &Ball{
		x:        cfg.CourtWidth / 2,
		y:        cfg.CourtHeight / 2,
		vx:       cfg.BallSpeedX,
		vy:       cfg.BallSpeedY,
		radius:   cfg.BallRadius,
		color:    cfg.Foreground,
		courtW:   cfg.CourtWidth,
		courtH:   cfg.CourtHeight,
		boundary: cfg.Boundary,
		rng:      rng,
	}
}

// Update advances the ball one tick.
//
// With BoundaryScore a ball leaving through the right wall calls onExitRight,
// one leaving through the left calls onExitLeft; either way the ball is reset
// and does not move further this tick. With BoundaryBounce the side walls
// reflect instead. Nil callbacks are ignored.
func (b *Ball) Update(onExitLeft, onExitRight func()) {
	r := int(b.radius)

	if b.boundary == config.BoundaryBounce {
		if b.x+r >= b.courtW || b.x-r <= 0 {
			b.vx = -b.vx
		}
	} else {
		if b.x+r > b.courtW {
			if onExitRight != nil {
				onExitRight()
			}
			b.Reset()
			return
		}
		if b.x-r < 0 {
			if onExitLeft != nil {
				onExitLeft()
			}
			b.Reset()
			return
		}
	}

	// Bottom is inclusive, top is strict.
	if b.y+r >= b.courtH || b.y-r < 0 {
		b.vy = -b.vy
	}

	b.x += b.vx
	b.y += b.vy
}

// Reset recenters the ball and picks a new sign for each velocity component.
// A draw of 1 from {-1, 0, 1} keeps the axis positive, anything else makes it
// negative.
func (b *Ball) Reset() {
	b.x = b.courtW / 2
	b.y = b.courtH / 2
	b.vx = randomSign(b.rng) * abs(b.vx)
	b.vy = randomSign(b.rng) * abs(b.vy)
}

// ReflectX flips the horizontal velocity.
func (b *Ball) ReflectX() {
	b.vx = -b.vx
}

// Draw issues one filled circle.
func (b *Ball) Draw(r draw.Renderer) {
	r.FillCircle(draw.Pt(b.x, b.y), b.radius, b.color)
}

// Position returns the ball center.
func (b *Ball) Position() (x, y int) {
	return b.x, b.y
}

// Velocity returns the per-tick displacement.
func (b *Ball) Velocity() (vx, vy int) {
	return b.vx, b.vy
}

// Radius returns the ball radius.
func (b *Ball) Radius() float64 {
	return b.radius
}

func randomSign(rng Random) int {
	if rng.IntN(3)-1 > 0 {
		return 1
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
