package object

import (
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/physics"
)

// Paddle is a vertical board that moves at a fixed speed and never leaves
// the court.
type Paddle struct {
	x, y          int
	width, height int
	speed         int
	courtH        int
	color         draw.Color
}

// NewPaddle creates a vertically centered paddle with its left edge at x.
func NewPaddle(cfg config.Config, x int) *Paddle {
	return &Paddle{
		x:      x,
		y:      cfg.CourtHeight/2 - cfg.PaddleHeight/2,
		width:  cfg.PaddleWidth,
		height: cfg.PaddleHeight,
		speed:  cfg.PaddleSpeed,
		courtH: cfg.CourtHeight,
		color:  cfg.Foreground,
	}
}

// Update moves the paddle by one step for each held direction that stays
// inside the court. Holding both directions moves up and then back down.
func (p *Paddle) Update(src DirectionSource) {
	if src.Held(input.DirUp) {
		p.moveUp()
	}
	if src.Held(input.DirDown) {
		p.moveDown()
	}
}

func (p *Paddle) moveUp() bool {
	if p.y-p.speed > 0 {
		p.y -= p.speed
		return true
	}
	return false
}

func (p *Paddle) moveDown() bool {
	if p.y+p.height+p.speed < p.courtH {
		p.y += p.speed
		return true
	}
	return false
}

// Draw issues one filled rectangle.
func (p *Paddle) Draw(r draw.Renderer) {
	r.FillRect(draw.Pt(p.x, p.y), float64(p.width), float64(p.height), p.color)
}

// Position returns the top-left corner.
func (p *Paddle) Position() (x, y int) {
	return p.x, p.y
}

// Size returns the paddle dimensions.
func (p *Paddle) Size() (width, height int) {
	return p.width, p.height
}

// Bounds returns the paddle rectangle for collision tests.
func (p *Paddle) Bounds() physics.Rect {
	return physics.Rect{
		X: float64(p.x),
		Y: float64(p.y),
		W: float64(p.width),
		H: float64(p.height),
	}
}

// CenterY returns the vertical center, rounded down.
func (p *Paddle) CenterY() int {
	return p.y + p.height/2
}
