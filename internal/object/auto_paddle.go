package object

import (
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

// AutoPaddle steers a Paddle toward the ball's current height.
type AutoPaddle struct {
	paddle    *Paddle
	threshold int
}

// NewAutoPaddle wraps p. The paddle stays put while the ball is within
// threshold pixels of its center.
func NewAutoPaddle(p *Paddle, threshold int) *AutoPaddle {
	return &AutoPaddle{paddle: p, threshold: threshold}
}

// Update moves at most one step toward the ball.
func (a *AutoPaddle) Update(ball BallReader) {
	_, by := ball.Position()
	center := a.paddle.CenterY()

	if center-by > a.threshold {
		a.paddle.moveUp()
	} else if by-center > a.threshold {
		a.paddle.moveDown()
	}
}

// Draw delegates to the wrapped paddle.
func (a *AutoPaddle) Draw(r draw.Renderer) {
	a.paddle.Draw(r)
}

// Paddle returns the wrapped paddle.
func (a *AutoPaddle) Paddle() *Paddle {
	return a.paddle
}

// Bounds returns the wrapped paddle's rectangle.
func (a *AutoPaddle) Bounds() physics.Rect {
	return a.paddle.Bounds()
}
