// Package object holds the court entities: ball, paddles and the scoreboard.
package object

import (
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
)

// Random supplies the ball's reset direction. *rand.Rand from math/rand/v2
// satisfies it; tests pass a scripted stub.
type Random interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// DirectionSource reports whether a paddle direction is held this tick.
type DirectionSource interface {
	Held(d input.Direction) bool
}

// BallReader is the read-only view of the ball the CPU paddle reacts to.
type BallReader interface {
	Position() (x, y int)
}

// Drawable is anything that issues draw commands for itself.
type Drawable interface {
	Draw(r draw.Renderer)
}

// Side names one half of the court.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}
