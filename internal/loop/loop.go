// Package loop drives a match at a fixed tick rate against a frontend.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
)

// ErrBadTickRate is returned by Run for a non-positive tick rate.
var ErrBadTickRate = errors.New("tick rate must be positive")

// Frontend is where a match is played: it renders draw commands, reports the
// held keys, and shows each finished frame.
type Frontend interface {
	draw.Renderer

	// Poll returns the input state for the coming tick. It must not block.
	Poll() input.Input
	// Present shows everything drawn since the last Clear.
	Present() error
}

// Run plays m on fe at tickRate ticks per second with the standard
// Input → Update → Draw cycle. It returns nil when the player quits or ctx
// is cancelled, and a wrapped error if a frame cannot be presented.
func Run(ctx context.Context, m *Match, fe Frontend, tickRate int) error {
	if tickRate <= 0 {
		return fmt.Errorf("run: %w (got %d)", ErrBadTickRate, tickRate)
	}
	frameTime := time.Second / time.Duration(tickRate)

	for {
		if ctx.Err() != nil {
			return nil
		}
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := fe.Poll()
		if in.Quit {
			return nil
		}

		// ===== UPDATE PHASE =====
		m.Tick(in)

		// ===== DRAW PHASE =====
		m.Draw(fe)
		if err := fe.Present(); err != nil {
			return fmt.Errorf("present tick %d: %w", m.Ticks(), err)
		}

		// ===== FRAME TIMING =====
		if !sleep(ctx, frameTime-time.Since(frameStart)) {
			return nil
		}
	}
}

// sleep waits for d or until ctx is done. Reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
