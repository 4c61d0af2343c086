// Package client plays one match over a raw terminal stream such as an SSH
// session.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/loop/server"
)

// overlay is what the client paints on top of the court.
type overlay int

const (
	overlayNone overlay = iota
	overlayInactive
	overlayShutdown
)

// Client renders a match and reads keys for a single connection.
// It implements loop.Frontend.
type Client struct {
	*draw.TermRenderer

	lobby        server.Lobby
	handle       *server.SessionHandle
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	now          func() time.Time

	lastInput   time.Time
	shutdownAt  time.Time // Zero until the server announces shutdown
	overlay     overlay
	prevOverlay overlay
	quit        bool
}

var _ loop.Frontend = (*Client)(nil)

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	CourtWidth   int
	CourtHeight  int
	Now          func() time.Time // Defaults to time.Now
}

// NewClient creates a client registered with lobby.
func NewClient(lobby server.Lobby, r io.ByteReader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	courtW, courtH := opts.CourtWidth, opts.CourtHeight
	if courtW <= 0 || courtH <= 0 {
		courtW, courtH = config.CourtWidth, config.CourtHeight
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		termWidth, termHeight = config.MaxTermWidth, config.MaxTermHeight
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, float64(courtW), float64(courtH))
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	return &Client{
		TermRenderer: draw.NewTermRenderer(canvas, chunkWriter),
		lobby:        lobby,
		handle:       lobby.Register(opts.Username),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		now:          now,
		lastInput:    now(),
	}
}

// ID returns the session ID assigned by the lobby.
func (c *Client) ID() string {
	return c.handle.ID.String()
}

// Run plays m until the player quits, the session goes idle, the server shuts
// down or ctx is cancelled. The client is unregistered on return.
func (c *Client) Run(ctx context.Context, m *loop.Match) error {
	defer c.lobby.Unregister(c.handle.ID)

	out := c.Writer()
	out.HideCursor()
	out.ClearScreen()
	if err := out.Flush(); err != nil {
		return fmt.Errorf("session %s: %w", c.handle.ID, err)
	}

	err := loop.Run(ctx, m, c, m.Config().TickRate)

	// Best effort: the connection may already be gone.
	out.ClearScreen()
	out.ShowCursor()
	_ = out.Flush()

	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("session %s: %w", c.handle.ID, err)
	}
	return nil
}

// Poll reads pending keys and server events and decides whether the session
// should end.
func (c *Client) Poll() input.Input {
	now := c.now()
	c.updateScreen()

	in := input.ReadInputAt(c.inputStream, now)
	c.processServerEvents(now)

	idle := now.Sub(c.lastInput).Seconds()
	switch {
	case in.Active:
		c.lastInput = now
		if c.overlay == overlayInactive {
			c.overlay = overlayNone
		}
	case idle > config.InactivityDisconnectUser:
		c.quit = true
	case idle > config.InactivityWarnUser && c.overlay == overlayNone:
		c.overlay = overlayInactive
	}

	if c.overlay == overlayShutdown && !now.Before(c.shutdownAt) {
		c.quit = true
	}

	if c.quit {
		in.Quit = true
	}
	return in
}

// processServerEvents handles events from the lobby.
func (c *Client) processServerEvents(now time.Time) {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.quit = true
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				if c.overlay != overlayShutdown {
					c.overlay = overlayShutdown
					c.shutdownAt = now.Add(time.Duration(config.ShutdownDisplaySeconds * float64(time.Second)))
				}
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.Canvas().TerminalWidth() || renderHeight != c.Canvas().TerminalHeight() ||
		offsetCol != c.Canvas().OffsetCol() || offsetRow != c.Canvas().OffsetRow() {
		c.Writer().ClearScreen()
		c.Canvas().Resize(renderWidth, renderHeight)
		c.Canvas().SetOffset(offsetCol, offsetRow)
		c.Writer().SetOffset(offsetCol, offsetRow)
		c.Canvas().ForceRedraw()
	}
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 1), config.MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}
