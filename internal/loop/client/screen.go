package client

import (
	"fmt"
	"math"

	"github.com/tomz197/pong/internal/loop/config"
)

// Present writes the court, the border and the overlays, then flushes the
// frame to the connection.
func (c *Client) Present() error {
	// On overlay transitions, do a full terminal clear so text from the
	// previous overlay doesn't persist on screen.
	if c.overlay != c.prevOverlay {
		c.Writer().ClearScreen()
		c.Canvas().ForceRedraw()
		c.prevOverlay = c.overlay
	}

	if err := c.Render(); err != nil {
		return err
	}

	// Draw border when terminal exceeds max render resolution
	if err := c.Canvas().RenderBorder(c.Writer()); err != nil {
		return err
	}

	c.drawUI()

	return c.Writer().Flush()
}

// drawUI draws the overlay for the current client state.
func (c *Client) drawUI() {
	termWidth := c.Canvas().TerminalWidth()
	termHeight := c.Canvas().TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch c.overlay {
	case overlayShutdown:
		c.drawShutdownScreen(centerX, centerY)
	case overlayInactive:
		c.drawInactivityScreen(centerX, centerY)
	default:
		c.drawPlayingHUD(termWidth, termHeight)
	}
}

// writeText writes s at (col, row) and marks the cells for repaint next frame.
func (c *Client) writeText(col, row int, s string) {
	col = max(col, 1)
	if row < 1 || row > c.Canvas().TerminalHeight() || col > c.Canvas().TerminalWidth() {
		return
	}
	if over := col + len(s) - 1 - c.Canvas().TerminalWidth(); over > 0 {
		s = s[:len(s)-over]
	}
	c.Writer().WriteAt(col, row, s)
	c.Canvas().MarkTextDirty(col, row, len(s))
}

func (c *Client) writeCentered(centerX, row int, s string) {
	c.writeText(centerX-len(s)/2, row, s)
}

// drawPlayingHUD draws the controls hint and the live session count.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int) {
	c.writeText(2, termHeight, "W/S or arrows: move  Q: quit")

	players := fmt.Sprintf("Players: %-4d", c.lobby.Count())
	c.writeText(termWidth-len(players)-1, termHeight, players)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	left := int(config.InactivityDisconnectUser - c.now().Sub(c.lastInput).Seconds())
	msg := fmt.Sprintf("You have been inactive for too long. Disconnecting in %d seconds.", max(left, 0))
	c.writeCentered(centerX, centerY, msg)

	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(math.Ceil(c.shutdownAt.Sub(c.now()).Seconds()))
	countdown := fmt.Sprintf("Disconnecting in %d seconds...", max(remaining, 0))
	c.writeCentered(centerX, centerY+2, countdown)

	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
