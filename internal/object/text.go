package object

import (
	"github.com/tomz197/pong/internal/draw"
)

// Text is a simple drawable label in court coordinates.
type Text struct {
	X     int
	Y     int
	Size  int
	Color draw.Color
	Value string
}

// Draw issues the label as a single text command.
func (t Text) Draw(r draw.Renderer) {
	if t.Value == "" {
		return
	}
	r.Text(t.Value, draw.Pt(t.X, t.Y), t.Size, t.Color)
}
