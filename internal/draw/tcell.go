package draw

import (
	"github.com/gdamore/tcell/v2"
)

// TcellRenderer implements Renderer on a tcell screen. Shapes are rasterized
// on a half-block Canvas sized to the screen; tcell does the diffing.
type TcellRenderer struct {
	screen tcell.Screen
	canvas *Canvas
	bg     Color
	texts  []textCmd
}

// Ensure TcellRenderer satisfies Renderer.
var _ Renderer = (*TcellRenderer)(nil)

// NewTcellRenderer maps a logicalWidth x logicalHeight court onto screen.
func NewTcellRenderer(screen tcell.Screen, logicalWidth, logicalHeight float64) *TcellRenderer {
	w, h := screen.Size()
	return &TcellRenderer{
		screen: screen,
		canvas: NewScaledCanvas(w, h, logicalWidth, logicalHeight),
		bg:     Black,
	}
}

// Canvas returns the canvas the renderer rasterizes on.
func (r *TcellRenderer) Canvas() *Canvas {
	return r.canvas
}

// Clear starts a new frame and picks up screen size changes.
func (r *TcellRenderer) Clear(bg Color) {
	w, h := r.screen.Size()
	r.canvas.Resize(w, h)
	r.canvas.Clear()
	r.bg = bg
	r.texts = r.texts[:0]
}

// FillCircle implements Renderer.
func (r *TcellRenderer) FillCircle(center Point, radius float64, c Color) {
	r.canvas.FillCircle(center, radius, c)
}

// FillRect implements Renderer.
func (r *TcellRenderer) FillRect(origin Point, width, height float64, c Color) {
	r.canvas.FillRect(origin, width, height, c)
}

// Line implements Renderer.
func (r *TcellRenderer) Line(from, to Point, c Color) {
	r.canvas.DrawLine(from, to, c)
}

// Text queues s for the next Show.
func (r *TcellRenderer) Text(s string, origin Point, _ int, c Color) {
	if s == "" {
		return
	}
	r.texts = append(r.texts, textCmd{s: s, origin: origin, color: c})
}

// Show copies the frame to the screen and presents it.
func (r *TcellRenderer) Show() {
	base := tcell.StyleDefault.Background(tcellColor(r.bg))
	r.screen.Fill(' ', base)

	r.canvas.EachCell(func(col, row int, cell Cell) {
		r.screen.SetContent(col, row, cell.Ch, nil, base.Foreground(tcellColor(cell.Color)))
	})

	for _, t := range r.texts {
		col, row := r.canvas.LogicalToTerminal(t.origin.X, t.origin.Y)
		style := base.Foreground(tcellColor(t.color))
		x := max(col-1, 0)
		for _, ch := range t.s {
			r.screen.SetContent(x, row-1, ch, nil, style)
			x++
		}
	}

	r.screen.Show()
}

func tcellColor(c Color) tcell.Color {
	if c.IsZero() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
