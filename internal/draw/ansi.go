package draw

// textCmd is a queued Text call, written after the canvas so it stays on top.
type textCmd struct {
	s      string
	origin Point
	color  Color
}

// TermRenderer implements Renderer on a half-block Canvas and writes frames
// as ANSI escape sequences through a ChunkWriter.
type TermRenderer struct {
	canvas *Canvas
	out    *ChunkWriter
	texts  []textCmd
}

// Ensure TermRenderer satisfies Renderer.
var _ Renderer = (*TermRenderer)(nil)

// NewTermRenderer draws onto canvas and writes through out.
func NewTermRenderer(canvas *Canvas, out *ChunkWriter) *TermRenderer {
	return &TermRenderer{canvas: canvas, out: out}
}

// Canvas returns the canvas the renderer draws on.
func (r *TermRenderer) Canvas() *Canvas {
	return r.canvas
}

// Writer returns the chunk writer frames are written to.
func (r *TermRenderer) Writer() *ChunkWriter {
	return r.out
}

// Clear starts a new frame. The terminal's own background is used as the
// backdrop, so bg is ignored.
func (r *TermRenderer) Clear(_ Color) {
	r.canvas.Clear()
	r.texts = r.texts[:0]
}

// FillCircle implements Renderer.
func (r *TermRenderer) FillCircle(center Point, radius float64, c Color) {
	r.canvas.FillCircle(center, radius, c)
}

// FillRect implements Renderer.
func (r *TermRenderer) FillRect(origin Point, width, height float64, c Color) {
	r.canvas.FillRect(origin, width, height, c)
}

// Line implements Renderer.
func (r *TermRenderer) Line(from, to Point, c Color) {
	r.canvas.DrawLine(from, to, c)
}

// Text queues s for the next Render. Terminal text is always one cell high.
func (r *TermRenderer) Text(s string, origin Point, _ int, c Color) {
	if s == "" {
		return
	}
	r.texts = append(r.texts, textCmd{s: s, origin: origin, color: c})
}

// Render writes the changed canvas cells followed by the queued text into the
// chunk writer. The caller decides when to Flush.
func (r *TermRenderer) Render() error {
	if err := r.canvas.Render(r.out); err != nil {
		return err
	}

	width := r.canvas.TerminalWidth()
	for _, t := range r.texts {
		col, row := r.canvas.LogicalToTerminal(t.origin.X, t.origin.Y)
		if row < 1 || row > r.canvas.TerminalHeight() || col > width {
			continue
		}
		col = max(col, 1)
		s := t.s
		if col+len(s)-1 > width {
			s = s[:width-col+1]
		}
		r.out.MoveCursor(col, row)
		if !t.color.IsZero() {
			r.out.WriteString(t.color.ANSI())
		}
		r.out.WriteString(s)
		r.out.WriteString(ColorReset)
		r.canvas.MarkTextDirty(col, row, len(s))
	}
	return nil
}
