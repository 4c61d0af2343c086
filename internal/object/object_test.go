package object

import (
	"fmt"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
)

// seqRandom returns the scripted values in order, then repeats the last.
type seqRandom struct {
	vals  []int
	calls []int
}

func (s *seqRandom) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	if len(s.vals) > 1 {
		s.vals = s.vals[1:]
	}
	return v
}

// held is a DirectionSource with fixed state.
type held struct{ up, down bool }

func (h held) Held(d input.Direction) bool {
	switch d {
	case input.DirUp:
		return h.up
	case input.DirDown:
		return h.down
	}
	return false
}

// point is a BallReader stub.
type point struct{ x, y int }

func (p point) Position() (int, int) { return p.x, p.y }

// recorder captures draw commands as strings.
type recorder struct {
	cmds []string
}

func (r *recorder) Clear(bg draw.Color) {
	r.cmds = append(r.cmds, "clear")
}

func (r *recorder) FillCircle(c draw.Point, radius float64, _ draw.Color) {
	r.cmds = append(r.cmds, fmt.Sprintf("circle %v,%v r%v", c.X, c.Y, radius))
}

func (r *recorder) FillRect(o draw.Point, w, h float64, _ draw.Color) {
	r.cmds = append(r.cmds, fmt.Sprintf("rect %v,%v %vx%v", o.X, o.Y, w, h))
}

func (r *recorder) Line(from, to draw.Point, _ draw.Color) {
	r.cmds = append(r.cmds, fmt.Sprintf("line %v,%v-%v,%v", from.X, from.Y, to.X, to.Y))
}

func (r *recorder) Text(s string, o draw.Point, size int, _ draw.Color) {
	r.cmds = append(r.cmds, fmt.Sprintf("text %q %v,%v s%d", s, o.X, o.Y, size))
}
