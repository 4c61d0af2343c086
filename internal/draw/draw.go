// Package draw rasterizes court-space draw commands onto terminal cells.
package draw

import (
	"strconv"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Pt builds a Point from integer coordinates.
func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is an RGBA color. The zero value is transparent.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{A: 255}
)

// IsZero reports whether c is fully transparent.
func (c Color) IsZero() bool {
	return c.A == 0
}

// ANSI escape sequences for text attributes.
const (
	ColorReset = "\033[0m"
)

// ANSI returns the truecolor foreground escape sequence for c.
func (c Color) ANSI() string {
	buf := make([]byte, 0, 20)
	buf = append(buf, "\033[38;2;"...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, 'm')
	return string(buf)
}

// Renderer accepts the draw commands issued by the game each tick.
// Coordinates are in court space; implementations scale them to their output.
type Renderer interface {
	// Clear starts a new frame with the given backdrop.
	Clear(bg Color)
	FillCircle(center Point, radius float64, c Color)
	FillRect(origin Point, width, height float64, c Color)
	Line(from, to Point, c Color)
	// Text draws s with its top-left corner at origin. size is the font
	// height in court pixels; cell-based renderers treat it as a hint.
	Text(s string, origin Point, size int, c Color)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
