package object

import (
	"strconv"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/loop/config"
)

// scoreOffset shifts each counter left of its quarter line.
const scoreOffset = 20

// ScoreTracker counts points for both sides. Counters only go up.
type ScoreTracker struct {
	left, right int

	courtW int
	size   int
	color  draw.Color
}

// NewScoreTracker creates a tracker at 0:0.
func NewScoreTracker(cfg config.Config) *ScoreTracker {
	return &ScoreTracker{
		courtW: cfg.CourtWidth,
		size:   cfg.ScoreFontSize,
		color:  cfg.Foreground,
	}
}

// RecordExit awards the point for a ball that left through the given wall:
// leaving on the right scores for the left side and vice versa.
func (s *ScoreTracker) RecordExit(wall Side) {
	switch wall {
	case SideRight:
		s.left++
	case SideLeft:
		s.right++
	}
}

// Left returns the left side's points.
func (s *ScoreTracker) Left() int { return s.left }

// Right returns the right side's points.
func (s *ScoreTracker) Right() int { return s.right }

// Labels returns the two counters as positioned text.
func (s *ScoreTracker) Labels() [2]Text {
	return [2]Text{
		{X: s.courtW/4 - scoreOffset, Y: 20, Size: s.size, Color: s.color, Value: strconv.Itoa(s.left)},
		{X: 3*s.courtW/4 - scoreOffset, Y: 20, Size: s.size, Color: s.color, Value: strconv.Itoa(s.right)},
	}
}

// Draw issues both counters as text.
func (s *ScoreTracker) Draw(r draw.Renderer) {
	for _, t := range s.Labels() {
		t.Draw(r)
	}
}
