package loop

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
)

// TcellFrontend plays a match on a local tcell screen.
type TcellFrontend struct {
	*draw.TcellRenderer
	events *input.EventSource
	now    func() time.Time
}

var _ Frontend = (*TcellFrontend)(nil)

// NewTcellFrontend renders a court of the given logical size on screen and
// starts reading its key events. The screen must already be initialized.
func NewTcellFrontend(screen tcell.Screen, courtWidth, courtHeight int) *TcellFrontend {
	return &TcellFrontend{
		TcellRenderer: draw.NewTcellRenderer(screen, float64(courtWidth), float64(courtHeight)),
		events:        input.StartEvents(screen),
		now:           time.Now,
	}
}

// Poll drains pending key events.
func (f *TcellFrontend) Poll() input.Input {
	return f.events.Read(f.now())
}

// Present flushes the frame to the screen.
func (f *TcellFrontend) Present() error {
	f.Show()
	return nil
}
