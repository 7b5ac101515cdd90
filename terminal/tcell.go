package terminal

import (
	"image/color"

	"github.com/esimov/ascii-particles/input"
	"github.com/gdamore/tcell/v2"
)

// Tcell is a Backend built on tcell, using true color output and focus reporting.
type Tcell struct {
	screen tcell.Screen
	bg     tcell.Color
}

// NewTcell creates a tcell backend on top of screen.
// A nil screen is replaced by the default terminal screen on Init.
func NewTcell(screen tcell.Screen) *Tcell {
	return &Tcell{screen: screen, bg: tcell.ColorBlack}
}

// Init initializes the screen and enables mouse motion and focus events.
func (t *Tcell) Init() error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.EnableFocus()
	t.screen.HideCursor()
	t.screen.SetStyle(tcell.StyleDefault.Background(t.bg))

	return nil
}

// Close finalizes the screen.
func (t *Tcell) Close() {
	t.screen.Fini()
}

// Size returns the screen size in cells.
func (t *Tcell) Size() (int, int) {
	return t.screen.Size()
}

// Clear clears the screen.
func (t *Tcell) Clear() {
	t.screen.Clear()
}

// SetCell sets the rune and foreground color of a cell.
func (t *Tcell) SetCell(x, y int, ch rune, fg color.RGBA) {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(t.bg)
	t.screen.SetContent(x, y, ch, nil, style)
}

// Flush shows the pending changes.
func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}

// Interrupt unblocks PollEvent.
func (t *Tcell) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// PollEvent waits for the next tcell event.
func (t *Tcell) PollEvent() input.Event {
	switch ev := t.screen.PollEvent().(type) {
	case nil:
		return input.Event{Kind: input.Quit}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return input.Event{Kind: input.Quit}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown) != 0 {
			return input.Event{Kind: input.Scroll, X: float64(x), Y: float64(y)}
		}
		return input.Event{Kind: input.Move, X: float64(x), Y: float64(y)}
	case *tcell.EventResize:
		w, h := ev.Size()
		t.screen.Sync()
		return input.Event{Kind: input.Resize, W: w, H: h}
	case *tcell.EventFocus:
		if ev.Focused {
			return input.Event{Kind: input.Focus}
		}
		return input.Event{Kind: input.Blur}
	}
	return input.Event{}
}
