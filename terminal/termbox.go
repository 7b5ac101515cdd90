package terminal

import (
	"image/color"

	"github.com/esimov/ascii-particles/input"
	"github.com/nsf/termbox-go"
)

// Termbox is a Backend built on termbox-go, using the 256 color output mode.
type Termbox struct {
	w, h int
}

// NewTermbox creates a termbox backend.
func NewTermbox() *Termbox {
	return new(Termbox)
}

// Init initializes termbox and enables mouse reporting.
// termbox reports clicks and drags only, so pointer spawning needs a held button.
func (t *Termbox) Init() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.Output256)
	t.w, t.h = termbox.Size()

	return nil
}

// Close restores the terminal.
func (t *Termbox) Close() {
	termbox.Close()
}

// Size returns the terminal size in cells. The size reported by the last
// resize event wins, since termbox only syncs its back buffer on the next Clear.
func (t *Termbox) Size() (int, int) {
	return t.w, t.h
}

// Clear clears the back buffer.
func (t *Termbox) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// SetCell sets the rune and foreground color of a cell.
func (t *Termbox) SetCell(x, y int, ch rune, fg color.RGBA) {
	termbox.SetCell(x, y, ch, termbox.Attribute(xterm256(fg)+1), termbox.ColorDefault)
}

// Flush synchronizes the back buffer with the terminal.
func (t *Termbox) Flush() error {
	return termbox.Flush()
}

// Interrupt unblocks PollEvent.
func (t *Termbox) Interrupt() {
	termbox.Interrupt()
}

// PollEvent waits for the next termbox event.
func (t *Termbox) PollEvent() input.Event {
	switch ev := termbox.PollEvent(); ev.Type {
	case termbox.EventKey:
		if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
			return input.Event{Kind: input.Quit}
		}
	case termbox.EventMouse:
		x, y := float64(ev.MouseX), float64(ev.MouseY)
		switch ev.Key {
		case termbox.MouseWheelUp, termbox.MouseWheelDown:
			return input.Event{Kind: input.Scroll, X: x, Y: y}
		default:
			return input.Event{Kind: input.Move, X: x, Y: y}
		}
	case termbox.EventResize:
		t.w, t.h = ev.Width, ev.Height
		return input.Event{Kind: input.Resize, W: ev.Width, H: ev.Height}
	case termbox.EventError:
		return input.Event{Kind: input.Quit}
	}
	return input.Event{}
}
