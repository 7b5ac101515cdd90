package terminal

import (
	"image/color"
	"testing"

	"github.com/esimov/ascii-particles/input"
	"github.com/gdamore/tcell/v2"
)

func newSimulation(t *testing.T) (*Tcell, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	b := NewTcell(sim)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(b.Close)
	sim.SetSize(40, 20)

	return b, sim
}

// next skips the events the simulation screen emits on its own.
func next(b *Tcell) input.Event {
	for {
		ev := b.PollEvent()
		if ev.Kind != input.None && ev.Kind != input.Resize {
			return ev
		}
	}
}

func TestTcellEvents(t *testing.T) {
	b, sim := newSimulation(t)

	sim.InjectMouse(3, 4, tcell.ButtonNone, tcell.ModNone)
	if ev := next(b); ev.Kind != input.Move || ev.X != 3 || ev.Y != 4 {
		t.Fatalf("expected a move to {3, 4}, got %+v", ev)
	}

	sim.InjectMouse(1, 1, tcell.WheelDown, tcell.ModNone)
	if ev := next(b); ev.Kind != input.Scroll {
		t.Fatalf("expected a scroll, got %+v", ev)
	}

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if ev := next(b); ev.Kind != input.Quit {
		t.Fatalf("expected quit on escape, got %+v", ev)
	}
}

func TestTcellCells(t *testing.T) {
	b, sim := newSimulation(t)

	b.Clear()
	b.SetCell(2, 3, '▓', color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff})
	if err := b.Flush(); err != nil {
		t.Fatal(err)
	}

	if ch, _, _, _ := sim.GetContent(2, 3); ch != '▓' {
		t.Fatalf("expected the glyph to be drawn, got %q", ch)
	}
	if w, h := b.Size(); w != 40 || h != 20 {
		t.Fatalf("expected 40x20, got %dx%d", w, h)
	}
}

func TestTcellInterrupt(t *testing.T) {
	b, _ := newSimulation(t)
	b.Interrupt()
	for {
		if ev := b.PollEvent(); ev.Kind == input.None {
			return
		}
	}
}
