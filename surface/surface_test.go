package surface

import (
	"image/color"
	"testing"
)

var black = color.RGBA{A: 0xff}

func TestNewManagerRejectsMissingSurface(t *testing.T) {
	if _, err := NewManager(nil, Fixed{W: 10, H: 10}); err != ErrInvalidSurface {
		t.Fatalf("expected ErrInvalidSurface for nil canvas, got %v", err)
	}
	if _, err := NewManager(NewRaster(black), nil); err != ErrInvalidSurface {
		t.Fatalf("expected ErrInvalidSurface for nil viewport, got %v", err)
	}

	tests := []struct {
		name   string
		canvas Canvas
	}{
		{"nil raster", (*Raster)(nil)},
		{"zero raster", &Raster{}},
		{"nil list", (*List)(nil)},
	}
	for _, tt := range tests {
		if _, err := NewManager(tt.canvas, Fixed{W: 10, H: 10}); err != ErrInvalidSurface {
			t.Errorf("%s: expected ErrInvalidSurface, got %v", tt.name, err)
		}
	}
}

func TestManagerValid(t *testing.T) {
	var nilManager *Manager
	if nilManager.Valid() {
		t.Error("nil manager reported as valid")
	}
	if (&Manager{}).Valid() {
		t.Error("unbound manager reported as valid")
	}
	m, err := NewManager(new(List), Fixed{W: 4, H: 4})
	if err != nil {
		t.Fatal(err)
	}
	if !m.Valid() {
		t.Error("bound manager reported as invalid")
	}
}

func TestManagerResizeOnConstruction(t *testing.T) {
	m, err := NewManager(NewRaster(black), Fixed{W: 80, H: 24})
	if err != nil {
		t.Fatal(err)
	}
	if w, h := m.Size(); w != 80 || h != 24 {
		t.Fatalf("expected 80x24, got %dx%d", w, h)
	}
}

func TestManagerTracksViewport(t *testing.T) {
	w, h := 40, 20
	m, err := NewManager(NewRaster(black), ViewportFunc(func() (int, int) { return w, h }))
	if err != nil {
		t.Fatal(err)
	}

	w, h = 120, 50
	m.Resize()
	if gw, gh := m.Size(); gw != 120 || gh != 50 {
		t.Fatalf("expected 120x50 after resize, got %dx%d", gw, gh)
	}

	w, h = -5, 10
	m.Resize()
	if gw, gh := m.Size(); gw != 0 || gh != 10 {
		t.Fatalf("negative viewport should clamp to 0, got %dx%d", gw, gh)
	}
}

func TestResizeIsIdempotent(t *testing.T) {
	r := NewRaster(black)
	m, err := NewManager(r, Fixed{W: 16, H: 16})
	if err != nil {
		t.Fatal(err)
	}
	red := color.RGBA{R: 0xff, A: 0xff}
	m.FillCircle(8, 8, 2, red, 1)
	img := r.Image()

	m.Resize()
	m.Resize()

	if w, h := m.Size(); w != 16 || h != 16 {
		t.Fatalf("expected 16x16, got %dx%d", w, h)
	}
	if r.Image() != img {
		t.Fatal("resize to the same size should keep the pixel buffer")
	}
	if got := r.RGBAAt(8, 8); got != red {
		t.Fatalf("expected pixels to survive an unchanged resize, got %v", got)
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(black)
	r.SetSize(20, 20)

	cyan := color.RGBA{G: 0xb6, B: 0xd4, A: 0xff}
	r.FillCircle(10, 10, 3, cyan, 1)

	if got := r.RGBAAt(10, 10); got != cyan {
		t.Errorf("center pixel: expected %v, got %v", cyan, got)
	}
	if got := r.RGBAAt(0, 0); got != black {
		t.Errorf("corner pixel should stay background, got %v", got)
	}
	if got := r.RGBAAt(14, 10); got != black {
		t.Errorf("pixel outside the radius should stay background, got %v", got)
	}
}

func TestRasterFillCircleAlpha(t *testing.T) {
	r := NewRaster(black)
	r.SetSize(8, 8)

	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	r.FillCircle(4, 4, 1, white, 0.5)

	got := r.RGBAAt(3, 3)
	if got.R == 0 || got.R == 0xff {
		t.Fatalf("half transparent fill should blend with the background, got %v", got)
	}
	if got.A != 0xff {
		t.Fatalf("compositing over an opaque background must stay opaque, got alpha %d", got.A)
	}
}

func TestRasterFillCircleOffSurface(t *testing.T) {
	r := NewRaster(black)
	r.SetSize(8, 8)

	red := color.RGBA{R: 0xff, A: 0xff}
	r.FillCircle(-20, -20, 2, red, 1)
	r.FillCircle(4, 4, 2, red, 0)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := r.RGBAAt(x, y); got != black {
				t.Fatalf("pixel {%d, %d} was painted: %v", x, y, got)
			}
		}
	}
}

func TestRasterClear(t *testing.T) {
	bg := color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	r := NewRaster(bg)
	r.SetSize(4, 4)
	r.FillCircle(2, 2, 2, color.RGBA{R: 0xff, A: 0xff}, 1)
	r.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := r.RGBAAt(x, y); got != bg {
				t.Fatalf("pixel {%d, %d} not cleared: %v", x, y, got)
			}
		}
	}
}

func TestListRecordsAndReplays(t *testing.T) {
	var l List
	m, err := NewManager(&l, Fixed{W: 10, H: 10})
	if err != nil {
		t.Fatal(err)
	}
	red := color.RGBA{R: 0xff, A: 0xff}
	m.FillCircle(5, 5, 2, red, 1)
	m.FillCircle(1, 1, 1, red, 0.5)

	if len(l.Circles) != 2 || l.Circles[1] != (Circle{X: 1, Y: 1, R: 1, C: red, Alpha: 0.5}) {
		t.Fatalf("unexpected recording: %+v", l.Circles)
	}

	r := NewRaster(black)
	r.SetSize(10, 10)
	l.Replay(r)
	if got := r.RGBAAt(5, 5); got != red {
		t.Fatalf("replay did not paint the raster, got %v", got)
	}

	m.Clear()
	if len(l.Circles) != 0 {
		t.Fatal("clear should drop the recording")
	}
}
