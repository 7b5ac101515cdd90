// Package surface manages the drawing target the particle field is painted on
// and keeps its pixel dimensions in sync with the hosting viewport.
package surface

import (
	"errors"
	"image/color"
)

// ErrInvalidSurface is returned when a manager is built without a canvas or a viewport.
var ErrInvalidSurface = errors.New("surface: invalid drawing surface")

// Painter fills circles.
type Painter interface {
	FillCircle(x, y, r float64, c color.RGBA, alpha float64)
}

// Canvas is a 2D drawing target with resizable pixel dimensions.
type Canvas interface {
	Painter
	SetSize(w, h int)
	Size() (w, h int)
	Clear()
}

// Viewport reports the current dimensions of the area hosting the canvas.
type Viewport interface {
	Size() (w, h int)
}

// ViewportFunc adapts a plain function to the Viewport interface.
type ViewportFunc func() (w, h int)

// Size calls f.
func (f ViewportFunc) Size() (int, int) {
	return f()
}

// Fixed is a viewport with constant dimensions.
type Fixed struct {
	W, H int
}

// Size returns the fixed dimensions.
func (f Fixed) Size() (int, int) {
	return f.W, f.H
}

// validator is implemented by canvases which can report a nil or unusable
// value hidden behind a non-nil interface.
type validator interface {
	Valid() bool
}

// Manager binds a canvas to a viewport.
type Manager struct {
	canvas   Canvas
	viewport Viewport
}

// NewManager binds the canvas to the viewport and performs the initial resize.
func NewManager(c Canvas, v Viewport) (*Manager, error) {
	if c == nil || v == nil {
		return nil, ErrInvalidSurface
	}
	if cv, ok := c.(validator); ok && !cv.Valid() {
		return nil, ErrInvalidSurface
	}
	m := &Manager{canvas: c, viewport: v}
	m.Resize()

	return m, nil
}

// Valid reports whether m is bound to a usable canvas and a viewport.
func (m *Manager) Valid() bool {
	if m == nil || m.canvas == nil || m.viewport == nil {
		return false
	}
	if cv, ok := m.canvas.(validator); ok {
		return cv.Valid()
	}
	return true
}

// Resize reads the viewport dimensions and applies them to the canvas.
// Anything already living on the surface keeps its coordinates,
// even if it now sits outside the new bounds.
func (m *Manager) Resize() {
	w, h := m.viewport.Size()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	m.canvas.SetSize(w, h)
}

// Size returns the current canvas dimensions.
func (m *Manager) Size() (int, int) {
	return m.canvas.Size()
}

// Clear wipes the canvas.
func (m *Manager) Clear() {
	m.canvas.Clear()
}

// FillCircle paints a filled circle on the canvas.
func (m *Manager) FillCircle(x, y, r float64, c color.RGBA, alpha float64) {
	m.canvas.FillCircle(x, y, r, c, alpha)
}

// Canvas returns the bound canvas.
func (m *Manager) Canvas() Canvas {
	return m.canvas
}
