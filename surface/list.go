package surface

import "image/color"

// Circle is a recorded FillCircle call.
type Circle struct {
	X, Y, R float64
	C       color.RGBA
	Alpha   float64
}

// List is a canvas which records the circles painted since the last Clear,
// for hosts that can only paint inside their own draw callback.
type List struct {
	w, h    int
	Circles []Circle
}

// Valid reports whether l is non-nil. The zero List is ready to use.
func (l *List) Valid() bool {
	return l != nil
}

// SetSize sets the canvas dimensions.
func (l *List) SetSize(w, h int) {
	l.w, l.h = w, h
}

// Size returns the canvas dimensions.
func (l *List) Size() (int, int) {
	return l.w, l.h
}

// Clear drops the recorded circles.
func (l *List) Clear() {
	l.Circles = l.Circles[:0]
}

// FillCircle records a circle.
func (l *List) FillCircle(x, y, r float64, c color.RGBA, alpha float64) {
	l.Circles = append(l.Circles, Circle{X: x, Y: y, R: r, C: c, Alpha: alpha})
}

// Replay paints the recorded circles on dst, in order.
func (l *List) Replay(dst Painter) {
	for _, c := range l.Circles {
		dst.FillCircle(c.X, c.Y, c.R, c.C, c.Alpha)
	}
}
