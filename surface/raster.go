package surface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Raster is an in-memory canvas backed by an RGBA image.
// Circles are composited over the existing pixels using their alpha.
type Raster struct {
	img *image.RGBA
	bg  color.RGBA
}

// NewRaster creates an empty raster which clears to the bg color.
func NewRaster(bg color.RGBA) *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, 0, 0)),
		bg:  bg,
	}
}

// Valid reports whether r was created with NewRaster.
func (r *Raster) Valid() bool {
	return r != nil && r.img != nil
}

// SetSize reallocates the pixel buffer. Nothing happens if the size is unchanged.
func (r *Raster) SetSize(w, h int) {
	if b := r.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.Clear()
}

// Size returns the raster dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole raster with the background color.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), &image.Uniform{C: r.bg}, image.Point{}, draw.Src)
}

// FillCircle composites a circle centered on {x, y}.
func (r *Raster) FillCircle(x, y, rad float64, c color.RGBA, alpha float64) {
	if rad <= 0 || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	mask := &circle{cx: x, cy: y, r: rad, a: uint8(math.Round(alpha * 0xff))}
	b := mask.Bounds().Intersect(r.img.Bounds())
	if b.Empty() {
		return
	}
	draw.DrawMask(r.img, b, &image.Uniform{C: c}, image.Point{}, mask, b.Min, draw.Over)
}

// RGBAAt returns the pixel at {x, y}.
func (r *Raster) RGBAAt(x, y int) color.RGBA {
	return r.img.RGBAAt(x, y)
}

// Background returns the color the raster is cleared to.
func (r *Raster) Background() color.RGBA {
	return r.bg
}

// Image exposes the underlying pixel buffer.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// circle is an alpha mask which is opaque (up to a) inside the disc
// and transparent outside. Pixels are sampled at their centers.
type circle struct {
	cx, cy, r float64
	a         uint8
}

func (c *circle) ColorModel() color.Model {
	return color.AlphaModel
}

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(c.cx-c.r)),
		int(math.Floor(c.cy-c.r)),
		int(math.Ceil(c.cx+c.r))+1,
		int(math.Ceil(c.cy+c.r))+1,
	)
}

func (c *circle) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - c.cx
	dy := float64(y) + 0.5 - c.cy
	if dx*dx+dy*dy <= c.r*c.r {
		return color.Alpha{A: c.a}
	}
	return color.Alpha{}
}
