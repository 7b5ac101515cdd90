//go:build js && wasm
// +build js,wasm

// Package canvas binds the particle field to an HTML canvas element.
package canvas

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"net/http"
	"net/url"
	"syscall/js"
	"time"

	"github.com/esimov/ascii-particles/surface"
)

// Canvas is a surface.Canvas painting on a 2D canvas context.
type Canvas struct {
	window js.Value
	doc    js.Value
	el     js.Value
	ctx    js.Value
	w, h   int

	app *app
}

// NewCanvas binds the canvas element with the given id.
func NewCanvas(id string) (*Canvas, error) {
	c := &Canvas{
		window: js.Global(),
		doc:    js.Global().Get("document"),
	}
	c.el = c.doc.Call("getElementById", id)
	if c.el.IsNull() || c.el.IsUndefined() {
		return nil, fmt.Errorf("canvas %q not found: %w", id, surface.ErrInvalidSurface)
	}
	c.ctx = c.el.Call("getContext", "2d")
	if c.ctx.IsNull() {
		return nil, fmt.Errorf("canvas %q has no 2d context: %w", id, surface.ErrInvalidSurface)
	}
	return c, nil
}

// SetSize sets the canvas pixel dimensions.
func (c *Canvas) SetSize(w, h int) {
	c.w, c.h = w, h
	c.el.Set("width", w)
	c.el.Set("height", h)
}

// Size returns the canvas pixel dimensions.
func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

// Clear clears the whole canvas.
func (c *Canvas) Clear() {
	c.ctx.Call("clearRect", 0, 0, c.w, c.h)
}

// FillCircle fills a circle using alpha as the global alpha.
func (c *Canvas) FillCircle(x, y, r float64, clr color.RGBA, alpha float64) {
	c.ctx.Set("fillStyle", fmt.Sprintf("#%02x%02x%02x", clr.R, clr.G, clr.B))
	c.ctx.Set("globalAlpha", alpha)
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	c.ctx.Call("fill")
	c.ctx.Set("globalAlpha", 1)
}

// ViewportSize returns the browser window inner size.
func (c *Canvas) ViewportSize() (int, int) {
	return c.window.Get("innerWidth").Int(), c.window.Get("innerHeight").Int()
}

// ParseCascade loads the cascade file relative to the page location.
func (c *Canvas) ParseCascade(path string) ([]byte, error) {
	href := c.window.Get("location").Get("href")
	u, err := url.Parse(href.String())
	if err != nil {
		return nil, err
	}
	u.Path = path
	u.RawQuery = fmt.Sprint(time.Now().UnixNano())

	c.Log("loading cascade file: " + u.String())
	resp, err := http.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("loading cascade file: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Log calls the `console.log` Javascript function
func (c *Canvas) Log(args ...interface{}) {
	c.window.Get("console").Call("log", args...)
}

// Alert calls the `alert` Javascript function
func Alert(msg string) {
	js.Global().Call("alert", msg)
}
