//go:build js && wasm
// +build js,wasm

package canvas

import (
	"fmt"
	"syscall/js"

	"github.com/esimov/ascii-particles/input"
	"github.com/esimov/ascii-particles/loop"
	"github.com/esimov/ascii-particles/particle"
	"github.com/esimov/ascii-particles/surface"
)

type app struct {
	manager *surface.Manager
	system  *particle.System
	router  *input.Router
	loop    *loop.Loop
	funcs   []js.Func
}

// Render binds the particle system to the canvas, registers the
// page listeners and starts the animation.
func (c *Canvas) Render() error {
	manager, err := surface.NewManager(c, surface.ViewportFunc(c.ViewportSize))
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	system, err := particle.NewSystem(manager)
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	a := &app{
		manager: manager,
		system:  system,
		router: input.NewRouter(system, c.ViewportSize,
			input.NewGate(input.PointerThreshold, nil),
			input.NewGate(input.ScrollThreshold, nil),
		),
	}
	if a.loop, err = loop.New(newAnimationFrame(), system.Frame); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	c.app = a

	c.listen(c.doc, "mousemove", func(ev js.Value) {
		a.router.Route(input.Event{
			Kind: input.Move,
			X:    ev.Get("clientX").Float(),
			Y:    ev.Get("clientY").Float(),
		})
	})
	c.listen(c.window, "scroll", func(js.Value) {
		a.router.Route(input.Event{Kind: input.Scroll, Offset: c.window.Get("scrollY").Float()})
	})
	c.listen(c.window, "resize", func(js.Value) {
		a.manager.Resize()
	})
	c.listen(c.doc, "visibilitychange", func(js.Value) {
		if c.doc.Get("hidden").Bool() {
			a.loop.Pause()
		} else {
			a.loop.Resume()
		}
	})

	a.loop.Start()
	return nil
}

func (c *Canvas) listen(target js.Value, event string, fn func(js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			fn(args[0])
		} else {
			fn(js.Undefined())
		}
		return nil
	})
	c.app.funcs = append(c.app.funcs, f)
	target.Call("addEventListener", event, f)
}
