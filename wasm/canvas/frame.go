//go:build js && wasm
// +build js,wasm

package canvas

import "syscall/js"

// animationFrame is a loop.Scheduler built on requestAnimationFrame.
// The browser stops firing it while the page is hidden.
type animationFrame struct {
	window  js.Value
	cb      js.Func
	pending []func()
}

func newAnimationFrame() *animationFrame {
	a := &animationFrame{window: js.Global()}
	a.cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		run := a.pending
		a.pending = nil
		for _, fn := range run {
			fn()
		}
		return nil
	})
	return a
}

func (a *animationFrame) Next(fn func()) {
	if len(a.pending) == 0 {
		a.window.Call("requestAnimationFrame", a.cb)
	}
	a.pending = append(a.pending, fn)
}
