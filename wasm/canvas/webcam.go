//go:build js && wasm
// +build js,wasm

package canvas

import (
	"errors"
	"syscall/js"

	"github.com/esimov/ascii-particles/detector"
	"github.com/esimov/ascii-particles/input"
)

const (
	webcamWidth  = 640
	webcamHeight = 480
	detectEvery  = 10 // Run the face detector once every n animation frames
)

// StartWebcam streams the webcam into an offscreen canvas and spawns
// particles around the faces found by the detector.
func (c *Canvas) StartWebcam(det *detector.Detector) error {
	if c.app == nil {
		return errors.New("webcam: the canvas is not rendering")
	}
	media := c.window.Get("navigator").Get("mediaDevices")
	if media.IsUndefined() {
		return errors.New("webcam: media devices are not supported")
	}

	video := c.doc.Call("createElement", "video")
	video.Set("autoplay", true)
	video.Set("muted", true)
	video.Set("playsInline", true)

	offscreen := c.doc.Call("createElement", "canvas")
	offscreen.Set("width", webcamWidth)
	offscreen.Set("height", webcamHeight)
	ctx := offscreen.Call("getContext", "2d")

	gate := input.NewGate(input.PointerThreshold, nil)
	frame := 0
	pixels := make([]byte, webcamWidth*webcamHeight*4)

	var tick js.Func
	tick = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if frame++; frame%detectEvery == 0 {
			ctx.Call("drawImage", video, 0, 0, webcamWidth, webcamHeight)
			data := ctx.Call("getImageData", 0, 0, webcamWidth, webcamHeight).Get("data")
			js.CopyBytesToGo(pixels, data)

			gray := detector.Grayscale(pixels, webcamWidth, webcamHeight)
			w, h := c.Size()
			for _, p := range detector.Scale(det.Detect(gray, webcamWidth, webcamHeight), webcamWidth, webcamHeight, w, h) {
				if gate.Allow() {
					c.app.system.SpawnAt(p.X, p.Y)
				}
			}
		}
		c.window.Call("requestAnimationFrame", tick)
		return nil
	})
	c.app.funcs = append(c.app.funcs, tick)

	constraints := map[string]interface{}{
		"audio": false,
		"video": map[string]interface{}{"width": webcamWidth, "height": webcamHeight},
	}
	var onStream, onError js.Func
	onStream = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		video.Set("srcObject", args[0])
		video.Call("play")
		c.window.Call("requestAnimationFrame", tick)
		return nil
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		c.Log("webcam not detected:", args[0])
		return nil
	})
	c.app.funcs = append(c.app.funcs, onStream, onError)

	media.Call("getUserMedia", constraints).Call("then", onStream).Call("catch", onError)

	return nil
}
