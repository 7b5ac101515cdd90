//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/esimov/ascii-particles/detector"
	"github.com/esimov/ascii-particles/wasm/canvas"
)

func main() {
	c, err := canvas.NewCanvas("particleCanvas")
	if err != nil {
		canvas.Alert(err.Error())
		return
	}
	if err := c.Render(); err != nil {
		canvas.Alert(err.Error())
		return
	}

	// Face driven spawning is optional: it needs a camera and the cascade file.
	if cascade, err := c.ParseCascade("/cascade/facefinder"); err == nil {
		if det, err := detector.New(cascade); err == nil {
			if err := c.StartWebcam(det); err != nil {
				c.Log("webcam not available:", err.Error())
			}
		} else {
			c.Log(err.Error())
		}
	}

	select {}
}
