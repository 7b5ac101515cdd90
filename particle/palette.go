package particle

import "image/color"

// Palette holds the colors a particle can be spawned with.
var Palette = [...]color.RGBA{
	{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}, // indigo
	{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff}, // cyan
	{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}, // orange
}

// Spawn ranges. Lower bounds are inclusive, upper bounds exclusive.
const (
	MinRadius  = 1.0
	MaxRadius  = 3.0
	MinOpacity = 0.3
	MaxOpacity = 0.8
	MaxSpeed   = 1.0

	// Decay is the opacity lost by every particle on each frame.
	Decay = 0.01
)
