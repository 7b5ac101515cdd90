package terminal

import (
	"fmt"
	"image/color"
)

// shades orders the block glyphs by coverage.
var shades = [...]rune{'░', '▒', '▓', '█'}

// glyph picks a block character whose density follows how far the
// pixel is from the background.
func glyph(c, bg color.RGBA) rune {
	d := maxDelta(c.R, bg.R)
	if v := maxDelta(c.G, bg.G); v > d {
		d = v
	}
	if v := maxDelta(c.B, bg.B); v > d {
		d = v
	}
	i := int(d) * len(shades) / 0x100
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}

func maxDelta(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// xterm256 maps a color to the closest entry of the 6x6x6 xterm color cube.
func xterm256(c color.RGBA) int {
	q := func(v uint8) int {
		return (int(v)*5 + 127) / 0xff
	}
	return 16 + 36*q(c.R) + 6*q(c.G) + q(c.B)
}

func hud(particles int, frames uint64) string {
	return fmt.Sprintf(" particles: %d  frames: %d ", particles, frames)
}
