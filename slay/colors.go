package slay

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLAColor converts from the Vec4 color convention (H 0-360, S 0-100,
// L 0-100, A 0-1) to a non-premultiplied color for the backend.
func HSLAColor(c Vec4) color.NRGBA {
	var clr = colorful.Hsl(float64(c[HUE]), float64(c[SATURATION])/100, float64(c[LIGHT])/100)
	r, g, b := clr.Clamped().RGB255()
	return color.NRGBA{
		R: r,
		G: g,
		B: b,
		A: uint8(min(1, max(0, c[ALPHA])) * 0xff),
	}
}
