package gradient

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

func channel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CSS returns the opaque form: rgb(r,g,b)
func (c Color) CSS() string {
	var b strings.Builder
	b.WriteString("rgb(")
	b.WriteString(channel(c[RED]))
	b.WriteByte(',')
	b.WriteString(channel(c[GREEN]))
	b.WriteByte(',')
	b.WriteString(channel(c[BLUE]))
	b.WriteByte(')')
	return b.String()
}

// CSSAlpha returns the translucent form: rgba(r,g,b,a)
func (c Color) CSSAlpha(alpha float64) string {
	var b strings.Builder
	b.WriteString("rgba(")
	b.WriteString(channel(c[RED]))
	b.WriteByte(',')
	b.WriteString(channel(c[GREEN]))
	b.WriteByte(',')
	b.WriteString(channel(c[BLUE]))
	b.WriteByte(',')
	b.WriteString(channel(alpha))
	b.WriteByte(')')
	return b.String()
}

func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: c[RED] / 255,
		G: c[GREEN] / 255,
		B: c[BLUE] / 255,
	}
}

func FromColorful(cc colorful.Color) Color {
	return Color{cc.R * 255, cc.G * 255, cc.B * 255}
}

// Hex is lossy: channels are clamped and rounded.
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// HSLA converts to the UI convention: H 0-360, S 0-100, L 0-100, A 0-1
func (c Color) HSLA(alpha float32) [4]float32 {
	h, s, l := c.Colorful().Clamped().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return [4]float32{float32(h), float32(s * 100), float32(l * 100), alpha}
}

func byte255(v float64) uint8 {
	return uint8(math.Round(min(255, max(0, v))))
}

func (c Color) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: byte255(c[RED]),
		G: byte255(c[GREEN]),
		B: byte255(c[BLUE]),
		A: byte255(alpha * 255),
	}
}

// Over composites c with the given alpha on top of an opaque backdrop.
// Surfaces with no alpha channel (terminals) use this for the translucent color.
func (c Color) Over(backdrop Color, alpha float64) Color {
	return Lerp(backdrop, c, alpha)
}

var White = Color{255, 255, 255}
