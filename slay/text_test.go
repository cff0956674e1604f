package slay

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// no font subsystem in tests: every rune falls back to the missing-glyph advance

func TestTextWidthWithoutFonts(t *testing.T) {
	attrs := DefaultTextAttrs()
	attrs.Size = 10
	assert.Equal(t, f32(10), TextWidth("ab", attrs))
	assert.Equal(t, f32(0), TextWidth("", attrs))
	// runes, not bytes
	assert.Equal(t, f32(5), TextWidth("🥵", attrs))
}

func TestTextLayout(t *testing.T) {
	resetInput()
	WindowSize = Vec2{200, 100}
	attrs := DefaultTextAttrs()
	attrs.Size = 20
	attrs.Color = Vec4{0, 0, 100, 1}

	out := RunFrameFn(func() {
		LayoutId("line", Attrs{}, func() {
			Text("abc", attrs)
		})
	})

	// one text row + 3 glyphs, plus root and wrapper
	assert.Equal(t, Vec2{30, 25}, GetResolvedRectOf("line").Size)

	var glyphs int
	for _, s := range out.Surfaces {
		if s.Color1 == attrs.Color {
			glyphs++
			assert.Equal(t, f32(20), s.Rect.Size[1])
		}
	}
	assert.Equal(t, 3, glyphs)
}

func TestHSLAColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, HSLAColor(Vec4{0, 100, 50, 1}))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 51}, HSLAColor(Vec4{0, 0, 100, 0.2}))
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 0, A: 0}, HSLAColor(Vec4{0, 0, 0, -1}))
}

func TestFallbackWithoutFonts(t *testing.T) {
	fid, gid := FallbackFontFor('x', DefaultFontAspect())
	assert.Equal(t, FontId(0), fid)
	assert.Equal(t, GlyphId(0), gid)
}
