package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	. "go.hasen.dev/thermo/slay"
)

func TestTWWKeepsBase(t *testing.T) {
	var base = Attrs{MinSize: Vec2{64, 0}}
	a := TWW(base, Row, Pad2(4, 8))
	assert.True(t, a.Row)
	assert.Equal(t, Vec2{64, 0}, a.MinSize)
	assert.Equal(t, PaddingVH(4, 8), a.Padding)
	assert.False(t, base.Row)
}

func TestComposeAndSpacing(t *testing.T) {
	square := Compose(FixSizeV(Vec2{20, 20}), BR(3))
	a := TW(square, Spacing(5))
	assert.Equal(t, Vec2{20, 20}, a.MinSize)
	assert.Equal(t, Vec2{20, 20}, a.MaxSize)
	assert.Equal(t, N4(3), a.Corners)
	assert.Equal(t, N4(5), a.Padding)
	assert.Equal(t, float32(5), a.Gap)
}

func TestGlowAndShadow(t *testing.T) {
	var c = Vec4{120, 50, 50, 0.2}
	assert.Equal(t, Shadow{Blur: 20, Spread: 20, Color: c}, TW(Glow(20, 20, c)).Shadow)
	assert.Equal(t, Vec2{0, 1}, TW(Shd(3)).Shadow.Offset)
}

func TestTextAttrs(t *testing.T) {
	a := TTW(Sz(24), Clr(0, 0, 10, 1), FontWeight(WeightBold), Fonts("A"), Fonts("B"))
	assert.Equal(t, float32(24), a.Size)
	assert.Equal(t, Vec4{0, 0, 10, 1}, a.Color)
	assert.Equal(t, WeightBold, a.Weight)
	assert.Equal(t, []string{"A", "B"}, a.Families)
}
