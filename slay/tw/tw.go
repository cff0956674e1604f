// Package tw builds Attrs and TextAttrs from small composable setters, in the
// spirit of tailwind classes: TW(Row, Gap(8), BR(4)).
package tw

import . "go.hasen.dev/thermo/slay"

type f32 = float32

type AttrsFn func(*Attrs)

func TW(fns ...AttrsFn) Attrs {
	return TWW(Attrs{}, fns...)
}

// TWW applies fns on top of base
func TWW(base Attrs, fns ...AttrsFn) Attrs {
	for _, f := range fns {
		f(&base)
	}
	return base
}

// Compose bundles several setters into one, for styles used in more than one place
func Compose(fns ...AttrsFn) AttrsFn {
	return func(a *Attrs) {
		for _, f := range fns {
			f(a)
		}
	}
}

// -----------------------------------------------------------------------------
//      Layout
// -----------------------------------------------------------------------------

func Row(a *Attrs) { a.Row = true }
func Expand(a *Attrs) { a.ExpandAcross = true }
func CrossMid(a *Attrs) { a.CrossAlign = AlignMiddle }

func Center(a *Attrs) {
	a.MainAlign = AlignMiddle
	a.CrossAlign = AlignMiddle
}

func CA(v Alignment) AttrsFn { return func(a *Attrs) { a.CrossAlign = v } }
func Gap(v f32) AttrsFn { return func(a *Attrs) { a.Gap = v } }
func Grow(v f32) AttrsFn { return func(a *Attrs) { a.Grow = v } }
func Pad(v f32) AttrsFn { return func(a *Attrs) { a.Padding = N4(v) } }
func PadV(v Vec4) AttrsFn { return func(a *Attrs) { a.Padding = v } }
func Pad2(v, h f32) AttrsFn { return func(a *Attrs) { a.Padding = PaddingVH(v, h) } }

// Spacing pads the container and separates its children by the same amount
func Spacing(v f32) AttrsFn {
	return Compose(Pad(v), Gap(v))
}

// FloatV takes the container out of the flow, placed at v
func FloatV(v Vec2) AttrsFn {
	return func(a *Attrs) {
		a.Floats = true
		a.Float = v
	}
}

// -----------------------------------------------------------------------------
//      Size
// -----------------------------------------------------------------------------

func MinSize(w, h f32) AttrsFn { return func(a *Attrs) { a.MinSize = Vec2{w, h} } }

func FixSizeV(v Vec2) AttrsFn {
	return func(a *Attrs) {
		a.MinSize = v
		a.MaxSize = v
	}
}

// -----------------------------------------------------------------------------
//      Paint
// -----------------------------------------------------------------------------

func BG(h, s, l, a f32) AttrsFn { return BGV(Vec4{h, s, l, a}) }
func BGV(v Vec4) AttrsFn { return func(a *Attrs) { a.Background = v } }

// Grad shifts the bottom color of the background by the given hsla deltas
func Grad(dh, ds, dl, da f32) AttrsFn {
	return func(a *Attrs) { a.Gradient = Vec4{dh, ds, dl, da} }
}

// border
func BW(w f32) AttrsFn { return func(a *Attrs) { a.BorderWidth = w } }
func Bo(h, s, l, al f32) AttrsFn { return func(a *Attrs) { a.BorderColor = Vec4{h, s, l, al} } }

// border radius
func BR(r f32) AttrsFn { return func(a *Attrs) { a.Corners = N4(r) } }

// drop shadow, one unit below the container
func Shd(blur f32) AttrsFn {
	return func(a *Attrs) {
		a.Shadow = Shadow{Blur: blur, Offset: Vec2{0, 1}, Color: Vec4{0, 0, 0, 0.5}}
	}
}

// Glow is an unshifted shadow: css `box-shadow: 0 0 blur spread color`
func Glow(blur, spread f32, color Vec4) AttrsFn {
	return func(a *Attrs) {
		a.Shadow = Shadow{Blur: blur, Spread: spread, Color: color}
	}
}

// -----------------------------------------------------------------------------
//      Text
// -----------------------------------------------------------------------------

type TextAttrsFn func(*TextAttrs)

func TTW(fns ...TextAttrsFn) TextAttrs {
	var a = DefaultTextAttrs()
	for _, fn := range fns {
		fn(&a)
	}
	return a
}

func Label(text string, fns ...TextAttrsFn) {
	Text(text, TTW(fns...))
}

func Clr(h, s, l, a f32) TextAttrsFn { return ClrV(Vec4{h, s, l, a}) }
func ClrV(v Vec4) TextAttrsFn { return func(a *TextAttrs) { a.Color = v } }
func Sz(size f32) TextAttrsFn { return func(a *TextAttrs) { a.Size = size } }
func FontWeight(w Weight) TextAttrsFn { return func(a *TextAttrs) { a.Weight = w } }
func Fonts(fs ...string) TextAttrsFn { return func(a *TextAttrs) { a.Families = append(a.Families, fs...) } }
