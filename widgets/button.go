package widgets

import (
	. "go.hasen.dev/thermo/slay"
	. "go.hasen.dev/thermo/slay/tw"
)

const ButtonDefaultSize = DefaultTextSize

type f32 = float32

type ButtonAttrs struct {
	// container id; lets the caller read the press with IdReleased before the
	// button is laid out
	Id any

	Disabled bool
	TextSize f32
	MinWidth f32
}

func Button(label string) bool {
	return ButtonExt(label, ButtonAttrs{})
}

// ButtonExt draws a raised button and reports whether it was clicked this frame
func ButtonExt(label string, attrs ButtonAttrs) bool {
	if attrs.TextSize == 0 {
		attrs.TextSize = ButtonDefaultSize
	}
	var action = false
	var pushDownDistance f32 = 1

	var padh = attrs.TextSize * 0.8
	var padv = padh / 2
	var br = attrs.TextSize * 0.3

	LayoutId(attrs.Id, TW(), func() {
		shadowColor := Vec4{0, 0, 0, 0.6}
		shadowPadding := Vec4{0}

		var light float32 = 95
		var highlight float32 = light + 3
		var presslight float32 = light - 3
		var lightDelta float32 = -8
		var hue float32 = 220
		var sat float32 = 20
		var textLight float32 = 20
		var textAlpha float32 = 1

		if attrs.Disabled {
			// make it flat
			light = 75
			highlight = light
			presslight = light
			lightDelta = 2
			sat = 5
			textLight = 40
			textAlpha = 0.5
		}

		background := Vec4{hue, sat, light, 1}

		if !attrs.Disabled {
			action = PressAction()
			if IsHovered() {
				background[LIGHT] = highlight
			}
		}

		if IsActive() {
			background[LIGHT] = presslight
			ModAttrs(func(a *Attrs) {
				a.Padding[PAD_TOP] = pushDownDistance
			})
		} else {
			shadowPadding[PAD_BOTTOM] = pushDownDistance
		}

		Layout(TW(BGV(shadowColor), PadV(shadowPadding), BR(br)), func() {
			var base = Attrs{MinSize: Vec2{attrs.MinWidth, 0}}
			Layout(TWW(base, Row, Center, BR(br), Pad2(padv, padh), BGV(background), Grad(0, 0, lightDelta, 0), Bo(0, 0, 0, 0.4), BW(1)), func() {
				Label(label, Sz(attrs.TextSize), Clr(240, 10, textLight, textAlpha), FontWeight(WeightSemibold))
			})
		})
	})
	return action
}
