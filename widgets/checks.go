package widgets

import (
	. "go.hasen.dev/thermo/slay"
	. "go.hasen.dev/thermo/slay/tw"
)

// iOS style toggle switch; returns true on the frame it was flipped
func ToggleSwitch(on *bool) bool {
	var flipped bool
	Layout(TW(Row, BG(0, 0, 80, 1), Pad(4), CA(AlignMiddle), BR(12), MinSize(40, 20), BW(1), Bo(0, 0, 20, 0.7)), func() {
		if PressAction() {
			*on = !*on
			flipped = true
		}

		if *on {
			ModAttrs(Grad(0, 0, 10, 0))
			// spacer to push the knob to the right
			Element(TW(Grow(1)))
		} else {
			Nil()
		}

		// the knob
		Layout(TW(BR(8), MinSize(16, 16), BG(0, 0, 0, 0.5)), func() {
			if *on {
				ModAttrs(BG(240, 80, 70, 1), Grad(0, 0, -10, 0), Shd(3))
			}
		})
	})
	return flipped
}

// LabeledSwitch is a toggle with a caption to its right
func LabeledSwitch(on *bool, label string, fns ...TextAttrsFn) bool {
	var flipped bool
	Layout(TW(Row, Gap(6), CrossMid), func() {
		flipped = ToggleSwitch(on)
		Label(label, fns...)
	})
	return flipped
}
