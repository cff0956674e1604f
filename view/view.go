// Package view draws the temperature picker with slay.
package view

import (
	. "go.hasen.dev/thermo/slay"
	. "go.hasen.dev/thermo/slay/tw"
	"go.hasen.dev/thermo/thermostat"
	"go.hasen.dev/thermo/widgets"
)

const (
	Title = "Pick your temperature:"

	BoxSize    = 200
	GlowBlur   = 20
	GlowSpread = 20

	DecrementId = "decrement"
	IncrementId = "increment"
)

var boxShape = Compose(FixSizeV(Vec2{BoxSize, BoxSize}), BR(16), Center)

var (
	DarkText  = Vec4{0, 0, 10, 1}
	LightText = Vec4{0, 0, 100, 1}
	PageColor = Vec4{0, 0, 100, 1}
)

type Options struct {
	// both may be flipped by the front end between frames
	Sound bool
	Debug bool

	// runs once, right after the model is created on the first frame
	OnCreate func(m *thermostat.Model)
}

func ToneColor(t thermostat.Tone) Vec4 {
	if t == thermostat.ToneDark {
		return DarkText
	}
	return LightText
}

// TemperatureControl is the frame function of the picker. The model lives in
// a hook on the root container, so it survives across frames.
func TemperatureControl(opts *Options) {
	model := UseWithInit("thermostat", func() *thermostat.Model {
		m := thermostat.New()
		if opts.OnCreate != nil {
			opts.OnCreate(m)
		}
		return m
	})

	// buttons are read against last frame's layout so this frame already
	// paints the new temperature
	switch {
	case KeyPressed('-', KeyLeft, KeyDown), IdReleased(DecrementId):
		model.Decrement()
	case KeyPressed('+', '=', KeyRight, KeyUp), IdReleased(IncrementId):
		model.Increment()
	}

	snap := model.Snapshot()
	primary := snap.Color.HSLA(1)
	softer := snap.Color.HSLA(thermostat.SofterAlpha)

	LayoutId("page", TW(Expand, Grow(1), BGV(PageColor)), func() {
		LayoutId("tint", TW(Expand, Grow(1), BGV(softer), Center, Gap(40)), func() {
			Label(Title, Sz(28), FontWeight(WeightBold), ClrV(DarkText))

			LayoutId("box", TW(boxShape, BGV(primary), Glow(GlowBlur, GlowSpread, softer)), func() {
				Label(snap.Label, Sz(36), FontWeight(WeightSemibold), ClrV(ToneColor(snap.Tone)))
			})

			Layout(TW(Row, Gap(24)), func() {
				widgets.ButtonExt("-", widgets.ButtonAttrs{Id: DecrementId, TextSize: 24, MinWidth: 64})
				widgets.ButtonExt("+", widgets.ButtonAttrs{Id: IncrementId, TextSize: 24, MinWidth: 64})
			})

			LayoutId("sound", TW(), func() {
				widgets.LabeledSwitch(&opts.Sound, "sound", Sz(12), ClrV(DarkText))
			})
		})
	})

	if opts.Debug {
		widgets.DebugVar("temperature", snap.Temperature)
		widgets.DebugVar("background", snap.Background)
		widgets.DebugVar("softer", snap.Softer)
		widgets.DebugVar("tone", snap.Tone.String())
	}
	widgets.DebugPanel(opts.Debug)
}
