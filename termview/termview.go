// Package termview renders the temperature picker on a terminal with tcell.
package termview

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-runewidth"

	"go.hasen.dev/thermo/gradient"
	"go.hasen.dev/thermo/thermostat"
)

const (
	Title = "Pick your temperature:"
	Help  = "-/+ or arrows to change, q to quit"

	DecrementButton = "[ - ]"
	IncrementButton = "[ + ]"

	BoxWidth  = 22
	BoxHeight = 7

	buttonGap = 4
)

// cell rectangle
type region struct {
	x, y, w, h int
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type View struct {
	screen tcell.Screen
	model  *thermostat.Model
	log    hclog.Logger

	unsubscribe func()

	// hit areas from the last draw
	box, dec, inc region

	lastButtons tcell.ButtonMask
}

// New draws the initial state and redraws on every model change.
func New(screen tcell.Screen, model *thermostat.Model, log hclog.Logger) *View {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	var v = &View{screen: screen, model: model, log: log.Named("tui")}
	v.unsubscribe = model.Subscribe(func(thermostat.Snapshot) {
		v.Draw()
	})
	screen.EnableMouse()
	v.Draw()
	return v
}

func (v *View) Close() {
	v.unsubscribe()
}

// Colors of one frame, all opaque: translucent layers are composited over
// the white page.
type Palette struct {
	Page  tcell.Color
	Glow  tcell.Color
	Box   tcell.Color
	Label tcell.Color
	Text  tcell.Color
}

func PaletteFor(s thermostat.Snapshot) Palette {
	var page = s.Color.Over(gradient.White, thermostat.SofterAlpha)
	var glow = s.Color.Over(page, thermostat.SofterAlpha*2)
	var label = tcell.ColorWhite
	if s.Tone == thermostat.ToneDark {
		label = tcell.ColorBlack
	}
	return Palette{
		Page:  rgb(page),
		Glow:  rgb(glow),
		Box:   rgb(s.Color),
		Label: label,
		Text:  tcell.ColorBlack,
	}
}

func rgb(c gradient.Color) tcell.Color {
	var n = c.NRGBA(1)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

func (v *View) Draw() {
	var snap = v.model.Snapshot()
	var pal = PaletteFor(snap)
	var w, h = v.screen.Size()

	var page = tcell.StyleDefault.Background(pal.Page).Foreground(pal.Text)
	v.fill(region{0, 0, w, h}, page)

	// title, gap, glow, box, glow, gap, buttons
	var top = max(0, (h-(BoxHeight+6))/2)

	v.centered(top, Title, page.Bold(true))

	v.box = region{(w - BoxWidth) / 2, top + 3, BoxWidth, BoxHeight}
	var glow = region{v.box.x - 2, v.box.y - 1, v.box.w + 4, v.box.h + 2}
	v.fill(glow, tcell.StyleDefault.Background(pal.Glow))
	v.fill(v.box, tcell.StyleDefault.Background(pal.Box))
	v.centered(v.box.y+v.box.h/2, snap.Label, tcell.StyleDefault.Background(pal.Box).Foreground(pal.Label).Bold(true))

	var buttonsY = glow.y + glow.h + 1
	var buttonsW = runewidth.StringWidth(DecrementButton) + buttonGap + runewidth.StringWidth(IncrementButton)
	var x = (w - buttonsW) / 2
	var button = page.Reverse(true)
	v.dec = region{x, buttonsY, runewidth.StringWidth(DecrementButton), 1}
	v.text(v.dec.x, buttonsY, DecrementButton, button)
	v.inc = region{v.dec.x + v.dec.w + buttonGap, buttonsY, runewidth.StringWidth(IncrementButton), 1}
	v.text(v.inc.x, buttonsY, IncrementButton, button)

	if h > buttonsY+2 {
		v.centered(h-1, Help, page.Dim(true))
	}

	v.screen.Show()
}

func (v *View) fill(r region, style tcell.Style) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			v.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (v *View) centered(y int, s string, style tcell.Style) {
	var w, _ = v.screen.Size()
	v.text((w-runewidth.StringWidth(s))/2, y, s, style)
}

// HandleEvent applies one terminal event; it returns false when the user
// asked to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft, tcell.KeyDown:
			v.model.Decrement()
		case tcell.KeyRight, tcell.KeyUp:
			v.model.Increment()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case '-', '_':
				v.model.Decrement()
			case '+', '=':
				v.model.Increment()
			}
		}

	case *tcell.EventMouse:
		var buttons = ev.Buttons()
		var pressed = buttons&tcell.Button1 != 0 && v.lastButtons&tcell.Button1 == 0
		v.lastButtons = buttons
		if pressed {
			var x, y = ev.Position()
			switch {
			case v.dec.contains(x, y):
				v.model.Decrement()
			case v.inc.contains(x, y):
				v.model.Increment()
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw()
	}
	return true
}

// Run polls the screen until the user quits or ctx is done. The model is only
// touched from the calling goroutine.
func (v *View) Run(ctx context.Context) error {
	var events = make(chan tcell.Event, 16)
	var quit = make(chan struct{})
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !v.HandleEvent(ev) {
				v.log.Debug("quit", "temperature", v.model.Temperature())
				return nil
			}
		}
	}
}
