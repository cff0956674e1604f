// Package thermostat holds the picker state: one clamped temperature and the
// colors and text derived from it.
//
// The model is not safe for concurrent use. Front ends mutate it from a single
// goroutine (their event loop) and observers run synchronously on that goroutine.
package thermostat

import (
	"strconv"

	"go.hasen.dev/thermo/gradient"
)

const (
	MinTemperature     = -10
	MaxTemperature     = 50
	InitialTemperature = 15
	StepSize           = 5

	// alpha of the translucent (glow / page) color
	SofterAlpha = 0.2
)

const (
	TooCold = "too cold!🥶"
	TooHot  = "too hot!🥵"
)

type Tone uint8

const (
	ToneLight Tone = iota
	ToneDark
)

func (t Tone) String() string {
	switch t {
	case ToneDark:
		return "dark"
	default:
		return "light"
	}
}

// Snapshot is everything a view needs for one render
type Snapshot struct {
	Temperature int
	Color       gradient.Color

	Background string // rgb(r,g,b)
	Softer     string // rgba(r,g,b,0.2)

	Label string
	Tone  Tone
}

func (s Snapshot) AtMin() bool {
	return s.Temperature <= MinTemperature
}

func (s Snapshot) AtMax() bool {
	return s.Temperature >= MaxTemperature
}

type Observer func(Snapshot)

type Model struct {
	table       gradient.Table
	temperature int
	snapshot    Snapshot

	observers []*Observer
}

func New() *Model {
	return NewWithTable(gradient.Temperatures)
}

func NewWithTable(table gradient.Table) *Model {
	var m = &Model{table: table, temperature: InitialTemperature}
	m.recompute()
	return m
}

func (m *Model) Temperature() int {
	return m.temperature
}

func (m *Model) Snapshot() Snapshot {
	return m.snapshot
}

func (m *Model) Decrement() {
	m.set(max(MinTemperature, m.temperature-StepSize))
}

func (m *Model) Increment() {
	m.set(min(MaxTemperature, m.temperature+StepSize))
}

// Subscribe registers fn to run after every change. The returned function
// removes it again.
func (m *Model) Subscribe(fn Observer) (unsubscribe func()) {
	var entry = &fn
	m.observers = append(m.observers, entry)
	return func() {
		for i, o := range m.observers {
			if o == entry {
				m.observers = append(m.observers[:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

func (m *Model) set(t int) {
	if t == m.temperature {
		return
	}
	m.temperature = t
	m.recompute()

	// copy: an observer may unsubscribe itself
	var observers = append([]*Observer(nil), m.observers...)
	for _, o := range observers {
		(*o)(m.snapshot)
	}
}

// always from scratch; nothing is cached across temperatures
func (m *Model) recompute() {
	m.snapshot = Derive(m.table, m.temperature)
}

// Derive computes everything shown for temperature t
func Derive(table gradient.Table, t int) Snapshot {
	var c = table.At(float64(t))
	return Snapshot{
		Temperature: t,
		Color:       c,
		Background:  c.CSS(),
		Softer:      c.CSSAlpha(SofterAlpha),
		Label:       Label(t),
		Tone:        ToneFor(t),
	}
}

// Label is the text shown in the temperature box
func Label(t int) string {
	switch t {
	case MaxTemperature:
		return TooHot
	case MinTemperature:
		return TooCold
	default:
		return strconv.Itoa(t)
	}
}

// ToneFor picks the text tone that stays readable on the computed background:
// dark on the pale yellows in the middle of the scale, light elsewhere.
func ToneFor(t int) Tone {
	if t > 20 && t < 36 {
		return ToneDark
	}
	return ToneLight
}
