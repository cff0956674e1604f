package thermostat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.hasen.dev/thermo/gradient"
)

func TestInitialState(t *testing.T) {
	m := New()
	assert.Equal(t, 15, m.Temperature())

	s := m.Snapshot()
	assert.Equal(t, 15, s.Temperature)
	assert.Equal(t, gradient.Temperatures.At(15), s.Color)
	assert.Equal(t, "rgb(62.5,233.25,158.25)", s.Background)
	assert.Equal(t, "rgba(62.5,233.25,158.25,0.2)", s.Softer)
	assert.Equal(t, "15", s.Label)
	assert.Equal(t, ToneLight, s.Tone)
}

func TestIncrementSequence(t *testing.T) {
	m := New()
	for i := 0; i < 5; i++ {
		m.Increment()
	}
	assert.Equal(t, 40, m.Temperature())

	m.Increment()
	assert.Equal(t, 45, m.Temperature())

	m.Increment()
	assert.Equal(t, 50, m.Temperature())

	m.Increment()
	assert.Equal(t, 50, m.Temperature())
}

func TestDecrementClamps(t *testing.T) {
	m := New()
	for i := 0; i < 10; i++ {
		m.Decrement()
	}
	assert.Equal(t, -10, m.Temperature())

	m.Decrement()
	assert.Equal(t, -10, m.Temperature())
}

func TestSnapshotAtExtremes(t *testing.T) {
	m := New()
	for !m.Snapshot().AtMax() {
		m.Increment()
	}
	s := m.Snapshot()
	assert.Equal(t, TooHot, s.Label)
	assert.Equal(t, "rgb(255,0,0)", s.Background)
	assert.Equal(t, "rgba(255,0,0,0.2)", s.Softer)
	assert.False(t, s.AtMin())

	for !m.Snapshot().AtMin() {
		m.Decrement()
	}
	s = m.Snapshot()
	assert.Equal(t, TooCold, s.Label)
	assert.Equal(t, "rgb(0,0,255)", s.Background)
	assert.False(t, s.AtMax())
}

func TestSnapshotRecomputedEveryStep(t *testing.T) {
	m := New()
	for !m.Snapshot().AtMin() {
		m.Decrement()
	}
	for {
		s := m.Snapshot()
		c := gradient.Temperatures.At(float64(s.Temperature))
		assert.Equal(t, c, s.Color, "temperature %d", s.Temperature)
		assert.Equal(t, c.CSS(), s.Background)
		assert.Equal(t, c.CSSAlpha(SofterAlpha), s.Softer)
		assert.Equal(t, Label(s.Temperature), s.Label)
		assert.Equal(t, ToneFor(s.Temperature), s.Tone)
		assert.Equal(t, Derive(gradient.Temperatures, s.Temperature), s)
		if s.AtMax() {
			break
		}
		m.Increment()
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, TooCold, Label(-10))
	assert.Equal(t, TooHot, Label(50))
	assert.Equal(t, "-5", Label(-5))
	assert.Equal(t, "0", Label(0))
	assert.Equal(t, "45", Label(45))
}

func TestToneFor(t *testing.T) {
	tests := []struct {
		t        int
		expected Tone
	}{
		{-10, ToneLight},
		{10, ToneLight},
		{20, ToneLight},
		{21, ToneDark},
		{25, ToneDark},
		{35, ToneDark},
		{36, ToneLight},
		{50, ToneLight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ToneFor(tt.t), "temperature %d", tt.t)
	}
	assert.Equal(t, "dark", ToneDark.String())
	assert.Equal(t, "light", ToneLight.String())
}

func TestObserversRunSynchronously(t *testing.T) {
	m := New()
	var seen []Snapshot
	m.Subscribe(func(s Snapshot) {
		// the model already holds the new state when observers run
		assert.Equal(t, s, m.Snapshot())
		seen = append(seen, s)
	})

	m.Increment()
	require.Len(t, seen, 1)
	assert.Equal(t, 20, seen[0].Temperature)
	assert.Equal(t, "rgb(121,240.5,105.5)", seen[0].Background)

	m.Decrement()
	require.Len(t, seen, 2)
	assert.Equal(t, 15, seen[1].Temperature)
}

func TestObserversSkipNoOpAtBounds(t *testing.T) {
	m := New()
	for !m.Snapshot().AtMax() {
		m.Increment()
	}
	var calls int
	m.Subscribe(func(Snapshot) { calls++ })
	m.Increment()
	m.Increment()
	assert.Equal(t, 0, calls)
	m.Decrement()
	assert.Equal(t, 1, calls)
}

func TestUnsubscribe(t *testing.T) {
	m := New()
	var a, b int
	unsubA := m.Subscribe(func(Snapshot) { a++ })
	m.Subscribe(func(Snapshot) { b++ })

	m.Increment()
	unsubA()
	unsubA() // second call is harmless
	m.Increment()

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestUnsubscribeFromWithinObserver(t *testing.T) {
	m := New()
	var calls, other int
	var unsub func()
	unsub = m.Subscribe(func(Snapshot) {
		calls++
		unsub()
	})
	m.Subscribe(func(Snapshot) { other++ })

	m.Increment()
	m.Increment()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestCustomTable(t *testing.T) {
	table := gradient.MustTable(
		gradient.Stop{T: 0, Color: gradient.Blue},
		gradient.Stop{T: 100, Color: gradient.Red},
	)
	m := NewWithTable(table)
	assert.Equal(t, table.At(15), m.Snapshot().Color)
}
