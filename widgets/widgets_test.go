package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	. "go.hasen.dev/thermo/slay"
)

func click(frame FrameFn, at Vec2) {
	InputState.MousePoint = at
	FrameInput.Mouse = MouseClick
	RunFrameFn(frame)
	FrameInput.Mouse = MouseRelease
	RunFrameFn(frame)
}

func TestButtonClick(t *testing.T) {
	WindowSize = Vec2{300, 200}
	InputState.MousePoint = Vec2{-1, -1}
	var clicks int
	frame := func() {
		if Button("+") {
			clicks++
		}
	}
	RunFrameFn(frame)
	RunFrameFn(frame)
	assert.Equal(t, 0, clicks)

	click(frame, Vec2{5, 5})
	assert.Equal(t, 1, clicks)

	click(frame, Vec2{250, 150})
	assert.Equal(t, 1, clicks)
}

func TestDisabledButtonIgnoresClicks(t *testing.T) {
	WindowSize = Vec2{300, 200}
	InputState.MousePoint = Vec2{-1, -1}
	var clicks int
	frame := func() {
		if ButtonExt("-", ButtonAttrs{Disabled: true}) {
			clicks++
		}
	}
	RunFrameFn(frame)
	click(frame, Vec2{5, 5})
	assert.Equal(t, 0, clicks)
}

func TestToggleSwitch(t *testing.T) {
	WindowSize = Vec2{300, 200}
	InputState.MousePoint = Vec2{-1, -1}
	var on bool
	var flips int
	frame := func() {
		if ToggleSwitch(&on) {
			flips++
		}
	}
	RunFrameFn(frame)
	click(frame, Vec2{10, 10})
	assert.True(t, on)
	click(frame, Vec2{10, 10})
	assert.False(t, on)
	assert.Equal(t, 2, flips)
}

func TestDebugMessages(t *testing.T) {
	DebugVar("temperature", 15)
	DebugVar("colors", map[string]string{"bg": "rgb(0,0,255)"})
	DebugMessage("plain")
	assert.Equal(t, []string{
		"temperature: 15",
		`colors: {"bg":"rgb(0,0,255)"}`,
		"plain",
	}, debugMessages())

	WindowSize = Vec2{300, 200}
	RunFrameFn(func() {
		DebugPanel(true)
	})
	assert.Empty(t, debugMessages())
}

func TestButtonIdReadBeforeLayout(t *testing.T) {
	WindowSize = Vec2{300, 200}
	InputState.MousePoint = Vec2{-1, -1}
	var early, clicks int
	frame := func() {
		if IdReleased("plus") {
			early++
		}
		if ButtonExt("+", ButtonAttrs{Id: "plus", MinWidth: 64}) {
			clicks++
		}
	}
	RunFrameFn(frame)
	assert.GreaterOrEqual(t, GetResolvedRectOf("plus").Size[0], float32(64))

	click(frame, Vec2{5, 5})
	assert.Equal(t, 1, early)
	assert.Equal(t, 1, clicks)
}
