package slay

type KeyCode byte

// printable ascii keys use their own code ('+', '-', 'Q' ...)

const (
	KeyCodeNone KeyCode = iota

	KeyLeft KeyCode = 128 + iota
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyHome
	KeyEnd
	KeyTab
	KeySpace
)

// KeyPressed reports whether any of keys was pressed this frame
func KeyPressed(keys ...KeyCode) bool {
	if FrameInput.Key == KeyCodeNone {
		return false
	}
	for _, k := range keys {
		if FrameInput.Key == k {
			return true
		}
	}
	return false
}
