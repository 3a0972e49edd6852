package core

// Key represents a directional key observed by the input adapter.
// Only the most recently pressed key matters to the game logic, so
// the platform collapses held and repeated keys into a single value.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// Input is the signal sampled by the game once per tick boundary.
type Input struct {
	Key  Key  // Last directional key pressed since the previous tick
	Quit bool // External quit request; terminates the session unconditionally
}
