package capture

// Key is a recognized keyboard event inside the capture loop. Modeling
// the raw key codes as a closed set keeps the loop's dispatch exhaustive.
type Key int

const (
	// KeyNone means no key arrived within the poll window.
	KeyNone Key = iota

	// KeyCapture requests a save of the current frame.
	KeyCapture

	// KeyQuit requests a clean shutdown.
	KeyQuit

	// KeyOther is any key press outside the recognized bindings.
	KeyOther
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyCapture:
		return "capture"
	case KeyQuit:
		return "quit"
	default:
		return "other"
	}
}
