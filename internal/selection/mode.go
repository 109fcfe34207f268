package selection

// Mode is the interaction state of the picker.
type Mode int

const (
	// Blurred - input not focused, box hidden.
	Blurred Mode = iota
	// Initial - focused, nothing typed since focus.
	Initial
	// Editing - query non-empty, box holds live ranked results.
	Editing
	// Cleared - an item was just committed.
	Cleared
	// Idle - focused, query cleared to the empty string.
	Idle
)

func (m Mode) String() string {
	switch m {
	case Blurred:
		return "blurred"
	case Initial:
		return "initial"
	case Editing:
		return "editing"
	case Cleared:
		return "cleared"
	case Idle:
		return "idle"
	default:
		return "unknown"
	}
}

// Focused reports whether the mode accepts keyboard input.
func (m Mode) Focused() bool {
	return m != Blurred
}

// Key is a decoded key code delivered by the host.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeyBackspace
)

func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	default:
		return "unknown"
	}
}
