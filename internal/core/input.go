package core

// InputKind classifies an input event, abstracted from physical key presses.
type InputKind int

const (
	InputNone   InputKind = iota
	InputMove             // W/A/S/D, arrows, h/j/k/l - request a turn
	InputQuit             // Q, Ctrl+C - end the session
	InputResize           // Terminal resized - redraw from a blank screen
)

// String returns a human-readable name for the input kind.
func (k InputKind) String() string {
	switch k {
	case InputNone:
		return "None"
	case InputMove:
		return "Move"
	case InputQuit:
		return "Quit"
	case InputResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Input is a single event delivered by the platform in occurrence order.
// Dir is meaningful only for InputMove.
type Input struct {
	Kind InputKind
	Dir  Dir
}

// Move builds a directional input.
func Move(d Dir) Input {
	return Input{Kind: InputMove, Dir: d}
}

// Quit builds a quit input.
func Quit() Input {
	return Input{Kind: InputQuit}
}

// Resize builds a resize input.
func Resize() Input {
	return Input{Kind: InputResize}
}
