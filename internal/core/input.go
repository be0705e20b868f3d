package core

// Button identifies a pointer button.
type Button int

const (
	ButtonNone      Button = iota
	ButtonPrimary          // drag to pan
	ButtonSecondary        // toggle a cell (paused only)
)

// Action represents a semantic keyboard action, abstracted from physical
// key presses. The presentation layer maps keys to actions so the
// controller never sees raw key codes.
type Action int

const (
	ActionNone     Action = iota
	ActionPause           // toggle running/paused
	ActionStepOnce        // advance one generation (paused only)
	ActionClear           // kill every cell (paused only)
	ActionReseed          // restamp the seed pattern (paused only)
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionZoomIn  // zoom about the screen center
	ActionZoomOut
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionStepOnce:
		return "StepOnce"
	case ActionClear:
		return "Clear"
	case ActionReseed:
		return "Reseed"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventKind discriminates the Event union.
type EventKind int

const (
	EventPointerPress EventKind = iota
	EventPointerRelease
	EventPointerMove
	EventScroll
	EventKey
)

// Event is a single input event in framebuffer pixel coordinates.
// The controller dispatches on Kind; the other fields are valid per kind:
// Button for press/release, X/Y for all pointer kinds and scroll,
// Delta for scroll (positive = zoom in), Action for key events.
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   float64
	Delta  int
	Action Action
}

// PointerPress builds a button-press event at pixel (x, y).
func PointerPress(b Button, x, y float64) Event {
	return Event{Kind: EventPointerPress, Button: b, X: x, Y: y}
}

// PointerRelease builds a button-release event.
func PointerRelease(b Button, x, y float64) Event {
	return Event{Kind: EventPointerRelease, Button: b, X: x, Y: y}
}

// PointerMove builds a pointer-motion event at pixel (x, y).
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// Scroll builds a scroll event at pixel (x, y). delta > 0 zooms in.
func Scroll(x, y float64, delta int) Event {
	return Event{Kind: EventScroll, X: x, Y: y, Delta: delta}
}

// KeyPress builds a keyboard action event.
func KeyPress(a Action) Event {
	return Event{Kind: EventKey, Action: a}
}
