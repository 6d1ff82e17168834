package core

// Pointer is the cursor position relative to the window for one tick.
// Present is false when the cursor is not over the window.
type Pointer struct {
	X, Y    float64
	Present bool
}

// NoPointer is the pointer value used when no cursor hovers the window.
var NoPointer = Pointer{}

// PointerAt returns a present pointer at (x, y).
func PointerAt(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}

// Action represents a semantic platform action, abstracted from key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionToggleMode        // Tab, M - switch between menu and maze
	ActionDebug             // D, F1 - show/hide the debug panel
	ActionUp                // Up, K - previous debug slider
	ActionDown              // Down, J - next debug slider
	ActionDecrease          // Left, H, "-" - lower the selected slider
	ActionIncrease          // Right, L, "+" - raise the selected slider
	ActionReset             // R - restore default settings
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionDebug:
		return "Debug"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionDecrease:
		return "Decrease"
	case ActionIncrease:
		return "Increase"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
