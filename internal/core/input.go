package core

// Action represents a semantic game action, abstracted from physical key presses.
// The engine works with intents rather than raw keys.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - move actor left (held)
	ActionRight        // D, Right arrow - move actor right (held)
	ActionStart        // Enter, Space - start a run from menu or game over
	ActionMenu         // M, Escape - return to menu from game over
	ActionPause        // P - pause/unpause while playing
	ActionQuit         // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionMenu:
		return "Menu"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Held intents (Left, Right) and one-shot intents (Start, Menu) share the
// same set; the platform decides how long a held intent stays asserted.
type InputFrame struct {
	// Actions maps action types to whether they are asserted this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as asserted for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is asserted this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
