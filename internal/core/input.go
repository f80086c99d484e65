package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow - move cursor up
	ActionDown                // S, Down arrow - move cursor down
	ActionLeft                // A, Left arrow - move cursor left
	ActionRight               // D, Right arrow - move cursor right
	ActionSelect              // Space, Enter, left click - remove the group under the cursor
	ActionAutocomplete        // X - keep removing groups until no move is left
	ActionRestart             // R - new board with the same settings
	ActionBack                // B, Escape - go back to menu
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionAutocomplete:
		return "Autocomplete"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions triggered during this frame and, optionally, the
// last known pointer position in screen coordinates.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	pointerX, pointerY int
	hasPointer         bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records a pointer position (mouse hover or click) in screen cells.
func (f *InputFrame) SetPointer(x, y int) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

// Pointer returns the pointer position recorded this frame, if any.
func (f InputFrame) Pointer() (x, y int, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasPointer = false
}
