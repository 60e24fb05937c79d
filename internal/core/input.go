package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow
	ActionDown                // S, Down arrow
	ActionLeft                // A, Left arrow
	ActionRight               // D, Right arrow
	ActionReset               // Space - return to the start tile
	ActionToggleView          // V - switch focused/full view
	ActionShowSolution        // G - give up and reveal the solution
	ActionNextPuzzle          // N - skip to a fresh puzzle
	ActionExit                // Shift+Q - leave the puzzle
	ActionConfirm             // Enter - confirm selection in menu
	ActionBack                // B, Escape - go back to menu
	ActionQuit                // Q, Ctrl+C - exit program
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
	case ActionReset:
		return "Reset"
	case ActionToggleView:
		return "ToggleView"
	case ActionShowSolution:
		return "ShowSolution"
	case ActionNextPuzzle:
		return "NextPuzzle"
	case ActionExit:
		return "Exit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
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
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
