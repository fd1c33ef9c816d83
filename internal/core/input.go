package core

// Action represents a semantic game action, abstracted from physical keys
// and mouse events.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - nudge the aiming fruit left
	ActionRight          // D, L, Right arrow - nudge the aiming fruit right
	ActionDrop           // Space, Down, mouse click - release the fruit
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionBack           // B, Esc - back to menu
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionDrop:
		return "Drop"
	case ActionPause:
		return "Pause"
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

// InputFrame collects the input delivered between two ticks. The game
// consumes it at the start of the next tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// PointerCol is the last pointer column reported by the mouse.
	// Only meaningful when Pointed reports true.
	PointerCol int
	pointed    bool
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

// Point records a pointer move to the given screen column.
func (f *InputFrame) Point(col int) {
	f.PointerCol = col
	f.pointed = true
}

// Pointed reports whether the pointer moved this frame.
func (f InputFrame) Pointed() bool {
	return f.pointed
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerCol = 0
	f.pointed = false
}
