package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - move up (menus)
	ActionDown               // S, Down arrow - move down (menus)
	ActionDraw               // D, Space - turn a card from the stock
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - deal a new game
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
	ActionFocusLost          // terminal lost focus
	ActionFocusGained        // terminal regained focus
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
	case ActionDraw:
		return "Draw"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionFocusLost:
		return "FocusLost"
	case ActionFocusGained:
		return "FocusGained"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state for one tick. X and Y persist across ticks;
// the edge flags describe what happened during this tick only.
type Pointer struct {
	X, Y     int
	Known    bool // a position has been reported at least once
	Moved    bool // position changed this tick
	Pressed  bool // a button went down this tick
	Released bool // the button went up this tick
	Alt      bool // the press was made with the alternate (right) button
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer carries mouse position and button edges.
	Pointer Pointer
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

// MoveTo records a pointer position.
func (f *InputFrame) MoveTo(x, y int) {
	if f.Pointer.Known && f.Pointer.X == x && f.Pointer.Y == y {
		return
	}
	f.Pointer.X, f.Pointer.Y = x, y
	f.Pointer.Known = true
	f.Pointer.Moved = true
}

// Press records a button press at (x, y).
func (f *InputFrame) Press(x, y int, alt bool) {
	f.MoveTo(x, y)
	f.Pointer.Pressed = true
	f.Pointer.Alt = alt
}

// Release records a button release at (x, y).
func (f *InputFrame) Release(x, y int) {
	f.MoveTo(x, y)
	f.Pointer.Released = true
}

// Clear resets all actions and pointer edges for the next frame.
// The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Moved = false
	f.Pointer.Pressed = false
	f.Pointer.Released = false
	f.Pointer.Alt = false
}
