package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLane0          // D, 1, Left - first lane (GREEN)
	ActionLane1          // F, 2, Down - second lane (RED)
	ActionLane2          // J, 3, Up - third lane (BLUE)
	ActionLane3          // K, 4, Right - fourth lane (YELLOW)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// LaneActions lists the lane actions in lane order.
var LaneActions = [...]Action{ActionLane0, ActionLane1, ActionLane2, ActionLane3}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLane0:
		return "Lane0"
	case ActionLane1:
		return "Lane1"
	case ActionLane2:
		return "Lane2"
	case ActionLane3:
		return "Lane3"
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
	default:
		return "Unknown"
	}
}

// Lane returns the lane index for a lane action and false for anything else.
func (a Action) Lane() (int, bool) {
	for i, la := range LaneActions {
		if a == la {
			return i, true
		}
	}
	return 0, false
}

// InputFrame represents the input state for a single player during one frame.
// Presses are kept in arrival order so two lanes pressed in the same frame
// resolve in the order the player hit them.
type InputFrame struct {
	Actions map[Action]bool
	order   []Action
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
	if !f.Actions[a] {
		f.order = append(f.order, a)
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

// Lanes returns the lanes pressed this frame, in press order.
func (f InputFrame) Lanes() []int {
	var lanes []int
	for _, a := range f.order {
		if lane, ok := a.Lane(); ok {
			lanes = append(lanes, lane)
		}
	}
	return lanes
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for _, a := range f.order {
		clone.Set(a)
	}
	return clone
}
