package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionUp             // W, Up arrow - steer up
	ActionDown           // S, Down arrow - steer down
	ActionFire           // Space - fire
	ActionConfirm        // Enter - start a match from the menu
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionBack           // B, Escape - leave the current view
	ActionQuit           // Q, Ctrl+C - exit the session
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
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

// InputFrame is the set of actions held during one simulation tick.
// Frontends build it once per tick; games only read it.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HeldKeys tracks actions that stay held across ticks.
//
// Terminals only report key presses (and auto-repeat), never releases, so a
// press keeps its action held for a fixed number of ticks. Each repeat
// refreshes the countdown. Edge actions like Pause are never held; they
// last exactly one frame.
type HeldKeys struct {
	holdTicks int
	remaining map[Action]int
	edges     map[Action]bool
}

// NewHeldKeys creates a tracker that keeps a pressed action held for holdTicks ticks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
		edges:     make(map[Action]bool),
	}
}

// Press records a held action (movement, fire).
func (h *HeldKeys) Press(a Action) {
	if a == ActionNone {
		return
	}
	h.remaining[a] = h.holdTicks
}

// Trigger records a one-shot action delivered on the next frame only.
func (h *HeldKeys) Trigger(a Action) {
	if a == ActionNone {
		return
	}
	h.edges[a] = true
}

// Release drops an action immediately.
func (h *HeldKeys) Release(a Action) {
	delete(h.remaining, a)
}

// Frame samples the current state and ages every held action by one tick.
func (h *HeldKeys) Frame() InputFrame {
	frame := NewInputFrame()
	for a, left := range h.remaining {
		frame.Set(a)
		if left <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = left - 1
		}
	}
	for a := range h.edges {
		frame.Set(a)
		delete(h.edges, a)
	}
	return frame
}

// Reset drops every held and pending action.
func (h *HeldKeys) Reset() {
	clear(h.remaining)
	clear(h.edges)
}
