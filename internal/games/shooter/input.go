package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// InputState is the player's intent for one tick. Frontends sample it once per
// tick and hand it to Match.Tick.
type InputState struct {
	Left, Right bool
	Up, Down    bool
	Fire        bool
}

// Axis returns the directional intent as (dx, dy) in {-1, 0, 1}.
// Opposite directions held together cancel.
func (in InputState) Axis() (dx, dy int) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// InputFromFrame converts the platform's held-action frame.
func InputFromFrame(f core.InputFrame) InputState {
	return InputState{
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
		Up:    f.Has(core.ActionUp),
		Down:  f.Has(core.ActionDown),
		Fire:  f.Has(core.ActionFire),
	}
}
