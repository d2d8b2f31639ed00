package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// KeyState reports whether a key is down (or was just pressed).
type KeyState func(ebiten.Key) bool

// heldBindings are sampled every tick while the key is down.
var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionFire:  {ebiten.KeySpace},
}

// triggerBindings fire once per key press.
var triggerBindings = map[core.Action][]ebiten.Key{
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// SampleFrame builds the input frame for one tick. Unlike a terminal, the
// window sees real key state, so held actions need no countdown.
func SampleFrame(pressed, justPressed KeyState) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldBindings {
		if anyKey(pressed, keys) {
			frame.Set(action)
		}
	}
	for action, keys := range triggerBindings {
		if anyKey(justPressed, keys) {
			frame.Set(action)
		}
	}
	return frame
}

func anyKey(state KeyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if state(k) {
			return true
		}
	}
	return false
}
