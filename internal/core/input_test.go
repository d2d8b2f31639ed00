package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionFire) {
		t.Fatal("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Fatal("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should drop all actions")
	}
}

func TestHeldKeysHoldsForConfiguredTicks(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(ActionLeft)

	for i := 0; i < 3; i++ {
		if !h.Frame().Has(ActionLeft) {
			t.Fatalf("tick %d: Left should still be held", i)
		}
	}
	if h.Frame().Has(ActionLeft) {
		t.Error("Left should be released after hold expires")
	}
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(ActionFire)
	h.Frame()
	h.Press(ActionFire) // key repeat
	h.Frame()

	if !h.Frame().Has(ActionFire) {
		t.Error("a repeat should refresh the hold countdown")
	}
}

func TestHeldKeysTriggerIsOneShot(t *testing.T) {
	h := NewHeldKeys(5)
	h.Trigger(ActionPause)

	if !h.Frame().Has(ActionPause) {
		t.Fatal("triggered action should appear on the next frame")
	}
	if h.Frame().Has(ActionPause) {
		t.Error("triggered action should last exactly one frame")
	}
}

func TestHeldKeysReleaseAndReset(t *testing.T) {
	h := NewHeldKeys(10)
	h.Press(ActionUp)
	h.Press(ActionDown)
	h.Release(ActionUp)

	f := h.Frame()
	if f.Has(ActionUp) || !f.Has(ActionDown) {
		t.Errorf("Release should drop only Up, got %v", f.Actions)
	}

	h.Trigger(ActionPause)
	h.Reset()
	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("Reset should clear everything, got %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
