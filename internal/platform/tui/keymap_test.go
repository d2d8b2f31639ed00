package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/core"
)

func TestKeyMapResolve(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		held   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, true},
		{"a", runeKey('a'), core.ActionLeft, true},
		{"d", runeKey('d'), core.ActionRight, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, true},
		{"s", runeKey('s'), core.ActionDown, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, held := keys.Resolve(tt.msg)
			if action != tt.action || held != tt.held {
				t.Errorf("Resolve = (%v, %v), expected (%v, %v)", action, held, tt.action, tt.held)
			}
		})
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[core.Action]core.Action{
		core.ActionLeft:  core.ActionRight,
		core.ActionRight: core.ActionLeft,
		core.ActionUp:    core.ActionDown,
		core.ActionDown:  core.ActionUp,
		core.ActionFire:  core.ActionNone,
	}
	for a, expected := range pairs {
		if got := opposite(a); got != expected {
			t.Errorf("opposite(%v) = %v, expected %v", a, got, expected)
		}
	}
}
