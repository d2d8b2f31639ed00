package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/space-shooter/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 3", core.ColorHUD)
	s.DrawText(2, 1, "▲", core.ColorCyan)

	lines := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Score: 3") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if []rune(lines[1])[2] != '▲' {
		t.Errorf("line 1 = %q", lines[1])
	}
}
