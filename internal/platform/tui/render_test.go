package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorGreen)
	s.DrawTextColored(2, 0, "cd", core.ColorBrightCyan)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output %q", want, out)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("Expected the default style for an unknown color, got %q", got)
	}
}
