package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"h", runeKey('h'), core.ActionHelp, false},
		{"question mark", runeKey('?'), core.ActionHelp, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("Expected %v, got %v", tt.action, action)
			}
			if quit != tt.quit {
				t.Errorf("Expected quit=%v, got %v", tt.quit, quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	km.MapKeyToFrame(runeKey('x'), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)

	got := frame.Actions()
	if len(got) != 2 || got[0] != core.ActionUp || got[1] != core.ActionLeft {
		t.Errorf("Expected [Up Left] in order, got %v", got)
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("Expected q to request quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("Quit is handled by the platform, not queued for the game")
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("Expected short help bindings")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 10 {
		t.Errorf("Expected every binding in the full help, got %d", total)
	}
}

func TestRestartHelpNamesNewRun(t *testing.T) {
	// r starts over from the character selector, not on the same character
	if got := DefaultKeyMap().Restart.Help().Desc; got != "new run" {
		t.Errorf("Expected help %q, got %q", "new run", got)
	}
}
