package crossing

import "testing"

func TestSelectorClamps(t *testing.T) {
	s := NewCharacterSelector(DefaultProfiles())

	s.HandleInput(CommandLeft)
	if s.Position != 0 {
		t.Errorf("Expected position 0 at the left edge, got %d", s.Position)
	}

	for i := 0; i < 10; i++ {
		s.HandleInput(CommandRight)
	}
	if s.Position != len(DefaultProfiles())-1 {
		t.Errorf("Expected position clamped to %d, got %d", len(DefaultProfiles())-1, s.Position)
	}

	s.HandleInput(CommandUp)
	s.HandleInput(CommandHelp)
	if s.Position != len(DefaultProfiles())-1 {
		t.Error("Other commands should not move the cursor")
	}
}

func TestSelectorEnter(t *testing.T) {
	s := NewCharacterSelector(DefaultProfiles())

	var picked []Profile
	s.OnCharacterSelected(func(p Profile) { picked = append(picked, p) })

	s.HandleInput(CommandRight)
	s.HandleInput(CommandEnter)

	if len(picked) != 1 || picked[0].Name != "cat-girl" {
		t.Errorf("Expected cat-girl to be selected, got %v", picked)
	}

	// Out-of-range index: enter does nothing
	s.Position = 42
	s.HandleInput(CommandEnter)
	if len(picked) != 1 {
		t.Errorf("Enter with an invalid index should not select, got %v", picked)
	}
}

func TestSelectorNilHandler(t *testing.T) {
	s := NewCharacterSelector(DefaultProfiles())
	s.OnCharacterSelected(nil)
	s.HandleInput(CommandEnter)

	empty := NewCharacterSelector(nil)
	empty.HandleInput(CommandRight)
	empty.HandleInput(CommandEnter)
	if _, ok := empty.Current(); ok {
		t.Error("Empty roster has no current profile")
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		want Command
	}{
		{"left", CommandLeft},
		{"up", CommandUp},
		{"right", CommandRight},
		{"down", CommandDown},
		{"help", CommandHelp},
		{"enter", CommandEnter},
		{"pause", CommandPause},
		{"quit", CommandQuit},
		{"jump", CommandNone},
		{"", CommandNone},
	}

	for _, tt := range tests {
		got := ParseCommand(tt.name)
		if got != tt.want {
			t.Errorf("ParseCommand(%q) = %v, want %v", tt.name, got, tt.want)
		}
		if tt.want != CommandNone && got.String() != tt.name {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.name)
		}
	}
}
