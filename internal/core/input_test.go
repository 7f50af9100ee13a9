package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	got := f.Actions()
	want := []Action{ActionUp, ActionLeft, ActionUp}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Action %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if !f.Has(ActionLeft) || f.Has(ActionHelp) {
		t.Error("Has does not match the recorded actions")
	}

	f.Clear()
	if len(f.Actions()) != 0 || f.Has(ActionUp) {
		t.Error("Expected an empty frame after Clear")
	}
}

func TestActionString(t *testing.T) {
	if ActionHelp.String() != "Help" {
		t.Errorf("Expected Help, got %s", ActionHelp.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", Action(99).String())
	}
}
