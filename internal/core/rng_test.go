package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

func TestRNGZeroSeed(t *testing.T) {
	r := NewRNG(0)
	if r.Next() == 0 {
		t.Error("A zero seed must not leave the generator stuck")
	}
}

func TestIntRange(t *testing.T) {
	r := NewRNG(7)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		v := r.IntRange(2, 6)
		if v < 2 || v > 6 {
			t.Fatalf("Expected value in [2,6], got %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("Expected every value of [2,6] to show up, got %v", seen)
	}

	if got := r.IntRange(5, 5); got != 5 {
		t.Errorf("Expected 5 for a single-value range, got %d", got)
	}
	if got := r.IntRange(4, 1); got != 4 {
		t.Errorf("Expected lo for an inverted range, got %d", got)
	}
	if got := r.Intn(0); got != 0 {
		t.Errorf("Expected 0 for Intn(0), got %d", got)
	}
}
