package crossing

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("5:3:1:GGGGGSSSSSWWWWW:nnnnnnhnnnnnnnk")
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}

	if lvl.Width != 5 || lvl.Height != 3 {
		t.Errorf("Expected 5x3, got %dx%d", lvl.Width, lvl.Height)
	}
	if len(lvl.Roads) != 1 || lvl.Roads[0] != 1 {
		t.Errorf("Expected roads [1], got %v", lvl.Roads)
	}

	b := NewBoard(lvl)
	if b.Block(0, 0) != Grass || b.Block(1, 2) != Stone || b.Block(2, 4) != Water {
		t.Error("Blocks not decoded row-major")
	}
	if b.Item(1, 1) != Heart {
		t.Errorf("Expected Heart at (1,1), got %v", b.Item(1, 1))
	}
	if b.Item(2, 4) != Key {
		t.Errorf("Expected Key at (2,4), got %v", b.Item(2, 4))
	}
}

func TestParseLevelWithoutItems(t *testing.T) {
	lvl, err := ParseLevel("3:2::GGGSSS")
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}
	if lvl.Items != nil {
		t.Errorf("Expected nil item layer, got %v", lvl.Items)
	}
	if len(lvl.Roads) != 0 {
		t.Errorf("Expected no roads, got %v", lvl.Roads)
	}

	b := NewBoard(lvl)
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if b.Item(row, col) != None {
				t.Errorf("Expected None at (%d,%d), got %v", row, col, b.Item(row, col))
			}
		}
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
	}{
		{"too few fields", "5:3:1"},
		{"too many fields", "1:1:0:G:n:extra"},
		{"bad width", "x:3:1:GGGGGSSSSSGGGGG"},
		{"bad height", "5:?:1:GGGGGSSSSSGGGGG"},
		{"zero width", "0:3::"},
		{"bad road", "5:3:a:GGGGGSSSSSGGGGG"},
		{"road out of range", "5:3:3:GGGGGSSSSSGGGGG"},
		{"short blocks", "5:3:1:GGGGGSSSSSGGGG"},
		{"long blocks", "5:3:1:GGGGGSSSSSGGGGGG"},
		{"unknown block", "5:3:1:GGGGGSSXSSGGGGG"},
		{"short items", "5:3:1:GGGGGSSSSSGGGGG:nnnn"},
		{"unknown item", "5:3:1:GGGGGSSSSSGGGGG:nnnnnnnnnnnnnnz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel(tt.descriptor)
			if err == nil {
				t.Fatalf("ParseLevel(%q) should fail", tt.descriptor)
			}
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Expected ErrInvalidLevel, got %v", err)
			}
		})
	}
}

func TestLevelStringRoundTrip(t *testing.T) {
	for _, d := range shippedDescriptors {
		lvl, err := ParseLevel(d.descriptor)
		if err != nil {
			t.Fatalf("level %s: %v", d.id, err)
		}
		if got := lvl.String(); got != d.descriptor {
			t.Errorf("level %s: String() = %q, want %q", d.id, got, d.descriptor)
		}
	}
}

func TestShippedLevels(t *testing.T) {
	levels := ShippedLevels()
	if len(levels) != 10 {
		t.Fatalf("Expected 10 shipped levels, got %d", len(levels))
	}

	for _, lvl := range levels {
		if lvl.ID == "" || lvl.Name == "" {
			t.Errorf("level %q has no id or name", lvl.String())
		}
		b := NewBoard(lvl)
		// Every level needs a bottom row to spawn on and grass on top to finish.
		hasGoal := false
		for col := 0; col < b.Width(); col++ {
			if b.Block(0, col) == Grass {
				hasGoal = true
			}
		}
		if !hasGoal {
			t.Errorf("level %s has no grass on the top row", lvl.ID)
		}
	}
}

func TestBoardSetGet(t *testing.T) {
	b := NewBoard(MustParseLevel("t", "t", "4:3:1:GGGGSSSSWWWW:nnnnnnnnnnnn"))

	b.SetBlock(1, 2, Water)
	b.SetItem(2, 3, Star)

	if b.Block(1, 2) != Water {
		t.Errorf("Expected Water at (1,2), got %v", b.Block(1, 2))
	}
	if b.Item(2, 3) != Star {
		t.Errorf("Expected Star at (2,3), got %v", b.Item(2, 3))
	}

	// Every other cell is untouched
	want := "GGGGSSWSWWWW"
	for i := 0; i < len(want); i++ {
		row, col := i/4, i%4
		if got := b.Block(row, col); got != Terrain(want[i]) {
			t.Errorf("Block(%d,%d) = %v, want %v", row, col, got, Terrain(want[i]))
		}
		if row == 2 && col == 3 {
			continue
		}
		if got := b.Item(row, col); got != None {
			t.Errorf("Item(%d,%d) = %v, want None", row, col, got)
		}
	}
}

func TestBoardSetItemAllocatesLayer(t *testing.T) {
	b := NewBoard(MustParseLevel("t", "t", "3:2::GGGSSS"))

	b.SetItem(1, 1, Heart)

	if b.Item(1, 1) != Heart {
		t.Errorf("Expected Heart, got %v", b.Item(1, 1))
	}
	if b.Item(0, 0) != None {
		t.Errorf("Expected None elsewhere, got %v", b.Item(0, 0))
	}

	// Reset goes back to having no item layer at all
	b.ResetItems()
	if b.Item(1, 1) != None {
		t.Errorf("Expected None after reset, got %v", b.Item(1, 1))
	}
}

func TestBoardResetItems(t *testing.T) {
	lvl := MustParseLevel("t", "t", "3:2::GGGSSS:hnnnks")
	b := NewBoard(lvl)

	b.RemoveItem(0, 0)
	b.SetItem(0, 1, Rock)
	b.SetItem(1, 2, None)
	b.RemoveItem(1, 1)

	b.ResetItems()

	want := []Item{Heart, None, None, None, Key, Star}
	for i, it := range want {
		if got := b.Item(i/3, i%3); got != it {
			t.Errorf("Item(%d,%d) = %v, want %v", i/3, i%3, got, it)
		}
	}

	// The level the board was built from is never modified
	if lvl.Items[0] != Heart || lvl.Items[1] != None {
		t.Error("NewBoard must copy the level's item layer")
	}
}

func TestBoardContains(t *testing.T) {
	b := NewBoard(MustParseLevel("t", "t", "3:2::GGGSSS"))

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{2, 0, false},
		{0, 3, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.row, tt.col); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}
