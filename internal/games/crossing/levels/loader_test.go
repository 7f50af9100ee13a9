package levels

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoaderDirectory(t *testing.T) {
	loader := NewLoader(testdata("pack"))

	packs, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(packs) != 2 {
		t.Fatalf("expected 2 packs (notes.txt ignored), got %d", len(packs))
	}
	if packs[0].Name != "Meadow" || packs[1].Name != "Swamp" {
		t.Errorf("packs not sorted by path: %q, %q", packs[0].Name, packs[1].Name)
	}

	lvls, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	ids := make([]string, len(lvls))
	for i, lvl := range lvls {
		ids[i] = lvl.ID
	}
	if got := strings.Join(ids, ","); got != "meadow,brook,02-swamp-1" {
		t.Errorf("unexpected level order %s", got)
	}
}

func TestLoaderRowForm(t *testing.T) {
	lvl, err := NewLoader(testdata("pack")).LoadByID("brook")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Width != 5 || lvl.Height != 4 {
		t.Errorf("expected 5x4, got %dx%d", lvl.Width, lvl.Height)
	}
	if want := "5:4:1,2:GGGGGSSSSSWWSWWGGGGG:nnnnnnnhnnnnnnnnnnnn"; lvl.String() != want {
		t.Errorf("descriptor = %q, want %q", lvl.String(), want)
	}

	b := crossing.NewBoard(lvl)
	if b.Item(1, 2) != crossing.Heart {
		t.Errorf("expected heart at (1,2), got %v", b.Item(1, 2))
	}
	if b.Block(2, 0) != crossing.Water {
		t.Errorf("expected water at (2,0), got %v", b.Block(2, 0))
	}
}

func TestLoaderDefaults(t *testing.T) {
	lvl, err := NewLoader(testdata("pack")).LoadByID("02-swamp-1")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Bog" {
		t.Errorf("expected name Bog, got %q", lvl.Name)
	}
	if lvl.Items != nil {
		t.Error("a level without items keeps a nil item layer")
	}
}

func TestLoaderSingleFile(t *testing.T) {
	lvls, err := NewLoader(testdata(filepath.Join("pack", "01-meadow.yaml"))).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(lvls) != 2 || lvls[0].ID != "meadow" {
		t.Errorf("expected meadow and brook, got %d levels", len(lvls))
	}
}

func TestLoaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing", testdata("nope.yaml"), false},
		{"bad descriptor", testdata("broken.yaml"), true},
		{"descriptor and blocks", testdata("mixed.yaml"), true},
		{"ragged item rows", testdata("ragged-items.yaml"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(tt.path).Load()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Errorf("error should name the file: %v", err)
			}
			if tt.invalid && !errors.Is(err, crossing.ErrInvalidLevel) {
				t.Errorf("expected ErrInvalidLevel, got %v", err)
			}
		})
	}

	if _, err := NewLoader(testdata("pack")).LoadByID("unknown"); err == nil {
		t.Error("expected an error for an unknown id")
	}
}

func TestParseYAML(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"empty pack", "name: Empty\nlevels: []\n", true},
		{"ragged rows", "levels:\n  - blocks: [GGG, GG]\n", true},
		{"item rows mismatch", "levels:\n  - blocks: [GGG, SSS]\n    items: [nnn]\n", true},
		{"ragged item rows", "levels:\n  - blocks: [GGG, SSS]\n    items: [nn, nnnn]\n", true},
		{"duplicate ids", "levels:\n  - {id: a, descriptor: '1:1::G'}\n  - {id: a, descriptor: '1:1::S'}\n", true},
		{"no content", "levels:\n  - id: empty\n", true},
		{"not yaml", "levels: [", true},
		{"ok", "levels:\n  - {id: a, descriptor: '1:1::G'}\n  - {blocks: [GS], roads: [0]}\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseYAML([]byte(tt.data), "pack")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseYAML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p.Levels[1].ID != "pack-2" {
				t.Errorf("expected fallback id pack-2, got %q", p.Levels[1].ID)
			}
		})
	}
}

func TestLoadDirEmpty(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("expected an error for a directory without level files")
	}
}
