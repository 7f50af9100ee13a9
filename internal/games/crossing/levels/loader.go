// Package levels loads crossing level packs from YAML files.
// This package depends on crossing but crossing does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// Pack is an ordered group of levels read from one file.
type Pack struct {
	Name     string
	FilePath string
	Levels   []crossing.Level
}

// Loader handles loading level packs from a file or a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Load returns the levels found under Root, in play order.
// A file keeps its own order; a directory is read file by file, sorted by path.
func (l *Loader) Load() ([]crossing.Level, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	var out []crossing.Level
	seen := make(map[string]string)
	for _, p := range packs {
		for _, lvl := range p.Levels {
			if prev, ok := seen[lvl.ID]; ok {
				return nil, fmt.Errorf("level %q in %s already defined in %s", lvl.ID, p.FilePath, prev)
			}
			seen[lvl.ID] = p.FilePath
			out = append(out, lvl)
		}
	}
	return out, nil
}

// LoadAll reads every pack under Root. Unlike a lenient scan, an invalid
// file aborts the load so that a broken pack is never half played.
func (l *Loader) LoadAll() ([]Pack, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("level pack %s: %w", l.Root, err)
	}
	if info.IsDir() {
		return LoadDir(l.Root)
	}

	p, err := LoadFile(l.Root)
	if err != nil {
		return nil, err
	}
	return []Pack{p}, nil
}

// LoadDir reads every .yaml/.yml file below dir, sorted by path.
func LoadDir(dir string) ([]Pack, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no level files in %s", dir)
	}

	// Sort by path for determinism
	sort.Strings(paths)

	packs := make([]Pack, 0, len(paths))
	for _, path := range paths {
		p, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		packs = append(packs, p)
	}
	return packs, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (crossing.Level, error) {
	lvls, err := l.Load()
	if err != nil {
		return crossing.Level{}, err
	}

	for _, lvl := range lvls {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return crossing.Level{}, fmt.Errorf("level not found: %s", id)
}

// LoadFile loads a single pack file.
func LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p, err := ParseYAML(data, stem)
	if err != nil {
		return Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	p.FilePath = path
	if p.Name == "" {
		p.Name = stem
	}

	log.Debug("loaded level pack", "path", path, "name", p.Name, "levels", len(p.Levels))
	return p, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
