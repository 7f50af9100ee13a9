package levels

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level entry. It uses either Descriptor or Blocks.
type YAMLLevel struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Descriptor string   `yaml:"descriptor,omitempty"`
	Roads      []int    `yaml:"roads,omitempty"`
	Blocks     []string `yaml:"blocks,omitempty"` // one string per row
	Items      []string `yaml:"items,omitempty"`  // one string per row
}

// ParseYAML parses a level pack. Entries without an id are named
// after the pack: "<fallbackID>-<n>" with n counted from 1.
func ParseYAML(data []byte, fallbackID string) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yp.Levels) == 0 {
		return Pack{}, fmt.Errorf("pack %q has no levels", yp.Name)
	}

	pack := Pack{
		Name:   yp.Name,
		Levels: make([]crossing.Level, 0, len(yp.Levels)),
	}
	seen := make(map[string]bool, len(yp.Levels))

	for i, yl := range yp.Levels {
		lvl, err := yl.toLevel()
		if err != nil {
			return Pack{}, fmt.Errorf("level %d: %w", i+1, err)
		}

		lvl.ID = yl.ID
		if lvl.ID == "" {
			lvl.ID = fallbackID + "-" + strconv.Itoa(i+1)
		}
		lvl.Name = yl.Name
		if lvl.Name == "" {
			lvl.Name = lvl.ID
		}

		if seen[lvl.ID] {
			return Pack{}, fmt.Errorf("level %d: duplicate id %q", i+1, lvl.ID)
		}
		seen[lvl.ID] = true

		pack.Levels = append(pack.Levels, lvl)
	}

	return pack, nil
}

// toLevel validates the entry through crossing.ParseLevel.
func (yl YAMLLevel) toLevel() (crossing.Level, error) {
	if yl.Descriptor != "" {
		if len(yl.Blocks) > 0 || len(yl.Items) > 0 || len(yl.Roads) > 0 {
			return crossing.Level{}, fmt.Errorf("%w: use either descriptor or roads/blocks/items", crossing.ErrInvalidLevel)
		}
		return crossing.ParseLevel(yl.Descriptor)
	}
	if len(yl.Blocks) == 0 {
		return crossing.Level{}, fmt.Errorf("%w: no descriptor and no blocks", crossing.ErrInvalidLevel)
	}

	width := len(yl.Blocks[0])
	for row, line := range yl.Blocks {
		if len(line) != width {
			return crossing.Level{}, fmt.Errorf("%w: block row %d has %d cells, want %d", crossing.ErrInvalidLevel, row, len(line), width)
		}
	}
	if len(yl.Items) > 0 && len(yl.Items) != len(yl.Blocks) {
		return crossing.Level{}, fmt.Errorf("%w: %d item rows for %d block rows", crossing.ErrInvalidLevel, len(yl.Items), len(yl.Blocks))
	}
	for row, line := range yl.Items {
		if len(line) != width {
			return crossing.Level{}, fmt.Errorf("%w: item row %d has %d cells, want %d", crossing.ErrInvalidLevel, row, len(line), width)
		}
	}

	return crossing.ParseLevel(yl.descriptor(width))
}

// descriptor joins the row-based form into the colon-delimited wire format.
func (yl YAMLLevel) descriptor(width int) string {
	roads := make([]string, len(yl.Roads))
	for i, r := range yl.Roads {
		roads[i] = strconv.Itoa(r)
	}

	fields := []string{
		strconv.Itoa(width),
		strconv.Itoa(len(yl.Blocks)),
		strings.Join(roads, ","),
		strings.Join(yl.Blocks, ""),
	}
	if len(yl.Items) > 0 {
		fields = append(fields, strings.Join(yl.Items, ""))
	}
	return strings.Join(fields, ":")
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
