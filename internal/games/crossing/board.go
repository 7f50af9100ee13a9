// Package crossing implements a Frogger-style lane crossing game.
//
// The player walks from the bottom row of a board to grass on the top row
// while bugs run along the roads. Water drowns, items grant timed effects,
// and a fixed sequence of levels has to be cleared.
package crossing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLevel is returned when a level descriptor cannot be turned into a board.
var ErrInvalidLevel = errors.New("invalid level")

// Terrain is the kind of block a board cell is made of.
type Terrain byte

const (
	Water Terrain = 'W'
	Grass Terrain = 'G'
	Stone Terrain = 'S'
)

// String returns the name of the terrain.
func (t Terrain) String() string {
	switch t {
	case Water:
		return "Water"
	case Grass:
		return "Grass"
	case Stone:
		return "Stone"
	default:
		return "?"
	}
}

func parseTerrain(b byte) (Terrain, bool) {
	switch t := Terrain(b); t {
	case Water, Grass, Stone:
		return t, true
	}
	return 0, false
}

// Item is a collectible lying on top of a board cell.
type Item byte

const (
	None      Item = 'n'
	BlueGem   Item = 'b'
	GreenGem  Item = 'g'
	OrangeGem Item = 'o'
	Heart     Item = 'h'
	Key       Item = 'k'
	Rock      Item = 'r'
	Star      Item = 's'
)

// String returns the name of the item.
func (i Item) String() string {
	switch i {
	case None:
		return "None"
	case BlueGem:
		return "BlueGem"
	case GreenGem:
		return "GreenGem"
	case OrangeGem:
		return "OrangeGem"
	case Heart:
		return "Heart"
	case Key:
		return "Key"
	case Rock:
		return "Rock"
	case Star:
		return "Star"
	default:
		return "?"
	}
}

func parseItem(b byte) (Item, bool) {
	switch i := Item(b); i {
	case None, BlueGem, GreenGem, OrangeGem, Heart, Key, Rock, Star:
		return i, true
	}
	return 0, false
}

// Level is an immutable level definition.
// Blocks and Items are row-major: index = row*Width + col.
// A nil Items slice means every cell holds None.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Roads  []int
	Blocks []Terrain
	Items  []Item
}

// ParseLevel decodes a descriptor of the form
// "width:height:road,road,...:blocks[:items]".
func ParseLevel(descriptor string) (Level, error) {
	fields := strings.Split(descriptor, ":")
	if len(fields) != 4 && len(fields) != 5 {
		return Level{}, fmt.Errorf("%w: expected 4 or 5 fields, got %d", ErrInvalidLevel, len(fields))
	}

	width, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Level{}, fmt.Errorf("%w: width %q: %v", ErrInvalidLevel, fields[0], err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Level{}, fmt.Errorf("%w: height %q: %v", ErrInvalidLevel, fields[1], err)
	}
	if width <= 0 || height <= 0 {
		return Level{}, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidLevel, width, height)
	}

	var roads []int
	if roadField := strings.TrimSpace(fields[2]); roadField != "" {
		for _, part := range strings.Split(roadField, ",") {
			row, convErr := strconv.Atoi(strings.TrimSpace(part))
			if convErr != nil {
				return Level{}, fmt.Errorf("%w: road %q: %v", ErrInvalidLevel, part, convErr)
			}
			if row < 0 || row >= height {
				return Level{}, fmt.Errorf("%w: road %d outside rows 0..%d", ErrInvalidLevel, row, height-1)
			}
			roads = append(roads, row)
		}
	}

	size := width * height
	if len(fields[3]) != size {
		return Level{}, fmt.Errorf("%w: %d blocks for a %dx%d board", ErrInvalidLevel, len(fields[3]), width, height)
	}
	blocks := make([]Terrain, size)
	for i := 0; i < size; i++ {
		t, ok := parseTerrain(fields[3][i])
		if !ok {
			return Level{}, fmt.Errorf("%w: unknown block %q at %d", ErrInvalidLevel, fields[3][i], i)
		}
		blocks[i] = t
	}

	var items []Item
	if len(fields) == 5 {
		if len(fields[4]) != size {
			return Level{}, fmt.Errorf("%w: %d items for a %dx%d board", ErrInvalidLevel, len(fields[4]), width, height)
		}
		items = make([]Item, size)
		for i := 0; i < size; i++ {
			it, ok := parseItem(fields[4][i])
			if !ok {
				return Level{}, fmt.Errorf("%w: unknown item %q at %d", ErrInvalidLevel, fields[4][i], i)
			}
			items[i] = it
		}
	}

	return Level{
		Width:  width,
		Height: height,
		Roads:  roads,
		Blocks: blocks,
		Items:  items,
	}, nil
}

// MustParseLevel is like ParseLevel but panics on error.
// Intended for built-in level tables.
func MustParseLevel(id, name, descriptor string) Level {
	lvl, err := ParseLevel(descriptor)
	if err != nil {
		panic(fmt.Sprintf("crossing: level %s: %v", id, err))
	}
	lvl.ID = id
	lvl.Name = name
	return lvl
}

// String encodes the level back into its descriptor form.
func (l Level) String() string {
	var sb strings.Builder
	sb.Grow(len(l.Blocks)*2 + 16)

	sb.WriteString(strconv.Itoa(l.Width))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(l.Height))
	sb.WriteByte(':')
	for i, r := range l.Roads {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(r))
	}
	sb.WriteByte(':')
	for _, b := range l.Blocks {
		sb.WriteByte(byte(b))
	}
	if l.Items != nil {
		sb.WriteByte(':')
		for _, it := range l.Items {
			sb.WriteByte(byte(it))
		}
	}
	return sb.String()
}

// Board is the mutable play field for one level: terrain plus an item overlay.
type Board struct {
	width        int
	height       int
	roads        []int
	blocks       []Terrain
	items        []Item
	initialItems []Item
}

// NewBoard builds a board from a level. The level itself is never modified.
func NewBoard(level Level) *Board {
	b := &Board{
		width:  level.Width,
		height: level.Height,
		roads:  append([]int(nil), level.Roads...),
		blocks: append([]Terrain(nil), level.Blocks...),
	}
	if level.Items != nil {
		b.initialItems = append([]Item(nil), level.Items...)
		b.items = append([]Item(nil), level.Items...)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Roads returns a copy of the rows enemies may run on.
func (b *Board) Roads() []int {
	return append([]int(nil), b.roads...)
}

// Contains reports whether (row, col) lies on the board.
func (b *Board) Contains(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) index(row, col int) int {
	return row*b.width + col
}

// Block returns the terrain at (row, col).
func (b *Board) Block(row, col int) Terrain {
	return b.blocks[b.index(row, col)]
}

// SetBlock replaces the terrain at (row, col).
func (b *Board) SetBlock(row, col int, t Terrain) {
	b.blocks[b.index(row, col)] = t
}

// Item returns the item at (row, col), or None when the board carries no items.
func (b *Board) Item(row, col int) Item {
	if b.items == nil {
		return None
	}
	return b.items[b.index(row, col)]
}

// SetItem replaces the item at (row, col).
// The item layer is allocated on first write if the level had none.
func (b *Board) SetItem(row, col int, it Item) {
	if b.items == nil {
		b.items = make([]Item, len(b.blocks))
		for i := range b.items {
			b.items[i] = None
		}
	}
	b.items[b.index(row, col)] = it
}

// RemoveItem clears the item at (row, col).
func (b *Board) RemoveItem(row, col int) {
	b.SetItem(row, col, None)
}

// ResetItems restores the item layer captured when the board was built.
func (b *Board) ResetItems() {
	if b.initialItems == nil {
		b.items = nil
		return
	}
	b.items = append(b.items[:0], b.initialItems...)
}

// Level returns the current state of the board as a level definition.
func (b *Board) Level() Level {
	lvl := Level{
		Width:  b.width,
		Height: b.height,
		Roads:  b.Roads(),
		Blocks: append([]Terrain(nil), b.blocks...),
	}
	if b.items != nil {
		lvl.Items = append([]Item(nil), b.items...)
	}
	return lvl
}
