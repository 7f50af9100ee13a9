package crossing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Every board tile is drawn as a TileW x TileH block of cells.
const (
	TileW = 4
	TileH = 2

	hudRows    = 2 // status line + separator
	footerRows = 1
)

var terrainGlyphs = map[Terrain]struct {
	r rune
	c core.Color
}{
	Grass: {'"', core.ColorGreen},
	Stone: {'░', core.ColorGray},
	Water: {'≈', core.ColorBlue},
}

var itemGlyphs = map[Item]struct {
	r rune
	c core.Color
}{
	Heart:     {'♥', core.ColorBrightRed},
	Star:      {'*', core.ColorBrightYellow},
	Key:       {'k', core.ColorYellow},
	Rock:      {'o', core.ColorWhite},
	BlueGem:   {'◆', core.ColorBrightBlue},
	GreenGem:  {'◆', core.ColorBrightGreen},
	OrangeGem: {'◆', core.ColorOrange},
}

// MinScreenSize returns the screen size needed to draw a level.
func MinScreenSize(l Level) (w, h int) {
	w = core.Max(l.Width*TileW, 30)
	h = hudRows + l.Height*TileH + footerRows
	return w, h
}

// Render draws the current game state to the screen.
func (a *Arcade) Render(dst *core.Screen) {
	dst.Clear()
	g := a.game
	if g == nil {
		return
	}

	if g.Selector().HasFocus {
		a.renderSelector(dst)
		return
	}

	board := g.Board()
	if board == nil {
		return
	}

	// Check for screen too small
	minW, minH := MinScreenSize(board.Level())
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	originX := (dst.Width() - board.Width()*TileW) / 2
	originY := hudRows

	a.renderHUD(dst)
	a.renderBoard(dst, originX, originY)
	a.renderEnemies(dst, originX, originY)
	a.renderPlayer(dst, originX, originY)
	a.renderOverlay(dst)
}

// renderHUD draws the level, lives and active effects.
func (a *Arcade) renderHUD(dst *core.Screen) {
	g := a.game
	st := a.State()

	levelText := fmt.Sprintf("Level %d/%d", st.Level, g.LevelCount())
	if lvl, ok := g.LevelInfo(g.Level()); ok && lvl.Name != "" {
		levelText += " " + lvl.Name
	}
	dst.DrawText(1, 0, levelText)

	hearts := strings.Repeat("♥", st.Lives)
	livesText := "Lives " + hearts
	if st.Lives == 0 {
		livesText = "Lives -"
	}
	dst.DrawTextColored(dst.Width()-len([]rune(livesText))-1, 0, livesText, core.ColorBrightRed)

	if effects := a.effectsString(); effects != "" {
		dst.DrawTextColored(1, 1, effects, core.ColorBrightYellow)
		return
	}
	for x, w := 0, dst.Width(); x < w; x++ {
		dst.Set(x, 1, '─')
	}
}

// effectsString lists active timed effects with their remaining time.
func (a *Arcade) effectsString() string {
	active := a.game.ActiveEffects()
	if len(active) == 0 {
		return ""
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Remaining < active[j].Remaining
	})

	parts := make([]string, 0, len(active))
	for _, e := range active {
		parts = append(parts, fmt.Sprintf("%s(%.1fs)", e.Item, e.Remaining.Seconds()))
	}
	return strings.Join(parts, " ")
}

func (a *Arcade) renderBoard(dst *core.Screen, ox, oy int) {
	b := a.game.Board()
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			x, y := ox+col*TileW, oy+row*TileH
			tg := terrainGlyphs[b.Block(row, col)]
			dst.FillRect(core.NewRect(x, y, TileW, TileH), tg.r, tg.c)

			if it := b.Item(row, col); it != None {
				ig := itemGlyphs[it]
				dst.SetColored(x+TileW/2-1, y, ig.r, ig.c)
			}
		}
	}
}

func (a *Arcade) renderEnemies(dst *core.Screen, ox, oy int) {
	b := a.game.Board()
	right := ox + b.Width()*TileW

	for _, e := range a.game.Enemies() {
		x := ox + int(math.Round(e.X*TileW))
		y := oy + e.Y*TileH
		drawClipped(dst, x, y, "o@@>", ox, right, core.ColorBrightRed)
		drawClipped(dst, x, y+1, " ^^ ", ox, right, core.ColorRed)
	}
}

// drawClipped draws text but keeps it within the columns [lo, hi).
func drawClipped(dst *core.Screen, x, y int, text string, lo, hi int, c core.Color) {
	i := 0
	for _, r := range text {
		if cx := x + i; cx >= lo && cx < hi {
			dst.SetColored(cx, y, r, c)
		}
		i++
	}
}

func (a *Arcade) renderPlayer(dst *core.Screen, ox, oy int) {
	p := a.game.Player()
	x := ox + p.X*TileW
	y := oy + p.Y*TileH

	color := core.ColorBrightCyan
	if p.Indestructible {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(x, y, "("+string(spriteInitial(p.Sprite()))+")", color)
	dst.DrawTextColored(x, y+1, "/ \\", color)
}

// spriteInitial picks the letter that stands for a character sprite.
func spriteInitial(sprite string) rune {
	name := strings.TrimSuffix(strings.TrimPrefix(sprite, "char-"), "-star")
	for _, r := range strings.ToUpper(name) {
		return r
	}
	return '@'
}

// renderOverlay draws game state messages.
func (a *Arcade) renderOverlay(dst *core.Screen) {
	g := a.game
	switch {
	case g.Completed():
		drawCenteredBox(dst, "COMPLETED", "All levels cleared | R restart")
	case g.Over():
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Level %d | R restart", g.Level()+1))
	case g.Paused():
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// renderSelector draws the character roster with the cursor.
func (a *Arcade) renderSelector(dst *core.Screen) {
	sel := a.game.Selector()

	top := core.Max(dst.Height()/2-5, 0)
	dst.DrawTextCentered(top, "B U G   C R O S S I N G")
	dst.DrawTextCentered(top+2, "Choose your character")

	const slotW = 16
	horizontal := len(sel.Characters)*slotW <= dst.Width()

	for i, p := range sel.Characters {
		label := displayName(p.Name)
		color := core.ColorWhite
		if i == sel.Position {
			label = "[" + label + "]"
			color = core.ColorBrightYellow
		}

		if horizontal {
			startX := (dst.Width() - len(sel.Characters)*slotW) / 2
			x := startX + i*slotW + (slotW-len(label))/2
			dst.DrawTextColored(startX+i*slotW+slotW/2-1, top+4, "("+string(spriteInitial(p.Sprite))+")", color)
			dst.DrawTextColored(x, top+6, label, color)
			continue
		}
		dst.DrawTextColored((dst.Width()-len(label))/2, top+4+i, label, color)
	}

	if a.game.Level() >= 0 {
		dst.DrawTextCentered(dst.Height()-2, "Enter to play again")
	} else {
		dst.DrawTextCentered(dst.Height()-2, "Left/Right to choose, Enter to start")
	}
}

// displayName turns "cat-girl" into "Cat Girl".
func displayName(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
