package crossing

// Character is anything drawn on the board with a position and a sprite.
// x is a column and may be fractional for moving enemies; y is always a row.
type Character interface {
	Position() (x float64, y int)
	Sprite() string
}

// Enemy is a bug running left to right along a road.
type Enemy struct {
	game *Game

	X     float64
	Y     int
	Speed float64 // columns per second
}

// Position implements Character.
func (e *Enemy) Position() (float64, int) { return e.X, e.Y }

// Sprite implements Character.
func (e *Enemy) Sprite() string { return "enemy-bug" }

// Update advances the enemy by dt seconds. Once it leaves the board on the
// right it re-enters off-screen on the left, on a random road, at a random speed.
func (e *Enemy) Update(dt float64) {
	e.X += e.Speed * dt

	board := e.game.board
	if e.X < float64(board.Width()) {
		return
	}

	e.X = -1
	if len(board.roads) > 0 {
		e.Y = board.roads[e.game.RandomInt(0, len(board.roads)-1)]
	}
	e.Speed = float64(e.game.RandomInt(e.game.minEnemySpeed, e.game.maxEnemySpeed))
}

// Effect is applied to the game when the player picks up an item.
type Effect func(g *Game)

// Player is the character controlled by the user.
// It persists across levels; only its position is reset.
type Player struct {
	game *Game

	X, Y int

	// Indestructible players can neither be hit nor drown.
	Indestructible bool

	sprite  string // chosen character, without the star variant
	starred bool
	effects map[Item]Effect
}

func newPlayer(g *Game) *Player {
	return &Player{
		game:    g,
		sprite:  DefaultProfiles()[0].Sprite,
		effects: make(map[Item]Effect),
	}
}

// Position implements Character.
func (p *Player) Position() (float64, int) { return float64(p.X), p.Y }

// Sprite implements Character.
func (p *Player) Sprite() string {
	if p.starred {
		return starSprite(p.sprite)
	}
	return p.sprite
}

// SetSprite changes the player's character. A running star keeps showing
// on top of the new character.
func (p *Player) SetSprite(sprite string) { p.sprite = sprite }

// OnGain registers the effect for an item kind, replacing any previous one.
func (p *Player) OnGain(it Item, fx Effect) {
	p.effects[it] = fx
}

// Update checks whether the player reached the goal and moves the game on.
func (p *Player) Update() {
	if p.game.IsLevelCleared() {
		p.game.LevelUp()
	}
}

// HandleInput applies a command. Moves are single-cell steps bounded by the board.
func (p *Player) HandleInput(cmd Command) {
	g := p.game

	switch cmd {
	case CommandLeft, CommandUp, CommandRight, CommandDown:
		if g.board == nil {
			return
		}
		x, y := p.X, p.Y
		switch cmd {
		case CommandLeft:
			x--
		case CommandUp:
			y--
		case CommandRight:
			x++
		case CommandDown:
			y++
		}
		if g.board.Contains(y, x) {
			p.MoveTo(x, y)
		}
	case CommandHelp:
		g.HelpPlayer()
	case CommandPause:
		if g.paused {
			g.Resume()
		} else {
			g.Pause()
		}
	case CommandQuit:
		g.Resume()
		g.selector.HasFocus = true
		g.Restart()
	}
}

// MoveTo teleports the player and collects the item found there.
// Nothing happens while the game is paused.
func (p *Player) MoveTo(x, y int) {
	g := p.game
	if g.paused {
		return
	}

	p.X, p.Y = x, y

	// The effect may switch levels; the pickup belongs to the board it lay on.
	board := g.board
	it := board.Item(y, x)
	if it == None {
		return
	}
	if fx, ok := p.effects[it]; ok {
		fx(g)
	}
	board.RemoveItem(y, x)
}

func starSprite(sprite string) string {
	return sprite + "-star"
}
