package crossing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Options tunes a Game. Zero fields are replaced by DefaultOptions values.
type Options struct {
	MaxLives      int
	MinEnemySpeed int
	MaxEnemySpeed int
	SpeedRamp     int // added to both speed bounds on every level

	HitTolerance   float64
	EffectDuration time.Duration
	SlowDivisor    float64

	Seed     int64
	Profiles []Profile

	// NoRamp keeps the enemy speed bounds fixed across levels.
	NoRamp bool
}

// DefaultOptions returns the classic tuning.
func DefaultOptions() Options {
	return Options{
		MaxLives:       3,
		MinEnemySpeed:  1,
		MaxEnemySpeed:  5,
		SpeedRamp:      1,
		HitTolerance:   0.1,
		EffectDuration: time.Second,
		SlowDivisor:    3,
		Seed:           1,
		Profiles:       DefaultProfiles(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxLives <= 0 {
		o.MaxLives = def.MaxLives
	}
	if o.MinEnemySpeed <= 0 && o.MaxEnemySpeed <= 0 {
		o.MinEnemySpeed, o.MaxEnemySpeed = def.MinEnemySpeed, def.MaxEnemySpeed
	}
	if o.SpeedRamp <= 0 && !o.NoRamp {
		o.SpeedRamp = def.SpeedRamp
	}
	if o.NoRamp {
		o.SpeedRamp = 0
	}
	if o.HitTolerance <= 0 {
		o.HitTolerance = def.HitTolerance
	}
	if o.EffectDuration <= 0 {
		o.EffectDuration = def.EffectDuration
	}
	if o.SlowDivisor <= 0 {
		o.SlowDivisor = def.SlowDivisor
	}
	if len(o.Profiles) == 0 {
		o.Profiles = def.Profiles
	}
	return o
}

// Game drives level progression, lives, collisions and item effects.
// It is not safe for concurrent use; the caller owns the single update loop.
type Game struct {
	opts   Options
	levels []Level

	level    int
	lives    int
	maxLives int

	minEnemySpeed int
	maxEnemySpeed int

	paused bool

	board    *Board
	epoch    int
	player   *Player
	enemies  []*Enemy
	selector *CharacterSelector

	now     time.Duration
	pending []scheduledEffect

	rng      *core.RNG
	handlers handlers
}

// NewGame creates a game over the given levels. The game starts at level -1
// with the character selector focused; call Restart or StartAt to begin.
func NewGame(levels []Level, opts Options) (*Game, error) {
	if len(levels) == 0 {
		return nil, errors.New("crossing: no levels")
	}
	for i, lvl := range levels {
		if err := validateLevel(lvl); err != nil {
			return nil, fmt.Errorf("crossing: level %d (%s): %w", i, lvl.ID, err)
		}
	}

	opts = opts.withDefaults()
	g := &Game{
		opts:          opts,
		levels:        append([]Level(nil), levels...),
		level:         -1,
		maxLives:      opts.MaxLives,
		minEnemySpeed: opts.MinEnemySpeed,
		maxEnemySpeed: opts.MaxEnemySpeed,
		rng:           core.NewRNG(opts.Seed),
		handlers:      nopHandlers(),
	}
	g.player = newPlayer(g)
	if len(opts.Profiles) > 0 {
		g.player.sprite = opts.Profiles[0].Sprite
	}
	g.registerEffects()

	g.selector = NewCharacterSelector(opts.Profiles)
	g.selector.HasFocus = true
	g.selector.OnCharacterSelected(g.SelectCharacter)

	return g, nil
}

// validateLevel checks the invariants ParseLevel enforces, for levels built by hand.
func validateLevel(l Level) error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	size := l.Width * l.Height
	if len(l.Blocks) != size {
		return fmt.Errorf("%w: %d blocks for a %dx%d board", ErrInvalidLevel, len(l.Blocks), l.Width, l.Height)
	}
	if l.Items != nil && len(l.Items) != size {
		return fmt.Errorf("%w: %d items for a %dx%d board", ErrInvalidLevel, len(l.Items), l.Width, l.Height)
	}
	for _, r := range l.Roads {
		if r < 0 || r >= l.Height {
			return fmt.Errorf("%w: road %d outside rows 0..%d", ErrInvalidLevel, r, l.Height-1)
		}
	}
	return nil
}

// SelectCharacter applies a profile to the player and hands focus to the game.
// It is the default selection handler.
func (g *Game) SelectCharacter(p Profile) {
	g.player.SetSprite(p.Sprite)
	g.selector.HasFocus = false
}

// LevelUp moves to the next level, or completes the game after the last one.
func (g *Game) LevelUp() {
	g.level++
	if g.level == len(g.levels) {
		g.handlers.gameCompleted(g)
		return
	}

	g.minEnemySpeed += g.opts.SpeedRamp
	g.maxEnemySpeed += g.opts.SpeedRamp

	g.board = NewBoard(g.levels[g.level])
	g.epoch++

	g.lives = g.maxLives
	g.handlers.lifeGained(g.lives)

	g.spawnPlayer()

	roads := g.board.roads
	g.enemies = make([]*Enemy, 0, len(roads))
	for _, road := range roads {
		g.enemies = append(g.enemies, &Enemy{
			game:  g,
			X:     -1,
			Y:     road,
			Speed: float64(g.RandomInt(g.minEnemySpeed, g.maxEnemySpeed)),
		})
	}

	g.handlers.levelCleared(g.level)
}

// StartAt restarts the game directly at level k (0-based).
// Speed bounds are ramped as if levels 0..k-1 had been cleared.
// No restart event is fired.
func (g *Game) StartAt(k int) {
	k = core.Clamp(k, 0, len(g.levels)-1)

	g.minEnemySpeed = g.opts.MinEnemySpeed + k*g.opts.SpeedRamp
	g.maxEnemySpeed = g.opts.MaxEnemySpeed + k*g.opts.SpeedRamp
	g.level = k - 1
	g.LevelUp()
}

// Restart goes back to the first level with the initial difficulty.
func (g *Game) Restart() {
	g.level = -1
	g.minEnemySpeed = g.opts.MinEnemySpeed
	g.maxEnemySpeed = g.opts.MaxEnemySpeed
	g.handlers.gameRestart(g)
	g.LevelUp()
}

// Reset takes a life after a hit or drowning.
// Terrain and enemies are left alone; only items and the player are reset.
func (g *Game) Reset() {
	g.lives--
	if g.lives < 0 {
		g.handlers.gameOver(g)
		return
	}

	g.handlers.lifeLost(g.lives)
	g.board.ResetItems()
	g.spawnPlayer()
}

func (g *Game) spawnPlayer() {
	g.player.X = g.RandomInt(0, g.board.Width()-1)
	g.player.Y = g.board.Height() - 1
}

// HelpPlayer trades a life for a random item dropped on the bottom row.
// The player is moved to the bottom-left corner. The bottom row is scanned
// from the right, and column 0 is never used.
func (g *Game) HelpPlayer() {
	if g.board == nil || g.lives < 1 {
		return
	}

	row := g.board.Height() - 1
	g.player.X = 0
	g.player.Y = row

	it := helpItems[g.RandomInt(0, len(helpItems)-1)]

	for col := g.board.Width() - 1; col > 0; col-- {
		if g.board.Item(row, col) == None {
			g.board.SetItem(row, col, it)
			g.lives--
			g.handlers.lifeLost(g.lives)
			return
		}
	}
}

// Pause stops player movement. It does nothing if already paused.
func (g *Game) Pause() {
	if g.paused {
		return
	}
	g.paused = true
	g.handlers.gamePaused(g)
}

// Resume lifts a pause. It does nothing if not paused.
func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.paused = false
	g.handlers.gameResumed(g)
}

// WasPlayerHit reports whether an enemy is on the player's row within the hit tolerance.
func (g *Game) WasPlayerHit() bool {
	if g.player.Indestructible {
		return false
	}
	px := float64(g.player.X)
	for _, e := range g.enemies {
		if math.Abs(px-e.X) < g.opts.HitTolerance && e.Y == g.player.Y {
			return true
		}
	}
	return false
}

// IsPlayerDrowning reports whether the player stands on water.
func (g *Game) IsPlayerDrowning() bool {
	if g.board == nil || g.player.Indestructible {
		return false
	}
	return g.board.Block(g.player.Y, g.player.X) == Water
}

// IsLevelCleared reports whether the player reached grass on the top row.
func (g *Game) IsLevelCleared() bool {
	if g.board == nil {
		return false
	}
	return g.player.Y == 0 && g.board.Block(0, g.player.X) == Grass
}

// RandomInt returns a uniform integer in [lo, hi].
func (g *Game) RandomInt(lo, hi int) int {
	return g.rng.IntRange(lo, hi)
}

// Update advances the game by dt seconds: effect expiry, enemies,
// the level-clear check and finally collisions.
func (g *Game) Update(dt float64) {
	if !g.Playing() {
		return
	}

	g.Advance(time.Duration(dt * float64(time.Second)))

	for _, e := range g.enemies {
		e.Update(dt)
	}
	g.player.Update()

	if !g.Playing() {
		return
	}
	if g.WasPlayerHit() || g.IsPlayerDrowning() {
		g.Reset()
	}
}

// HandleInput routes a command to the selector while it has focus, else to the player.
func (g *Game) HandleInput(cmd Command) {
	if g.selector.HasFocus {
		g.selector.HandleInput(cmd)
		return
	}
	g.player.HandleInput(cmd)
}

// Playing reports whether a level is in progress.
func (g *Game) Playing() bool {
	return g.board != nil && g.level >= 0 && !g.Completed() && !g.Over()
}

// Completed reports whether every level has been cleared.
func (g *Game) Completed() bool { return g.level >= len(g.levels) }

// Over reports whether the player ran out of lives.
func (g *Game) Over() bool { return g.level >= 0 && g.lives < 0 }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.paused }

// Level returns the current level index, -1 before the first level.
func (g *Game) Level() int { return g.level }

// LevelCount returns the number of levels.
func (g *Game) LevelCount() int { return len(g.levels) }

// LevelInfo returns the definition of level i.
func (g *Game) LevelInfo(i int) (Level, bool) {
	if i < 0 || i >= len(g.levels) {
		return Level{}, false
	}
	return g.levels[i], true
}

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// MaxLives returns the lives granted on every level.
func (g *Game) MaxLives() int { return g.maxLives }

// SpeedBounds returns the current enemy speed range.
func (g *Game) SpeedBounds() (lo, hi int) { return g.minEnemySpeed, g.maxEnemySpeed }

// Board returns the current board, nil before the first level.
func (g *Game) Board() *Board { return g.board }

// Enemies returns the current enemies.
func (g *Game) Enemies() []*Enemy { return g.enemies }

// Player returns the player.
func (g *Game) Player() *Player { return g.player }

// Selector returns the character selector.
func (g *Game) Selector() *CharacterSelector { return g.selector }

// Now returns the logical clock.
func (g *Game) Now() time.Duration { return g.now }
