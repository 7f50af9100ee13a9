package crossing

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// GameID is the registry identifier of the crossing game.
const GameID = "crossing"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelPack replaces the shipped levels when non-empty
var levelPack []Level

// startLevel is the 1-based level a run starts at, 0 for the first one
var startLevel int

// logger receives lifecycle logs; nil means the charmbracelet default logger
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLevels makes new Arcade instances play the given levels instead of the shipped campaign.
// Passing nil restores the shipped campaign.
func SetLevels(levels []Level) {
	levelPack = append([]Level(nil), levels...)
}

// SetStartLevel makes runs start at the given 1-based level. Values below 1 reset it.
func SetStartLevel(n int) {
	if n < 1 {
		n = 0
	}
	startLevel = n
}

// SetLogger sets the logger used for lifecycle events.
func SetLogger(l *log.Logger) {
	logger = l
}

func currentLogger() *log.Logger {
	if logger != nil {
		return logger
	}
	return log.Default()
}

// Arcade adapts Game to the platform: it maps actions to commands,
// drives Update at the tick rate and draws the board into a Screen.
type Arcade struct {
	game    *Game
	runtime core.RuntimeConfig
	cfg     config.CrossingConfig
	levels  []Level
	log     *log.Logger

	// start is the 0-based level the next run begins at.
	start int
	// rerun is set when a run restarts; the next character pick enters start.
	rerun bool

	ticks uint64
}

// New creates a new crossing game instance.
func New() *Arcade {
	return &Arcade{}
}

// ID returns the unique identifier for this game.
func (a *Arcade) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (a *Arcade) Title() string {
	return "Bug Crossing"
}

// Reset loads the configuration and builds a fresh game waiting on the character selector.
func (a *Arcade) Reset(runtime core.RuntimeConfig) {
	a.runtime = runtime
	a.log = currentLogger()
	a.ticks = 0
	a.rerun = false

	// Load game config
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		a.log.Warn("falling back to default config", "err", err)
		cfg = config.DefaultCrossingConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyCrossingPreset(&cfg, difficultyPreset)
	}
	a.cfg = cfg

	a.levels = ShippedLevels()
	if len(levelPack) > 0 {
		a.levels = levelPack
	}

	a.start = 0
	if startLevel > 0 {
		a.start = core.Clamp(startLevel-1, 0, len(a.levels)-1)
	}

	g, err := NewGame(a.levels, a.options())
	if err != nil {
		// Level packs are validated on load, so only a broken build gets here.
		a.log.Error("cannot build game, using shipped levels", "err", err)
		a.levels = ShippedLevels()
		g = mustNewGame(a.levels, a.options())
	}
	a.game = g
	g.SetListener(&logListener{arcade: a})

	a.log.Debug("game reset",
		"levels", len(a.levels),
		"start", a.start+1,
		"lives", cfg.Gameplay.MaxLives,
		"speed", []int{cfg.Enemies.MinSpeed, cfg.Enemies.MaxSpeed},
		"seed", runtime.Seed)
}

// mustNewGame is NewGame for level lists known to be valid, such as the shipped campaign.
func mustNewGame(levels []Level, opts Options) *Game {
	g, err := NewGame(levels, opts)
	if err != nil {
		panic(fmt.Sprintf("crossing: %v", err))
	}
	return g
}

func (a *Arcade) options() Options {
	return Options{
		MaxLives:       a.cfg.Gameplay.MaxLives,
		MinEnemySpeed:  a.cfg.Enemies.MinSpeed,
		MaxEnemySpeed:  a.cfg.Enemies.MaxSpeed,
		SpeedRamp:      a.cfg.Enemies.RampPerLevel,
		NoRamp:         a.cfg.Enemies.RampPerLevel == 0,
		HitTolerance:   a.cfg.Gameplay.HitTolerance,
		EffectDuration: a.cfg.Effects.Duration(),
		SlowDivisor:    a.cfg.Effects.SlowDivisor,
		Seed:           a.runtime.Seed,
		Profiles:       DefaultProfiles(),
	}
}

// Game returns the underlying engine.
func (a *Arcade) Game() *Game {
	return a.game
}

// Step applies the frame's actions in order, then advances the game by one tick.
func (a *Arcade) Step(in core.InputFrame) core.StepResult {
	g := a.game

	for _, act := range in.Actions() {
		a.handleAction(act)
	}

	// A character was picked for a new run.
	if (g.Level() < 0 || a.rerun) && !g.Selector().HasFocus {
		a.rerun = false
		a.begin()
	}

	if a.running() {
		g.Update(a.runtime.TickSeconds())
		a.ticks++
	}

	return core.StepResult{State: a.State()}
}

func (a *Arcade) handleAction(act core.Action) {
	g := a.game

	if g.Over() || g.Completed() {
		switch act {
		case core.ActionRestart:
			g.Restart()
		case core.ActionBack:
			g.HandleInput(CommandQuit)
		}
		return
	}

	cmd := commandForAction(act)
	if cmd == CommandNone {
		return
	}
	g.HandleInput(cmd)
}

// begin enters the configured start level. It does not go through Restart,
// whose handler would hand focus back to the selector.
func (a *Arcade) begin() {
	a.game.StartAt(a.start)
}

// running reports whether the world moves this tick. The core treats pause
// as advisory, so the driver freezes enemies and timers itself.
func (a *Arcade) running() bool {
	g := a.game
	return g.Playing() && !g.Paused() && !g.Selector().HasFocus
}

// State returns the current game state.
func (a *Arcade) State() core.GameState {
	g := a.game
	if g == nil {
		return core.GameState{}
	}

	level := g.Level() + 1
	if level > g.LevelCount() {
		level = g.LevelCount()
	}
	lives := g.Lives()
	if lives < 0 {
		lives = 0
	}

	return core.GameState{
		Level:    level,
		Lives:    lives,
		GameOver: g.Over() || g.Completed(),
		Won:      g.Completed(),
		Paused:   g.Paused(),
	}
}

// logListener writes lifecycle events to the arcade's logger.
type logListener struct {
	arcade *Arcade
}

func (l *logListener) LifeLost(lives int) {
	l.arcade.log.Debug("life lost", "lives", lives)
}

func (l *logListener) LifeGained(lives int) {
	l.arcade.log.Debug("life gained", "lives", lives)
}

func (l *logListener) LevelCleared(next int) {
	name := ""
	if lvl, ok := l.arcade.game.LevelInfo(next); ok {
		name = lvl.Name
	}
	lo, hi := l.arcade.game.SpeedBounds()
	l.arcade.log.Info("level started", "level", next+1, "name", name, "speed", []int{lo, hi})
}

func (l *logListener) GameOver(g *Game) {
	l.arcade.log.Info("game over", "level", g.Level()+1, "ticks", l.arcade.ticks)
}

// GameRestart sends the player back to the character selector.
func (l *logListener) GameRestart(g *Game) {
	g.Selector().HasFocus = true
	l.arcade.rerun = true
	l.arcade.log.Info("game restarted")
}

func (l *logListener) GameCompleted(g *Game) {
	l.arcade.log.Info("all levels cleared", "levels", g.LevelCount(), "ticks", l.arcade.ticks)
}

func (l *logListener) GamePaused(*Game) {
	l.arcade.log.Debug("paused")
}

func (l *logListener) GameResumed(*Game) {
	l.arcade.log.Debug("resumed")
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
