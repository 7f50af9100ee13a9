package crossing

// Listener receives every lifecycle event of a Game.
// Embed NopListener to implement only the events you care about.
type Listener interface {
	LifeLost(lives int)
	LifeGained(lives int)
	LevelCleared(next int)
	GameOver(g *Game)
	GameRestart(g *Game)
	GameCompleted(g *Game)
	GamePaused(g *Game)
	GameResumed(g *Game)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) LifeLost(int)        {}
func (NopListener) LifeGained(int)      {}
func (NopListener) LevelCleared(int)    {}
func (NopListener) GameOver(*Game)      {}
func (NopListener) GameRestart(*Game)   {}
func (NopListener) GameCompleted(*Game) {}
func (NopListener) GamePaused(*Game)    {}
func (NopListener) GameResumed(*Game)   {}

// handlers holds one handler per lifecycle event. Each slot is never nil.
type handlers struct {
	lifeLost      func(lives int)
	lifeGained    func(lives int)
	levelCleared  func(next int)
	gameOver      func(*Game)
	gameRestart   func(*Game)
	gameCompleted func(*Game)
	gamePaused    func(*Game)
	gameResumed   func(*Game)
}

func nopHandlers() handlers {
	return handlers{
		lifeLost:      func(int) {},
		lifeGained:    func(int) {},
		levelCleared:  func(int) {},
		gameOver:      func(*Game) {},
		gameRestart:   func(*Game) {},
		gameCompleted: func(*Game) {},
		gamePaused:    func(*Game) {},
		gameResumed:   func(*Game) {},
	}
}

func intHandler(fn func(int)) func(int) {
	if fn == nil {
		return func(int) {}
	}
	return fn
}

func gameHandler(fn func(*Game)) func(*Game) {
	if fn == nil {
		return func(*Game) {}
	}
	return fn
}

// The On* setters replace the current handler for one event.
// Passing nil restores the no-op handler.

// OnLifeLost sets the handler called with the remaining lives after a life is lost.
func (g *Game) OnLifeLost(fn func(lives int)) { g.handlers.lifeLost = intHandler(fn) }

// OnLifeGained sets the handler called with the new lives count.
func (g *Game) OnLifeGained(fn func(lives int)) { g.handlers.lifeGained = intHandler(fn) }

// OnLevelCleared sets the handler called with the index of the level just entered.
func (g *Game) OnLevelCleared(fn func(next int)) { g.handlers.levelCleared = intHandler(fn) }

func (g *Game) OnGameOver(fn func(*Game))      { g.handlers.gameOver = gameHandler(fn) }
func (g *Game) OnGameRestart(fn func(*Game))   { g.handlers.gameRestart = gameHandler(fn) }
func (g *Game) OnGameCompleted(fn func(*Game)) { g.handlers.gameCompleted = gameHandler(fn) }
func (g *Game) OnGamePaused(fn func(*Game))    { g.handlers.gamePaused = gameHandler(fn) }
func (g *Game) OnGameResumed(fn func(*Game))   { g.handlers.gameResumed = gameHandler(fn) }

// SetListener routes all eight events to l, replacing every current handler.
// A nil listener restores the no-op handlers.
func (g *Game) SetListener(l Listener) {
	if l == nil {
		g.handlers = nopHandlers()
		return
	}
	g.handlers = handlers{
		lifeLost:      l.LifeLost,
		lifeGained:    l.LifeGained,
		levelCleared:  l.LevelCleared,
		gameOver:      l.GameOver,
		gameRestart:   l.GameRestart,
		gameCompleted: l.GameCompleted,
		gamePaused:    l.GamePaused,
		gameResumed:   l.GameResumed,
	}
}
