package crossing

import "time"

// unguarded marks a scheduled effect that runs whatever level is current.
const unguarded = -1

// scheduledEffect is a pending revert of a timed item effect.
type scheduledEffect struct {
	item      Item
	expiresAt time.Duration
	epoch     int // board epoch the revert belongs to, or unguarded
	revert    func(g *Game)
}

// ActiveEffect describes a timed effect that has not expired yet.
type ActiveEffect struct {
	Item      Item
	Remaining time.Duration
}

// helpItems are the kinds HelpPlayer may drop on the board.
var helpItems = []Item{Heart, Star, Key, Rock, BlueGem, GreenGem}

// schedule queues revert to run once the effect duration has elapsed.
// Guarded reverts are skipped when the board was replaced in the meantime.
func (g *Game) schedule(it Item, guarded bool, revert func(g *Game)) {
	epoch := unguarded
	if guarded {
		epoch = g.epoch
	}
	g.pending = append(g.pending, scheduledEffect{
		item:      it,
		expiresAt: g.now + g.opts.EffectDuration,
		epoch:     epoch,
		revert:    revert,
	})
}

// Advance moves the logical clock forward and runs every revert that came due.
// Reverts run in the order they were scheduled.
func (g *Game) Advance(d time.Duration) {
	if d > 0 {
		g.now += d
	}

	var due []scheduledEffect
	remaining := g.pending[:0]
	for _, fx := range g.pending {
		if fx.expiresAt <= g.now {
			due = append(due, fx)
		} else {
			remaining = append(remaining, fx)
		}
	}
	g.pending = remaining

	for _, fx := range due {
		if fx.epoch != unguarded && fx.epoch != g.epoch {
			continue
		}
		fx.revert(g)
	}
}

// ActiveEffects lists effects still running on the current board.
func (g *Game) ActiveEffects() []ActiveEffect {
	active := make([]ActiveEffect, 0, len(g.pending))
	for _, fx := range g.pending {
		if fx.epoch != unguarded && fx.epoch != g.epoch {
			continue
		}
		active = append(active, ActiveEffect{Item: fx.item, Remaining: fx.expiresAt - g.now})
	}
	return active
}

// PendingEffects returns the number of reverts still queued, stale ones included.
func (g *Game) PendingEffects() int {
	return len(g.pending)
}

// registerEffects installs the default item effects on the player.
func (g *Game) registerEffects() {
	p := g.player

	p.OnGain(Heart, func(g *Game) {
		g.lives++
		g.handlers.lifeGained(g.lives)
	})

	p.OnGain(Star, func(g *Game) {
		if g.player.Indestructible {
			return
		}
		g.player.Indestructible = true
		g.player.starred = true

		g.schedule(Star, false, func(g *Game) {
			g.player.Indestructible = false
			g.player.starred = false
		})
	})

	p.OnGain(Key, func(g *Game) {
		g.LevelUp()
	})

	p.OnGain(Rock, func(g *Game) {
		type cell struct{ row, col int }
		var flooded []cell

		b := g.board
		for row := 0; row < b.Height(); row++ {
			for col := 0; col < b.Width(); col++ {
				if b.Block(row, col) == Water {
					flooded = append(flooded, cell{row, col})
					b.SetBlock(row, col, Stone)
				}
			}
		}

		g.schedule(Rock, true, func(g *Game) {
			for _, c := range flooded {
				g.board.SetBlock(c.row, c.col, Water)
			}
		})
	})

	p.OnGain(BlueGem, func(g *Game) {
		divisor := g.opts.SlowDivisor
		for _, e := range g.enemies {
			e.Speed /= divisor
		}

		g.schedule(BlueGem, true, func(g *Game) {
			for _, e := range g.enemies {
				e.Speed *= divisor
			}
		})
	})

	p.OnGain(GreenGem, func(g *Game) {
		speeds := make([]float64, len(g.enemies))
		for i, e := range g.enemies {
			speeds[i] = e.Speed
			e.Speed = 0
		}

		g.schedule(GreenGem, true, func(g *Game) {
			if len(g.enemies) != len(speeds) {
				return
			}
			for i, e := range g.enemies {
				e.Speed = speeds[i]
			}
		})
	})

	// Orange gems are collectible but do nothing yet.
	p.OnGain(OrangeGem, func(*Game) {})
}
