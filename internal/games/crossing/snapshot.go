package crossing

import (
	"math"
	"time"
)

// Snapshot captures the engine state for determinism tests.
// Uses primitive types only so two snapshots compare field by field.
type Snapshot struct {
	Tick   uint64
	Now    time.Duration
	Level  int
	Lives  int
	Paused bool

	PlayerX, PlayerY int
	Indestructible   bool
	Sprite           string

	MinSpeed, MaxSpeed int
	SelectorFocus      bool

	// Each enemy is 3 values: X, Y, Speed.
	EnemyData []float64

	Blocks  string
	Items   string
	Pending int
}

// Snapshot returns the current game state as a Snapshot.
func (a *Arcade) Snapshot() Snapshot {
	g := a.game
	p := g.Player()
	lo, hi := g.SpeedBounds()

	enemyData := make([]float64, 0, len(g.enemies)*3)
	for _, e := range g.enemies {
		enemyData = append(enemyData, e.X, float64(e.Y), e.Speed)
	}

	snap := Snapshot{
		Tick:           a.ticks,
		Now:            g.Now(),
		Level:          g.Level(),
		Lives:          g.Lives(),
		Paused:         g.Paused(),
		PlayerX:        p.X,
		PlayerY:        p.Y,
		Indestructible: p.Indestructible,
		Sprite:         p.Sprite(),
		MinSpeed:       lo,
		MaxSpeed:       hi,
		SelectorFocus:  g.Selector().HasFocus,
		EnemyData:      enemyData,
		Pending:        g.PendingEffects(),
	}

	if b := g.Board(); b != nil {
		lvl := b.Level()
		blocks := make([]byte, len(lvl.Blocks))
		for i, t := range lvl.Blocks {
			blocks[i] = byte(t)
		}
		snap.Blocks = string(blocks)
		if lvl.Items != nil {
			items := make([]byte, len(lvl.Items))
			for i, it := range lvl.Items {
				items[i] = byte(it)
			}
			snap.Items = string(items)
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Now)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level+1)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives+1)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MinSpeed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxSpeed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pending)  //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.Indestructible {
		h = h*31 + 2
	}
	if snap.SelectorFocus {
		h = h*31 + 3
	}

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for i := 0; i < len(snap.Blocks); i++ {
		h = h*31 + uint64(snap.Blocks[i])
	}
	for i := 0; i < len(snap.Items); i++ {
		h = h*31 + uint64(snap.Items[i])
	}
	for i := 0; i < len(snap.Sprite); i++ {
		h = h*31 + uint64(snap.Sprite[i])
	}

	return h
}
