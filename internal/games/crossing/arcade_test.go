package crossing

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func newTestArcade(t *testing.T, seed int64) *Arcade {
	t.Helper()
	SetLogger(log.New(io.Discard))
	t.Cleanup(func() {
		SetLogger(nil)
		SetLevels(nil)
		SetStartLevel(0)
		SetDifficultyPreset("")
	})

	a := New()
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return a
}

func step(a *Arcade, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, act := range actions {
		in.Set(act)
	}
	return a.Step(in)
}

func TestArcadeStartsOnSelector(t *testing.T) {
	a := newTestArcade(t, 1)

	res := step(a)
	if a.Game().Level() != -1 {
		t.Errorf("Expected no level before a character is chosen, got %d", a.Game().Level())
	}
	if res.State.Level != 0 {
		t.Errorf("Expected display level 0, got %d", res.State.Level)
	}

	step(a, core.ActionRight, core.ActionConfirm)

	g := a.Game()
	if g.Selector().HasFocus {
		t.Fatal("Confirm should hand focus to the game")
	}
	if g.Level() != 0 {
		t.Errorf("Expected level 0, got %d", g.Level())
	}
	if g.Player().Sprite() != "char-cat-girl" {
		t.Errorf("Expected cat-girl, got %q", g.Player().Sprite())
	}
	if g.Now() == 0 {
		t.Error("The first level should start ticking right away")
	}
}

func TestArcadeDeterminism(t *testing.T) {
	a1 := newTestArcade(t, 12345)
	a2 := newTestArcade(t, 12345)

	script := map[int][]core.Action{
		0:  {core.ActionConfirm},
		10: {core.ActionUp},
		30: {core.ActionHelp},
		50: {core.ActionRight, core.ActionUp},
		90: {core.ActionUp},
	}

	for i := 0; i < 300; i++ {
		step(a1, script[i]...)
		step(a2, script[i]...)
	}

	snap1 := a1.Snapshot()
	snap2 := a2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Tick == 0 {
		t.Error("Expected the game to have ticked")
	}
}

func TestArcadePause(t *testing.T) {
	a := newTestArcade(t, 7)
	step(a, core.ActionConfirm)

	res := step(a, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("Expected paused state")
	}

	now := a.Game().Now()
	for i := 0; i < 10; i++ {
		step(a)
	}
	if a.Game().Now() != now {
		t.Error("The clock must not advance while paused")
	}

	res = step(a, core.ActionPause)
	if res.State.Paused {
		t.Error("Expected running state")
	}
	if a.Game().Now() == now {
		t.Error("The clock should advance after resuming")
	}
}

func TestArcadeBackReturnsToSelector(t *testing.T) {
	a := newTestArcade(t, 7)
	step(a, core.ActionConfirm)

	step(a, core.ActionBack)

	g := a.Game()
	if !g.Selector().HasFocus {
		t.Error("Back should return to the character selector")
	}
	if g.Level() != 0 {
		t.Errorf("Expected level 0 after quitting, got %d", g.Level())
	}

	now := g.Now()
	step(a)
	if g.Now() != now {
		t.Error("The game must not tick behind the selector")
	}
}

func TestArcadeRestartAfterGameOver(t *testing.T) {
	a := newTestArcade(t, 7)
	step(a, core.ActionConfirm)

	g := a.Game()
	g.lives = 0
	g.Reset()

	res := step(a, core.ActionUp)
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("Expected game over, got %+v", res.State)
	}
	if res.State.Lives != 0 {
		t.Errorf("Lives are reported as 0 after game over, got %d", res.State.Lives)
	}

	step(a, core.ActionRestart)
	if g.Over() || g.Level() != 0 || g.Lives() != 3 {
		t.Errorf("Expected a fresh run, got level %d with %d lives", g.Level(), g.Lives())
	}
	if !g.Selector().HasFocus {
		t.Error("Restarting goes through the character selector")
	}
}

func TestArcadeStartLevel(t *testing.T) {
	SetStartLevel(4)
	a := newTestArcade(t, 3)

	step(a, core.ActionConfirm)

	if a.Game().Level() != 3 {
		t.Errorf("Expected to start on level index 3, got %d", a.Game().Level())
	}
	if st := a.State(); st.Level != 4 {
		t.Errorf("Expected display level 4, got %d", st.Level)
	}
}

func TestArcadeStartLevelAfterNewRun(t *testing.T) {
	SetStartLevel(5)
	a := newTestArcade(t, 3)
	g := a.Game()

	step(a, core.ActionConfirm)
	if g.Level() != 4 {
		t.Fatalf("Expected first run on level index 4, got %d", g.Level())
	}

	// Back to the selector, then pick a character again
	step(a, core.ActionBack)
	step(a, core.ActionConfirm)
	if g.Level() != 4 {
		t.Errorf("Expected the new run on level index 4, got %d", g.Level())
	}

	// Restart after game over goes the same way
	g.lives = 0
	g.Reset()
	step(a, core.ActionRestart)
	step(a, core.ActionConfirm)
	if g.Over() || g.Level() != 4 {
		t.Errorf("Expected a fresh run on level index 4, got level %d", g.Level())
	}
}

func TestArcadeInvalidPackFallsBack(t *testing.T) {
	SetLevels([]Level{{ID: "broken", Width: 0, Height: 1}})
	a := newTestArcade(t, 3)

	if got, want := a.Game().LevelCount(), len(ShippedLevels()); got != want {
		t.Errorf("Expected the shipped campaign (%d levels), got %d", want, got)
	}
}

func TestMustNewGamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for an empty level list")
		}
	}()
	mustNewGame(nil, DefaultOptions())
}

func TestArcadeLevelPack(t *testing.T) {
	SetLevels([]Level{MustParseLevel("tiny", "Tiny", "3:2::GGGSSS")})
	a := newTestArcade(t, 3)

	step(a, core.ActionConfirm)
	g := a.Game()
	if g.LevelCount() != 1 || g.Board().Width() != 3 {
		t.Fatalf("Expected the custom pack, got %d levels", g.LevelCount())
	}

	// One step up reaches the top grass and clears the only level
	step(a, core.ActionUp)
	if !g.Completed() {
		t.Fatal("Expected the pack to be completed")
	}
	if st := a.State(); !st.Won || !st.GameOver || st.Level != 1 {
		t.Errorf("Unexpected final state %+v", st)
	}
}

func TestArcadeRender(t *testing.T) {
	a := newTestArcade(t, 9)
	screen := core.NewScreen(80, 24)

	a.Render(screen)
	if !strings.Contains(screen.String(), "Choose your character") {
		t.Error("Selector screen should be drawn first")
	}
	if !strings.Contains(screen.String(), "[Boy]") {
		t.Error("The cursor should mark the first character")
	}

	step(a, core.ActionConfirm)
	a.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Level 1/10 First Steps") {
		t.Errorf("HUD missing level, got:\n%s", out)
	}
	if !strings.Contains(out, "Lives ♥♥♥") {
		t.Errorf("HUD missing lives, got:\n%s", out)
	}

	step(a, core.ActionPause)
	a.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Expected the pause box")
	}

	small := core.NewScreen(20, 5)
	a.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Errorf("Expected a too-small notice, got:\n%s", small.String())
	}
}

func TestArcadeRegistered(t *testing.T) {
	a := New()
	if a.ID() != "crossing" || a.Title() != "Bug Crossing" {
		t.Errorf("Unexpected identity %q / %q", a.ID(), a.Title())
	}
}
