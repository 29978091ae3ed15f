package arkanoid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/entity"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithSettings(DefaultSettings())
	g.Reset(core.DefaultConfig())
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// start unpauses a fresh game and releases the pause key.
func start(t *testing.T, g *Game) {
	t.Helper()
	g.Step(core.NewInputFrame(core.ActionPause))
	if g.Phase() != PhaseInProgress {
		t.Fatalf("expected game in progress after pause press, got %s", g.Phase())
	}
}

func TestRestartPopulatesBoard(t *testing.T) {
	g := newTestGame(t)
	m := g.Manager()

	if n := entity.CountOf[*Brick](m); n != 44 {
		t.Errorf("Expected 44 bricks, got %d", n)
	}
	if n := entity.CountOf[*Ball](m); n != 1 {
		t.Errorf("Expected 1 ball, got %d", n)
	}
	if n := entity.CountOf[*Paddle](m); n != 1 {
		t.Errorf("Expected 1 paddle, got %d", n)
	}
	if g.Lives() != 3 {
		t.Errorf("Expected 3 lives, got %d", g.Lives())
	}
	if g.Phase() != PhasePaused {
		t.Errorf("Expected fresh game to be paused, got %s", g.Phase())
	}

	ball := entity.All[*Ball](m)[0]
	if ball.X != 400 || ball.Y != 300 {
		t.Errorf("Expected ball at window center, got (%v, %v)", ball.X, ball.Y)
	}
	paddle := entity.All[*Paddle](m)[0]
	if paddle.X != 400 || paddle.Y != 550 {
		t.Errorf("Expected paddle at (400, 550), got (%v, %v)", paddle.X, paddle.Y)
	}
}

func TestBrickLayout(t *testing.T) {
	g := newTestGame(t)
	bricks := entity.All[*Brick](g.Manager())

	// Bricks are created column by column
	tests := []struct {
		index int
		x, y  float64
		hits  int
	}{
		{0, 85, 46, 1},    // col 0, row 0
		{3, 85, 115, 1},   // col 0, row 3
		{5, 148, 69, 2},   // col 1, row 1
		{10, 211, 92, 2},  // col 2, row 2
		{11, 211, 115, 1}, // col 2, row 3
		{43, 715, 115, 1}, // col 10, row 3
	}

	for _, tc := range tests {
		b := bricks[tc.index]
		if b.X != tc.x || b.Y != tc.y {
			t.Errorf("brick %d at (%v, %v), expected (%v, %v)", tc.index, b.X, b.Y, tc.x, tc.y)
		}
		if b.RequiredHits != tc.hits {
			t.Errorf("brick %d has %d hits, expected %d", tc.index, b.RequiredHits, tc.hits)
		}
	}
}

func TestPauseTogglesOnPressEdge(t *testing.T) {
	g := newTestGame(t)
	pause := core.NewInputFrame(core.ActionPause)

	g.Step(pause)
	if g.Phase() != PhaseInProgress {
		t.Fatalf("Expected InProgress after first press, got %s", g.Phase())
	}

	// Holding the key must not toggle again
	for range 5 {
		g.Step(pause)
	}
	if g.Phase() != PhaseInProgress {
		t.Fatalf("Expected InProgress while pause is held, got %s", g.Phase())
	}

	g.Step(idle())
	g.Step(pause)
	if g.Phase() != PhasePaused {
		t.Fatalf("Expected Paused after second press, got %s", g.Phase())
	}

	// Paused games do not simulate
	before := g.Snapshot()
	g.Step(idle())
	g.Step(idle())
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Paused game should not change state")
	}
}

func TestBallLostCostsLife(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	m := g.Manager()

	ball := entity.All[*Ball](m)[0]
	ball.X, ball.Y = 400, 595
	ball.Velocity = core.Vec2{X: 8, Y: 8}

	g.Step(idle())
	if n := entity.CountOf[*Ball](m); n != 0 {
		t.Fatalf("Expected ball below the window to be removed, got %d balls", n)
	}
	if g.Lives() != 3 {
		t.Errorf("Lives should only drop on respawn, got %d", g.Lives())
	}

	g.Step(idle())
	if g.Lives() != 2 {
		t.Errorf("Expected 2 lives after respawn, got %d", g.Lives())
	}
	balls := entity.All[*Ball](m)
	if len(balls) != 1 {
		t.Fatalf("Expected a respawned ball, got %d", len(balls))
	}
	// Spawned at the center, then moved once
	if balls[0].X != 392 || balls[0].Y != 292 {
		t.Errorf("Expected respawned ball at (392, 292), got (%v, %v)", balls[0].X, balls[0].Y)
	}
	if g.Phase() != PhaseInProgress {
		t.Errorf("Expected game to continue, got %s", g.Phase())
	}
}

func TestVictoryWhenBoardCleared(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	m := g.Manager()

	entity.ForEach(m, func(b *Brick) { b.Destroy() })
	m.Refresh()

	g.Step(idle())
	if g.Phase() != PhaseVictory {
		t.Fatalf("Expected Victory, got %s", g.Phase())
	}
	if !g.State().GameOver {
		t.Error("Victory should end the game")
	}

	// Terminal until restart
	g.Step(core.NewInputFrame(core.ActionPause))
	g.Step(idle())
	if g.Phase() != PhaseVictory {
		t.Errorf("Victory should ignore pause, got %s", g.Phase())
	}

	g.Step(core.NewInputFrame(core.ActionRestart))
	if g.Phase() != PhasePaused {
		t.Errorf("Expected Paused after restart, got %s", g.Phase())
	}
	if n := entity.CountOf[*Brick](m); n != 44 {
		t.Errorf("Expected 44 bricks after restart, got %d", n)
	}
}

func TestGameOverWhenLivesRunOut(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	m := g.Manager()

	g.lives = 1
	entity.ForEach(m, func(b *Ball) { b.Destroy() })
	m.Refresh()

	g.Step(idle())
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected GameOver, got %s", g.Phase())
	}
	if g.Lives() != 0 {
		t.Errorf("Expected 0 lives, got %d", g.Lives())
	}
	if n := entity.CountOf[*Brick](m); n != 44 {
		t.Errorf("Bricks should be untouched, got %d", n)
	}

	g.Step(idle())
	if g.Phase() != PhaseGameOver {
		t.Errorf("GameOver should persist, got %s", g.Phase())
	}
}

func TestGameOverWinsOverVictory(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	m := g.Manager()

	g.lives = 1
	for _, e := range m.Entities() {
		if e.Kind() != KindPaddle {
			e.(interface{ Destroy() }).Destroy()
		}
	}
	m.Refresh()

	g.Step(idle())
	if g.Phase() != PhaseGameOver {
		t.Errorf("Expected GameOver when both apply, got %s", g.Phase())
	}
}

func TestScoring(t *testing.T) {
	g := newTestGame(t)
	g.phase = PhaseInProgress
	m := g.Manager()

	m.Clear()
	brick := entity.Create(m, NewBrick(&g.settings, 400, 200, 2))
	ball := entity.Create(m, NewBall(&g.settings, 400, 228))
	entity.Create(m, NewPaddle(&g.settings, &g.controls, 400, 550))

	g.Step(idle())
	if g.Score() != 10 {
		t.Errorf("Expected 10 points after first hit, got %d", g.Score())
	}
	if brick.RequiredHits != 1 || brick.Destroyed() {
		t.Fatalf("Expected brick with 1 hit left, got %d (destroyed=%v)", brick.RequiredHits, brick.Destroyed())
	}
	if ball.Velocity.Y != 8 {
		t.Errorf("Expected ball to bounce down, got vy=%v", ball.Velocity.Y)
	}

	ball.X, ball.Y = 400, 228
	ball.Velocity = core.Vec2{X: -8, Y: -8}
	g.Step(idle())

	// Second hit plus destruction bonus of 10 per original hit
	if g.Score() != 40 {
		t.Errorf("Expected 40 points after destroying the brick, got %d", g.Score())
	}
	if n := entity.CountOf[*Brick](m); n != 0 {
		t.Errorf("Expected destroyed brick to be removed, got %d", n)
	}

	g.Step(idle())
	if g.Phase() != PhaseVictory {
		t.Errorf("Expected Victory on the frame after clearing the board, got %s", g.Phase())
	}
}

func TestPaddleMovement(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	paddle := entity.All[*Paddle](g.Manager())[0]

	g.Step(core.NewInputFrame(core.ActionLeft))
	if paddle.X != 392 {
		t.Errorf("Expected paddle at 392 after moving left, got %v", paddle.X)
	}

	g.Step(core.NewInputFrame(core.ActionRight))
	g.Step(core.NewInputFrame(core.ActionRight))
	if paddle.X != 408 {
		t.Errorf("Expected paddle at 408 after moving right twice, got %v", paddle.X)
	}

	g.Step(idle())
	if paddle.X != 408 || paddle.Velocity.X != 0 {
		t.Errorf("Expected paddle to stop without input, got x=%v vx=%v", paddle.X, paddle.Velocity.X)
	}

	// Stops once the left edge is past the wall
	paddle.X = 30
	g.Step(core.NewInputFrame(core.ActionLeft))
	if paddle.X != 30 {
		t.Errorf("Expected paddle to stay at the wall, got %v", paddle.X)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionPause)
		case i%7 < 3:
			inputs[i].Set(core.ActionLeft)
		case i%7 < 6:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.Tick == 0 {
		t.Error("Expected the simulation to advance")
	}
}

func TestBallSpeedStaysConstant(t *testing.T) {
	g := newTestGame(t)
	start(t, g)

	for range 500 {
		if g.Step(idle()).State.GameOver {
			break
		}
		entity.ForEach(g.Manager(), func(b *Ball) {
			if abs(b.Velocity.X) != 8 || abs(b.Velocity.Y) != 8 {
				t.Fatalf("ball velocity drifted to %+v", b.Velocity)
			}
		})
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Lives: 3") || !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD missing lives or score: %q", hud)
	}
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("Paused overlay not drawn")
	}

	cell := screen.GetCell(6, 2)
	if cell.Rune != BrickChar || cell.Color != core.ColorDimYellow {
		t.Errorf("Expected a one-hit brick at (6, 2), got %q color %d", cell.Rune, cell.Color)
	}

	start(t, g)
	g.Render(screen)
	if strings.Contains(screen.String(), "Paused") {
		t.Error("Overlay should disappear while playing")
	}
	if !strings.ContainsRune(screen.String(), BallChar) {
		t.Error("Ball not drawn")
	}
	if !strings.ContainsRune(screen.String(), PaddleChar) {
		t.Error("Paddle not drawn")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := NewWithSettings(DefaultSettings())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60})

	g.Step(core.NewInputFrame(core.ActionPause))
	if g.Phase() != PhasePaused {
		t.Errorf("Too small game should not start, got %s", g.Phase())
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("Expected size warning, got:\n%s", screen.String())
	}
}

func TestHardVariantUsesPreset(t *testing.T) {
	g := NewHard()
	g.Reset(core.DefaultConfig())

	if g.Lives() != 2 {
		t.Errorf("Expected 2 lives on hard, got %d", g.Lives())
	}
	if g.Settings().BallVelocity != 10 {
		t.Errorf("Expected ball velocity 10 on hard, got %v", g.Settings().BallVelocity)
	}
}

func TestSetConfig(t *testing.T) {
	t.Cleanup(func() {
		baseConfig = config.DefaultArkanoidConfig()
		difficultyPreset = ""
	})

	cfg := config.DefaultArkanoidConfig()
	cfg.Gameplay.Lives = 9
	cfg.Bricks.Columns = 2
	if err := SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() failed: %v", err)
	}

	g := New()
	g.Reset(core.DefaultConfig())
	if g.Lives() != 9 {
		t.Errorf("Expected 9 lives from config, got %d", g.Lives())
	}
	if n := entity.CountOf[*Brick](g.Manager()); n != 8 {
		t.Errorf("Expected 2x4 bricks, got %d", n)
	}

	SetDifficultyPreset(config.DifficultyEasy)
	g.Reset(core.DefaultConfig())
	if g.Lives() != 5 {
		t.Errorf("Expected easy preset lives, got %d", g.Lives())
	}

	bad := config.DefaultArkanoidConfig()
	bad.Ball.Velocity = 0
	if err := SetConfig(bad); err == nil {
		t.Error("SetConfig should reject an invalid config")
	}
	if baseConfig.Gameplay.Lives != 9 {
		t.Error("Rejected config should leave the previous one in place")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"arkanoid", "arkanoid_hard"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Expected ID %q, got %q", id, g.ID())
		}
	}
}
