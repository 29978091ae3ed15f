package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/entity"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// Phase is the meta-state of a game.
type Phase int

const (
	PhasePaused Phase = iota
	PhaseGameOver
	PhaseInProgress
	PhaseVictory
)

// String returns the phase name used in snapshots and stored runs.
func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseInProgress:
		return "playing"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Minimum terminal size that still shows every brick column.
const (
	minScreenW = 24
	minScreenH = 10
)

// baseConfig is the configuration new games start from.
var baseConfig = config.DefaultArkanoidConfig()

// difficultyPreset is applied on top of baseConfig by the default variant.
var difficultyPreset config.DifficultyPreset

// SetConfig replaces the configuration used by games reset afterwards.
// Invalid configurations are rejected and leave the current one in place.
func SetConfig(cfg config.ArkanoidConfig) error {
	if _, err := SettingsFromConfig(cfg); err != nil {
		return err
	}
	baseConfig = cfg
	return nil
}

// SetDifficultyPreset sets the preset for the default variant.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements the Arkanoid rules on top of an entity manager.
type Game struct {
	id     string
	title  string
	preset config.DifficultyPreset
	fixed  *Settings // Overrides config when set

	settings Settings
	manager  *entity.Manager
	controls Controls

	phase                 Phase
	lives                 int
	score                 int
	tickCount             int
	pausePressedLastFrame bool

	screenTooSmall bool
}

// New creates the standard game, using the CLI difficulty preset if any.
func New() *Game {
	return &Game{id: "arkanoid", title: "Arkanoid"}
}

// NewHard creates the hard variant.
func NewHard() *Game {
	return &Game{id: "arkanoid_hard", title: "Arkanoid (Hard)", preset: config.DifficultyHard}
}

// NewWithSettings creates a game that ignores the package configuration.
func NewWithSettings(s Settings) *Game {
	return &Game{id: "arkanoid", title: "Arkanoid", fixed: &s}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Description returns a one-line summary for game lists.
func (g *Game) Description() string {
	return "Break every brick; some need two or three hits"
}

// Reset rebuilds the game for the given terminal and restarts it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.Resize(runtime)
	g.settings = g.resolveSettings()
	g.manager = entity.NewManager()
	g.pausePressedLastFrame = false
	g.Restart()
}

func (g *Game) resolveSettings() Settings {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg := baseConfig
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	config.ApplyArkanoidPreset(&cfg, preset)

	s, err := SettingsFromConfig(cfg)
	if err != nil {
		return DefaultSettings()
	}
	return s
}

// Restart repopulates the board: the brick grid, one centered ball and the
// paddle near the bottom. Lives are refilled and the game waits paused.
func (g *Game) Restart() {
	s := &g.settings

	g.lives = s.Lives
	g.score = 0
	g.tickCount = 0
	g.phase = PhasePaused
	g.manager.Clear()

	for col := 0; col < s.BrickColumns; col++ {
		for row := 0; row < s.BrickRows; row++ {
			x := float64(col+s.BrickStartColumn) * (s.BrickW + s.BrickSpacing)
			y := float64(row+s.BrickStartRow) * (s.BrickH + s.BrickSpacing)
			hits := 1 + (col*row)%3
			entity.Create(g.manager, NewBrick(s, s.BrickOffsetX+x, y, hits))
		}
	}

	g.spawnBall()
	entity.Create(g.manager, NewPaddle(s, &g.controls, s.WindowW/2, s.WindowH-s.PaddleBottomOffset))
}

func (g *Game) spawnBall() *Ball {
	return entity.Create(g.manager, NewBall(&g.settings, g.settings.WindowW/2, g.settings.WindowH/2))
}

// Step advances the game by one frame: pause toggle, restart, then the
// simulation if the game is in progress.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.handlePauseKey(in.Has(core.ActionPause))

	if in.Has(core.ActionRestart) {
		g.Restart()
	}

	if g.phase == PhaseInProgress {
		g.runFrame(in)
	}

	return core.StepResult{State: g.State()}
}

// handlePauseKey toggles pause on the frame the key goes down.
func (g *Game) handlePauseKey(held bool) {
	if held && !g.pausePressedLastFrame {
		switch g.phase {
		case PhasePaused:
			g.phase = PhaseInProgress
		case PhaseInProgress:
			g.phase = PhasePaused
		}
	}
	g.pausePressedLastFrame = held
}

// runFrame runs one in-progress frame. The lives and board checks happen
// before the update, so a phase change still lets this frame finish.
func (g *Game) runFrame(in core.InputFrame) {
	g.tickCount++
	g.controls = Controls{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}

	if entity.CountOf[*Ball](g.manager) == 0 {
		g.spawnBall()
		g.lives--
	}

	if entity.CountOf[*Brick](g.manager) == 0 {
		g.phase = PhaseVictory
	}

	if g.lives <= 0 {
		g.phase = PhaseGameOver
	}

	g.manager.Update()
	g.resolveCollisions()
	g.manager.Refresh()
}

// resolveCollisions tests every ball against every brick, then every paddle.
func (g *Game) resolveCollisions() {
	entity.ForEach(g.manager, func(ball *Ball) {
		entity.ForEach(g.manager, func(brick *Brick) {
			alreadyDestroyed := brick.Destroyed()
			if SolveBrickBall(brick, ball) && !alreadyDestroyed {
				g.score += g.settings.HitPoints
				if brick.Destroyed() {
					g.score += g.settings.HitPoints * brick.InitialHits
				}
			}
		})
		entity.ForEach(g.manager, func(paddle *Paddle) {
			SolvePaddleBall(paddle, ball)
		})
	})
}

func (g *Game) bricksLeft() int {
	if g.manager == nil {
		return 0
	}
	return entity.CountOf[*Brick](g.manager)
}

// Resize adapts to a new terminal size without restarting the run.
// The world is scaled onto the screen, so only the size check changes.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Manager exposes the entity manager.
func (g *Game) Manager() *entity.Manager { return g.manager }

// Settings returns the settings of the current run.
func (g *Game) Settings() Settings { return g.settings }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Phase:    g.phase.String(),
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseVictory,
		Paused:   g.phase == PhasePaused,

		Remaining: g.bricksLeft(),
		Ticks:     g.tickCount,
	}
}

// Render draws the board, the HUD and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	canvas := core.NewCanvas(dst, field, g.settings.WindowW, g.settings.WindowH)
	g.manager.Draw(canvas)

	g.renderOverlay(dst)
}

// renderHUD draws lives and score on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Lives: %d", g.lives))
	dst.DrawTextCentered(0, g.title)

	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(dst.Width()-len(scoreText)-1, 0, scoreText)
}

// renderOverlay draws the message box for every phase except play.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhasePaused:
		g.drawCenteredBox(dst, "Paused", "P to play  |  ←/→ to move  |  Q to quit")
	case PhaseGameOver:
		g.drawCenteredBox(dst, "Game over!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case PhaseVictory:
		g.drawCenteredBox(dst, "You won!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}

// Register the games with the registry
func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
	registry.Register("arkanoid_hard", func() registry.Game {
		return NewHard()
	})
}
