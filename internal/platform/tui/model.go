package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// Options configures a game model beyond the game itself.
type Options struct {
	Store      *storage.Store // Optional run storage
	Logger     *log.Logger    // Optional; discards when nil
	Player     string         // Recorded with stored runs
	HoldWindow time.Duration  // How long a key press stays held
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	player    string
	config    core.RuntimeConfig
	keys      GameKeyMap
	held      *HeldInput
	gameState core.GameState
	runID     uuid.UUID
	runSaved  bool // Whether the current run has been stored
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  opts.Store,
		logger: logger,
		player: opts.Player,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		held:   NewHeldInput(cfg.TickRate, opts.HoldWindow),
		runID:  uuid.New(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "run", m.runID, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key presses; the game sees them on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.finishRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	m.held.Press(action)
	return m, nil
}

// handleResize follows the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that scale to the screen keep their run
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.held.Frame())
	m.held.Advance()

	// A restart rewinds the tick counter; an unfinished run counts as quit
	if result.State.Ticks < prev.Ticks || (prev.GameOver && !result.State.GameOver) {
		m.finishRun(storage.OutcomeQuit)
		m.runID = uuid.New()
		m.runSaved = false
		m.logger.Debug("run restarted", "game", m.game.ID(), "run", m.runID)
	}

	m.gameState = result.State
	if m.gameState.GameOver {
		m.finishRun(m.gameState.Phase)
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun stores the current run once. Runs that never started are skipped.
func (m *Model) finishRun(outcome string) {
	if m.runSaved || m.gameState.Ticks == 0 {
		return
	}
	m.runSaved = true

	m.logger.Info("run finished",
		"game", m.game.ID(),
		"run", m.runID,
		"outcome", outcome,
		"score", m.gameState.Score,
		"ticks", m.gameState.Ticks,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		RunID:      m.runID,
		GameID:     m.game.ID(),
		Player:     m.player,
		Score:      m.gameState.Score,
		Outcome:    outcome,
		LivesLeft:  m.gameState.Lives,
		BricksLeft: m.gameState.Remaining,
		Ticks:      m.gameState.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save run", "run", m.runID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
