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

	"github.com/vovakirdan/tui-supaplex/internal/core"
	"github.com/vovakirdan/tui-supaplex/internal/registry"
	"github.com/vovakirdan/tui-supaplex/internal/storage"
)

// Settings holds the front end options that are not part of the game's
// runtime config.
type Settings struct {
	HoldTicks     int         // ticks a key stays held after its last event
	Logger        *log.Logger // nil discards
	ScreenshotDir string      // empty uses ~/.supaplex/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	settings  Settings
	keyMapper *KeyMapper
	held      *HeldKeys
	pacer     *pacer
	pending   core.InputFrame // one-shot actions waiting for the next tick
	gameState core.GameState

	embedded   bool // hosted inside a session; back returns to its menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, settings Settings) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := settings.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		settings:  settings,
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(settings.HoldTicks),
		pacer:     newPacer(cfg.TickRate),
		pending:   core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return m.pacer.next()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game draws into whatever screen it gets, so a resize keeps
		// the level running.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionAlternate:
		m.held.Press(action)
	case core.ActionPause, core.ActionRestart:
		m.pending.Set(action)
	case core.ActionBack:
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
	case core.ActionNone:
		if key.Matches(msg, m.keyMapper.Keys.Screenshot) {
			m.saveScreenshot()
		}
	}

	return m, nil
}

// handleTick runs the simulation ticks that are due since the last timer
// message.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	steps, dropped := m.pacer.due(now)
	if dropped > 0 {
		m.logger.Debug("dropping ticks after a stall", "dropped", dropped)
	}

	for i := 0; i < steps; i++ {
		m.step()
	}

	return m, m.pacer.next()
}

// step advances the game by one tick with the pending input.
func (m *Model) step() {
	frame := m.pending.Clone()
	m.pending.Clear()
	m.held.Apply(&frame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	if frame.Has(core.ActionRestart) {
		m.held.Reset()
	}
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.saveResults()
}

// saveResults persists finished level attempts and the final score.
func (m *Model) saveResults() {
	if src, ok := m.game.(registry.ResultSource); ok {
		for _, r := range src.Results() {
			m.logger.Info("level ended", "level", r.LevelID, "status", r.Status, "ticks", r.Ticks)
			if m.store == nil {
				continue
			}
			if _, err := m.store.SaveResult(r); err != nil {
				m.logger.Warn("could not save result", "error", err)
			}
		}
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.logger.Warn("could not save score", "error", err)
			}
		}
		m.scoreSaved = true
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.settings.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("no home directory for screenshots", "error", err)
			return
		}
		dir = filepath.Join(home, ".supaplex", "screenshots")
	}
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

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game. It reports whether
// the player left with Back rather than Quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, settings Settings) (bool, error) {
	model := NewModel(game, store, cfg, settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
