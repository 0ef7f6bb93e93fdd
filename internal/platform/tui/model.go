package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/registry"
	"github.com/vovakirdan/tui-patience/internal/storage"
)

// ResultStore persists finished games. *storage.Store implements it.
type ResultStore interface {
	SaveResult(r storage.Result) (storage.Result, error)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       ResultStore
	logger      *log.Logger
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	leaving     bool // Esc pressed: return to the menu
	resultSaved bool // Whether the current deal has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store ResultStore, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop. The game is reset by Run before the program
// starts so that the first frame already shows a deal.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.FocusMsg:
		m.inputFrame.Set(core.ActionFocusGained)
		return m, nil

	case tea.BlurMsg:
		m.inputFrame.Set(core.ActionFocusLost)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch {
	case m.keyMapper.MapKeyToFrame(msg, &m.inputFrame):
		m.recordResult()
		m.quitting = true
		return m, tea.Quit
	case m.inputFrame.Has(core.ActionBack):
		m.recordResult()
		m.leaving = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restart := m.inputFrame.Has(core.ActionRestart)
	if restart {
		// The deal being replaced is recorded if it got anywhere.
		m.recordResult()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, e := range result.Events {
		m.logger.Debug(e, "game", m.game.ID(), "seed", m.gameState.Seed)
	}

	if restart {
		m.resultSaved = false
	}
	if m.gameState.Won && !m.resultSaved {
		m.recordResult()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordResult saves the current deal once. Deals with no progress are
// not recorded.
func (m *Model) recordResult() {
	if m.resultSaved {
		return
	}
	st := m.game.State()
	if st.Score == 0 && !st.Won {
		return
	}
	m.resultSaved = true
	if m.store == nil {
		return
	}

	saved, err := m.store.SaveResult(storage.Result{
		GameID:  m.game.ID(),
		Seed:    st.Seed,
		Won:     st.Won,
		Percent: st.Score,
		Elapsed: st.Elapsed,
	})
	if err != nil {
		m.logger.Error("could not save result", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("result saved",
		"run", saved.RunID,
		"won", saved.Won,
		"percent", saved.Percent,
		"elapsed", saved.Elapsed,
	)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".patience", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.leaving {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Leaving reports whether the player asked to go back to the menu.
func (m Model) Leaving() bool {
	return m.leaving
}

// Run starts the Bubble Tea program for the given game.
// It returns true when the player left with Esc rather than quitting.
func Run(game registry.Game, store ResultStore, logger *log.Logger, cfg core.RuntimeConfig) (bool, error) {
	model := NewModel(game, store, logger, cfg)
	game.Reset(model.config)
	model.logger.Info("game started", "game", game.ID(), "seed", model.config.Seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Report motion with no button held
		tea.WithReportFocus(),    // Deliver FocusMsg and BlurMsg
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.Leaving(), nil
}
