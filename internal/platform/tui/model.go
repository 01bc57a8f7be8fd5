package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// helpHeight is the number of rows reserved below the game for the help footer.
const helpHeight = 1

// Model is the Bubble Tea model running a single game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game and starts it.
// A nil logger discards all events.
func NewModel(game Game, cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameCfg := cfg
	gameCfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(gameCfg)
	logger.Info("game started", "game", game.ID(), "title", game.Title(), "seed", cfg.Seed)

	return Model{
		game:       game,
		screen:     core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH),
		config:     cfg,
		keys:       keys,
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "state", m.gameState.Outcome)
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleMouse queues a click on the game screen.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := MouseAction(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Click(msg.X, msg.Y, action)
	return m, nil
}

// handleResize resizes the screen buffer. The game keeps its progress.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	h := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the game by one tick and logs state transitions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case result.Restarted:
		m.logger.Info("game restarted", "game", m.game.ID())
	case !prev.Started && m.gameState.Started:
		m.logger.Debug("first move", "game", m.game.ID())
	}
	if !prev.GameOver && m.gameState.GameOver {
		m.logger.Info("game over",
			"game", m.game.ID(),
			"outcome", m.gameState.Outcome,
			"elapsed", m.gameState.Elapsed,
		)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program in the local terminal.
func Run(game Game, cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) error {
	model := NewModel(game, cfg, keys, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
