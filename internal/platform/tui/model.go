package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

// DefaultHoldTicks keeps a pressed key held long enough to bridge the gap
// between terminal auto-repeats.
const DefaultHoldTicks = 10

// Options configures a game session.
type Options struct {
	Store     ScoreStore      // nil disables score saving
	Logger    *log.Logger     // nil discards logs
	Player    string          // name stored with each score
	Listeners []core.Listener // receive every game event, e.g. audio cues
	HoldTicks int             // 0 means DefaultHoldTicks
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	held      *core.HeldKeys
	gameState core.GameState
	matchID   string
	best      int
	board     ScoreboardModel
	showBoard bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		opts:   opts,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   core.NewHeldKeys(opts.HoldTicks),
	}
	m.help.Width = cfg.ScreenW

	// Init has a value receiver, so the game is reset here.
	game.Reset(cfg)
	m.gameState = game.State()
	m.best = m.loadBest()
	return m
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

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBoard {
		return m.updateBoard(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		if m.gameState.Phase != core.PhaseRunning || m.gameState.Paused {
			m.board = NewScoreboardModel(m.opts.Store, m.game.ID(), m.game.Title(), m.config.ScreenW, m.config.ScreenH)
			m.showBoard = true
		}
		return m, nil
	}

	action, held := m.keys.Resolve(msg)
	switch {
	case action == core.ActionNone:
	case held:
		m.held.Release(opposite(action))
		m.held.Press(action)
	default:
		m.held.Trigger(action)
	}
	return m, nil
}

// updateBoard forwards input to the scoreboard overlay.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = board
	}
	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		m.showBoard = false
	}
	return m, cmd
}

// handleResize processes window resize events. The arena has a fixed size,
// so the match keeps running and only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.showBoard {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleTick runs one simulation step and dispatches its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showBoard {
		// The board only opens while the match is not advancing.
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.held.Frame())
	m.gameState = result.State

	for _, e := range result.Events {
		m.handleEvent(e)
		for _, l := range m.opts.Listeners {
			l.OnEvent(e)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent tracks match identity and persists finished matches.
func (m *Model) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventMatchStarted:
		m.matchID = uuid.NewString()
		m.held.Reset()
		m.logger.Info("match started", "game", m.game.ID(), "match", m.matchID, "player", m.opts.Player)

	case core.EventMatchEnded:
		m.logger.Info("match ended",
			"game", m.game.ID(),
			"match", m.matchID,
			"score", e.Score,
			"level", e.Level,
			"ticks", e.Tick,
		)
		m.saveScore(e)
	}
}

// saveScore stores a finished match once. Failures are logged; the session
// continues regardless.
func (m *Model) saveScore(e core.Event) {
	if m.opts.Store == nil || e.Score <= 0 || m.matchID == "" {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.matchID, m.opts.Player, e.Score, e.Level); err != nil {
		m.logger.Warn("could not save score", "match", m.matchID, "error", err)
		return
	}
	m.matchID = ""
	m.best = max(m.best, e.Score)
}

// loadBest reads the current high score, or 0 without a store.
func (m *Model) loadBest() int {
	if m.opts.Store == nil {
		return 0
	}
	best, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return best
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

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
	if m.showBoard {
		return m.board.View()
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.best > 0 {
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render(fmt.Sprintf("best %d", m.best)) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
