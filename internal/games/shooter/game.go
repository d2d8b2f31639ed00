package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "shooter"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Match to the platform's registry.Game interface.
// It adds pause and the menu/restart key handling on top of the match.
type Game struct {
	match   *Match
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	paused  bool
	frames  int // rendered frames, drives the starfield
	events  []core.Event
}

// New creates a new shooter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset loads the config and puts a fresh match in the menu phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	g.cfg = cfg

	g.match = NewMatch(cfg, runtime.Seed)
	g.match.Subscribe(core.ListenerFunc(func(e core.Event) {
		g.events = append(g.events, e)
	}))
	g.paused = false
	g.frames = 0
	g.events = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.match.Phase() {
	case core.PhaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.match.Start()
		}
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.paused = false
			g.match.Start()
		}
	case core.PhaseRunning:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.match.Tick(InputFromFrame(in))
		}
	}

	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.match.Phase(),
		Score:    g.match.Score(),
		Level:    g.match.Level(),
		GameOver: g.match.Phase() == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Match exposes the underlying match for frontends that draw or listen directly.
func (g *Game) Match() *Match {
	return g.match
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
