// Package window runs the shooter in a desktop window with ebiten.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// ScoreSaver persists finished matches. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(gameID, matchID, player string, score, level int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Options configures a window session.
type Options struct {
	Store     ScoreSaver // nil disables score saving
	Logger    *log.Logger
	Player    string
	Listeners []core.Listener
	TickRate  int     // ebiten TPS, one match tick per update
	Scale     float64 // window size relative to the arena, 0 means 1
	Seed      int64
}

// Game is the ebiten.Game driving one shooter session.
type Game struct {
	game    *shooter.Game
	opts    Options
	logger  *log.Logger
	start   time.Time
	now     func() time.Time
	matchID string
	best    int
}

// NewGame resets a shooter and loads the best score.
func NewGame(opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		game:   shooter.New(),
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
	g.game.Reset(core.RuntimeConfig{TickRate: opts.TickRate, Seed: opts.Seed})
	g.start = g.now()

	if opts.Store != nil {
		best, err := opts.Store.HighScore(shooter.GameID)
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		g.best = best
	}
	return g
}

// Update samples the keyboard and advances the match by one tick.
func (g *Game) Update() error {
	frame := SampleFrame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	return g.step(frame)
}

// step runs one tick with frame and dispatches its events.
func (g *Game) step(frame core.InputFrame) error {
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := g.game.Step(frame)
	for _, e := range result.Events {
		g.handleEvent(e)
		for _, l := range g.opts.Listeners {
			l.OnEvent(e)
		}
	}
	return nil
}

func (g *Game) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventMatchStarted:
		g.matchID = uuid.NewString()
		g.logger.Info("match started", "match", g.matchID, "player", g.opts.Player)
	case core.EventMatchEnded:
		g.logger.Info("match ended", "match", g.matchID, "score", e.Score, "level", e.Level, "ticks", e.Tick)
		g.saveScore(e)
	}
}

func (g *Game) saveScore(e core.Event) {
	if g.opts.Store == nil || e.Score <= 0 || g.matchID == "" {
		return
	}
	if _, err := g.opts.Store.SaveScore(shooter.GameID, g.matchID, g.opts.Player, e.Score, e.Level); err != nil {
		g.logger.Warn("could not save score", "match", g.matchID, "error", err)
		return
	}
	g.matchID = ""
	g.best = max(g.best, e.Score)
}

// Draw renders the current match.
func (g *Game) Draw(screen *ebiten.Image) {
	match := g.game.Match()
	ms := float64(g.now().Sub(g.start).Milliseconds())
	drawSnapshot(screen, match.Snapshot(), shooter.Starfield(ms, match.Bounds()), g.game.State().Paused, g.best)
}

// Layout keeps the logical screen at arena size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.game.Match().Bounds()
	return int(b.W), int(b.H)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.game.State()
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowSize(int(float64(w)*g.opts.Scale), int(float64(h)*g.opts.Scale))
	ebiten.SetTPS(g.opts.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
