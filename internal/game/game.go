// Package game adapts the fruit-merge simulation to the terminal platform.
// It turns abstract input frames into engine calls, steps the session at the
// platform tick rate and draws the pit into a core.Screen.
package game

import (
	"time"

	"github.com/vovakirdan/tui-suika/internal/core"
	"github.com/vovakirdan/tui-suika/internal/engine"
	"github.com/vovakirdan/tui-suika/internal/fruit"
)

// NudgeStep is how far one left/right key press moves the aiming fruit,
// in world units.
const NudgeStep = 10.0

// flashTicks is how long the score stays highlighted after a merge.
const flashTicks = 20

// Game wraps an engine.Session with pause state, keyboard and pointer
// mapping and terminal rendering.
type Game struct {
	catalog *fruit.Catalog
	cfg     engine.Config
	notify  engine.GameOverNotifier

	session *engine.Session
	runtime core.RuntimeConfig
	dt      time.Duration
	view    viewport

	paused bool
	best   int      // Best ranked score, shown in the HUD
	flash  int      // Remaining ticks of score highlight
	board  []string // Ranking lines shown after game over
}

// New creates a game over the given catalog and physics config.
// Call Reset before the first Step.
func New(catalog *fruit.Catalog, cfg engine.Config) *Game {
	return &Game{
		catalog: catalog,
		cfg:     cfg,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "suika"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Suika"
}

// SetGameOverNotifier registers a collaborator that is told the final
// score once per session. Takes effect on the next Reset.
func (g *Game) SetGameOverNotifier(n engine.GameOverNotifier) {
	g.notify = n
}

// SetBest sets the best score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// SetBoard sets the ranking lines shown in the sidebar after game over.
func (g *Game) SetBoard(lines []string) {
	g.board = lines
}

// Reset starts a new session sized to the runtime screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false
	g.flash = 0
	g.board = nil

	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(rate)
	g.view = newViewport(g.cfg, cfg.ScreenW, cfg.ScreenH)

	g.session = engine.NewSession(g.catalog, g.cfg, engine.Options{
		Seed:     cfg.Seed,
		Score:    g,
		GameOver: g,
	})
}

// Step applies the input collected since the last tick, then advances the
// simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	before := g.session.Merges()
	g.session.Tick(g.dt)
	if g.flash > 0 {
		g.flash--
	}

	return core.StepResult{
		State:  g.State(),
		Merged: g.session.Merges() - before,
	}
}

// applyInput maps actions to engine operations. A pointer move wins over
// key nudges in the same frame.
func (g *Game) applyInput(in core.InputFrame) {
	switch {
	case in.Pointed():
		g.session.SetTargetX(g.view.worldX(in.PointerCol))
	case in.Has(core.ActionLeft):
		g.nudge(-NudgeStep)
	case in.Has(core.ActionRight):
		g.nudge(NudgeStep)
	}

	if in.Has(core.ActionDrop) {
		g.session.Release()
	}
}

func (g *Game) nudge(dx float64) {
	a, ok := g.session.Active()
	if !ok || !a.Aiming() {
		return
	}
	g.session.SetTargetX(a.X + dx)
}

// OnScoreChanged highlights the score after a merge.
func (g *Game) OnScoreChanged(int) {
	g.flash = flashTicks
}

// OnGameOver forwards the final score to the registered notifier.
func (g *Game) OnGameOver(final int) {
	if final > g.best {
		g.best = final
	}
	if g.notify != nil {
		g.notify.OnGameOver(final)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the underlying session state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}

// Summary describes a session for the game history.
type Summary struct {
	Score   int
	Merges  int
	MaxTier int
	Elapsed time.Duration
}

// Summary summarizes the current session.
func (g *Game) Summary() Summary {
	return Summary{
		Score:   g.session.Score(),
		Merges:  g.session.Merges(),
		MaxTier: g.session.MaxTier(),
		Elapsed: g.session.Elapsed(),
	}
}
