// Package lanes implements the lane-crossing game.
// The player must cross rows of scrolling traffic from the start lane to
// the finish lane without being hit.
package lanes

import (
	"math/rand"

	"github.com/vovakirdan/lanecross/internal/config"
	"github.com/vovakirdan/lanecross/internal/core"
	"github.com/vovakirdan/lanecross/internal/registry"
)

// Registered game IDs.
const (
	ClassicID = "crossing"
	RestartID = "crossing_restart"
)

// Game implements the lane-crossing rules.
type Game struct {
	id        string
	title     string
	finish    config.FinishPolicy // Forced finish policy, empty = from config
	runtime   core.RuntimeConfig
	cfg       config.LanesConfig
	rng       *rand.Rand
	board     *Board
	player    *Player
	score     int
	quit      bool
	tickCount int
	observers core.Observers
	frame     *core.Screen // Render-phase snapshot of the current tick
	frameText string
}

// configOverride is the config loaded by the CLI from --config.
var configOverride *config.LanesConfig

// UseConfig makes every subsequent Reset use cfg instead of loading from disk.
func UseConfig(cfg config.LanesConfig) {
	configOverride = &cfg
}

// New creates the classic game: after scoring the player bounces one row back.
func New() *Game {
	return &Game{
		id:    ClassicID,
		title: "Lane Crossing",
	}
}

// NewRestart creates a game that sends the player back to the start lane after scoring.
func NewRestart() *Game {
	return &Game{
		id:     RestartID,
		title:  "Lane Crossing (Restart)",
		finish: config.FinishRestart,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// AddObserver registers an observer for input-driven player moves.
// Observers survive Reset.
func (g *Game) AddObserver(obs core.PlayerObserver) {
	g.observers.Add(obs)
}

// Reset starts a new session on a fresh board.
// Panics with a *core.Fault if the board dimensions are unplayable.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg := g.loadConfig()

	if runtime.Width <= 0 {
		runtime.Width = cfg.Board.Width
	}
	if runtime.Lanes <= 0 {
		runtime.Lanes = cfg.Board.Lanes
	}
	cfg.Board.Width = runtime.Width
	cfg.Board.Lanes = runtime.Lanes
	if g.finish != "" {
		cfg.Scoring.OnFinish = g.finish
	}
	if err := cfg.Validate(); err != nil {
		panic(core.NewFault("lanes", "cannot start game", err))
	}

	g.runtime = runtime
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.board = NewBoard(runtime.Width, runtime.Lanes, g.rng, cfg.Traffic)
	g.player = NewPlayer(runtime.Width)
	g.score = 0
	g.quit = false
	g.tickCount = 0
	g.frame = nil
	g.frameText = ""
}

// loadConfig returns the override, the searched config file or the defaults.
func (g *Game) loadConfig() config.LanesConfig {
	if configOverride != nil {
		return *configOverride
	}
	cfg, err := config.LoadLanes("")
	if err != nil {
		return config.DefaultLanesConfig()
	}
	return cfg
}

// Step runs one tick: input, render, simulate.
// A terminated game ignores further steps.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.quit {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.applyInput(in)
	g.capture()
	result := g.simulate()

	result.State = g.State()
	return result
}

// applyInput applies at most one action and notifies observers after a move.
func (g *Game) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionQuit):
		g.quit = true
	case in.Action.IsMove():
		g.player.Move(in.Action)
		g.applyEdgePolicy()
		g.observers.Notify(g.player.Position())
	}
}

// applyEdgePolicy keeps the player where the configured policy allows.
func (g *Game) applyEdgePolicy() {
	pos := g.player.Position()
	maxX := g.board.Width() - 1
	maxY := g.board.Finish()

	switch g.cfg.Player.EdgePolicy {
	case config.EdgeClamp:
		pos.X = core.Clamp(pos.X, 0, maxX)
		pos.Y = core.Clamp(pos.Y, 0, maxY)
	case config.EdgeWrap:
		pos.X = core.Wrap(pos.X, g.board.Width())
		pos.Y = core.Clamp(pos.Y, 0, maxY)
	case config.EdgeNone:
		return
	}
	g.player.place(pos)
}

// simulate scores a finish, then advances traffic and checks collisions
// row by row. Start and finish lanes are skipped.
func (g *Game) simulate() core.StepResult {
	var result core.StepResult
	finish := g.board.Finish()

	if g.player.Position().Y == finish {
		g.score++
		result.Scored = true
		// Repositioning after a finish does not notify observers.
		switch g.cfg.Scoring.OnFinish {
		case config.FinishRestart:
			g.player.place(core.Pos(g.board.Width()/2, 0))
		default:
			g.player.MoveUp()
		}
	}

	for i := 0; i < g.board.Lanes(); i++ {
		if !g.board.IsTraffic(i) {
			continue
		}
		//nolint:errcheck // i is always a valid row
		g.board.Advance(i)

		pos := g.player.Position()
		// Off-board positions (edge policy "none") cannot collide.
		if pos.Y != i || !pos.In(g.board.Width(), g.board.Lanes()) {
			continue
		}
		if hit, _ := g.board.Occupied(i, pos.X); hit {
			g.quit = true
			result.Collided = true
		}
	}

	return result
}

// capture stores the render-phase frame for this tick.
func (g *Game) capture() {
	if g.frame == nil {
		g.frame = core.NewScreen(g.board.Width(), g.board.Lanes()+1)
	}
	DrawBoard(g.frame, g)
	g.frameText = RenderText(g)
}

// Render draws the frame captured during the last tick's render phase.
// Before the first tick it draws the live board.
func (g *Game) Render(dst *core.Screen) {
	if g.frame == nil {
		DrawBoard(dst, g)
		return
	}
	dst.CopyFrom(g.frame)
}

// Frame returns the text form of the last captured frame.
// Before the first tick it renders the live board.
func (g *Game) Frame() string {
	if g.frameText == "" {
		return RenderText(g)
	}
	return g.frameText
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.quit,
		Player:   g.player.Position(),
	}
}

// Width returns the board width.
func (g *Game) Width() int {
	return g.board.Width()
}

// Lanes returns the number of rows.
func (g *Game) Lanes() int {
	return g.board.Lanes()
}

// Occupied reports whether the board cell holds an obstacle.
func (g *Game) Occupied(row, col int) (bool, error) {
	return g.board.Occupied(row, col)
}

// IsTraffic reports whether row carries obstacles.
func (g *Game) IsTraffic(row int) bool {
	return g.board.IsTraffic(row)
}

// Player returns the player position.
func (g *Game) Player() core.Position {
	return g.player.Position()
}

// Score returns crossings completed so far.
func (g *Game) Score() int {
	return g.score
}

// Terminated reports whether the session has ended.
func (g *Game) Terminated() bool {
	return g.quit
}

// Ticks returns the number of ticks simulated since Reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Clone returns a deep copy of the game state. The copy draws randomness
// from a new source seeded with seed and has no observers.
func (g *Game) Clone(seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	clone := &Game{
		id:        g.id,
		title:     g.title,
		finish:    g.finish,
		runtime:   g.runtime,
		cfg:       g.cfg,
		rng:       rng,
		board:     g.board.Clone(rng),
		player:    &Player{pos: g.player.Position()},
		score:     g.score,
		quit:      g.quit,
		tickCount: g.tickCount,
		frameText: g.frameText,
	}
	if g.frame != nil {
		clone.frame = core.NewScreen(g.frame.Width(), g.frame.Height())
		clone.frame.CopyFrom(g.frame)
	}
	return clone
}

var (
	_ registry.Game       = (*Game)(nil)
	_ registry.Observable = (*Game)(nil)
	_ BoardView           = (*Game)(nil)
)

// Register the game with the registry
func init() {
	registry.Register(ClassicID, func() registry.Game {
		return New()
	})
	registry.Register(RestartID, func() registry.Game {
		return NewRestart()
	})
}
