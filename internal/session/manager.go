// Package session owns everything that outlives a single game: the stats
// ledger, the master RNG that seeds every game, and the logger.
package session

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanecross/internal/core"
	"github.com/vovakirdan/lanecross/internal/registry"
	"github.com/vovakirdan/lanecross/internal/storage"
)

// RunResult is what a Runner reports once a game stops.
type RunResult struct {
	State    core.GameState
	Collided bool // The session ended on a collision
	Aborted  bool // The user interrupted the session before it terminated
}

// Runner drives a reset game until it terminates.
type Runner interface {
	Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig) (RunResult, error)
}

// RunnerFunc adapts a plain function to Runner.
type RunnerFunc func(ctx context.Context, game registry.Game, cfg core.RuntimeConfig) (RunResult, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig) (RunResult, error) {
	return f(ctx, game, cfg)
}

// Stats are the in-process counters shown in the menu.
type Stats struct {
	HighScore  int
	TotalGames int
}

// Outcome describes one finished session.
type Outcome struct {
	GameID    string
	Seed      int64
	Score     int
	Ticks     int
	EndReason string
	Frame     string // Text form of the last rendered frame, if the game has one
}

// Options configures a Manager.
type Options struct {
	Runtime   core.RuntimeConfig // Board size and tick rate for every game
	Seed      int64              // Master seed; 0 seeds from the clock
	Runner    Runner
	Store     *storage.Store // Nil opens a private in-memory ledger
	LogOutput io.Writer      // Defaults to stderr
	LogLevel  log.Level
	Out       io.Writer // Menu output such as the farewell; defaults to stdout
}

// Manager runs games and keeps session statistics for the process lifetime.
type Manager struct {
	runtime core.RuntimeConfig
	rng     *rand.Rand
	runner  Runner
	store   *storage.Store
	logger  *log.Logger
	out     io.Writer
}

// NewManager creates a manager. The ledger starts empty on every call.
func NewManager(opts Options) (*Manager, error) {
	if opts.Runner == nil {
		return nil, fmt.Errorf("session: no runner configured")
	}

	store := opts.Store
	if store == nil {
		var err error
		store, err = storage.OpenMemory()
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logOut := opts.LogOutput
	if logOut == nil {
		logOut = os.Stderr
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	runtime := opts.Runtime
	if runtime.Width <= 0 && runtime.Lanes <= 0 && runtime.Tick <= 0 {
		runtime = core.DefaultConfig()
	}

	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "lanecross",
		Level:           opts.LogLevel,
	})

	return &Manager{
		runtime: runtime,
		rng:     rand.New(rand.NewSource(seed)),
		runner:  opts.Runner,
		store:   store,
		logger:  logger,
		out:     out,
	}, nil
}

// Logger returns the session logger.
func (m *Manager) Logger() *log.Logger {
	return m.logger
}

// Out returns the writer used for menu messages.
func (m *Manager) Out() io.Writer {
	return m.out
}

// Play creates the game, seeds it from the master RNG, runs it to
// completion and records the result.
// Reset panics with a *core.Fault when the board cannot be built.
func (m *Manager) Play(ctx context.Context, gameID string) (Outcome, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return Outcome{}, fmt.Errorf("session: %w", err)
	}

	if obs, ok := game.(registry.Observable); ok {
		obs.AddObserver(NewPositionLogger(m.logger))
	}

	cfg := m.runtime
	cfg.Seed = m.rng.Int63()
	game.Reset(cfg)

	m.logger.Info("session started", "game", gameID, "seed", cfg.Seed)

	res, err := m.runner.Run(ctx, game, cfg)
	if err != nil {
		return Outcome{}, fmt.Errorf("session: run %s: %w", gameID, err)
	}

	outcome := Outcome{
		GameID:    gameID,
		Seed:      cfg.Seed,
		Score:     res.State.Score,
		Ticks:     ticksOf(game),
		EndReason: endReason(res),
		Frame:     frameOf(game),
	}

	_, err = m.store.RecordSession(storage.SessionRecord{
		GameID:    outcome.GameID,
		Score:     outcome.Score,
		Ticks:     outcome.Ticks,
		EndReason: outcome.EndReason,
	})
	if err != nil {
		m.logger.Warn("could not record session", "error", err)
	}

	m.logger.Info("session ended", "game", gameID, "score", outcome.Score, "reason", outcome.EndReason)
	return outcome, nil
}

// Stats returns the high score and number of games played so far.
func (m *Manager) Stats() Stats {
	total, err := m.store.TotalStats()
	if err != nil {
		m.logger.Warn("could not read stats", "error", err)
		return Stats{}
	}
	return Stats{
		HighScore:  total.HighScore,
		TotalGames: total.GamesCount,
	}
}

// Close releases the stats ledger.
func (m *Manager) Close() error {
	return m.store.Close()
}

func endReason(res RunResult) string {
	switch {
	case res.Aborted:
		return storage.EndAborted
	case res.Collided:
		return storage.EndCollision
	default:
		return storage.EndQuit
	}
}

func frameOf(game registry.Game) string {
	if f, ok := game.(interface{ Frame() string }); ok {
		return f.Frame()
	}
	return ""
}

func ticksOf(game registry.Game) int {
	if t, ok := game.(interface{ Ticks() int }); ok {
		return t.Ticks()
	}
	return 0
}
