// Package registry maps game mode IDs ("crossing", "crossing_restart") to
// factories. Modes register from init(); the session manager creates them
// by ID and the list command prints them.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/lanecross/internal/core"
)

// Game is a playable lane-crossing mode.
// Implementations are pure simulation; the TUI feeds them one InputFrame
// per tick and draws whatever Render produces.
type Game interface {
	// ID returns the mode ID recorded with each finished session.
	ID() string

	// Title is shown above the board and by the list command.
	Title() string

	// Reset starts a new session on a fresh board of the given size,
	// drawing traffic from the given seed.
	Reset(cfg core.RuntimeConfig)

	// Step runs one tick with at most one queued action.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board and score into dst.
	Render(dst *core.Screen)

	// State returns score, termination flag and player position.
	State() core.GameState
}

// Observable is implemented by games that report player moves.
type Observable interface {
	AddObserver(obs core.PlayerObserver)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, not yet Reset, game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. The title is read once from a throwaway instance.
// Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
