package lanes

import (
	"math/rand"

	"github.com/vovakirdan/lanecross/internal/core"
)

// Row is one horizontal strip of the board tracking obstacle presence per column.
type Row interface {
	// Advance shifts the row by one tick of traffic.
	Advance()
	// Occupied reports whether col holds an obstacle.
	// Returns *core.IndexOutOfRange for columns outside the row.
	Occupied(col int) (bool, error)
}

// Lane is a plain row. Each shift inserts a new cell at the head (column 0)
// and drops the tail, so obstacles travel left to right.
type Lane struct {
	cells []bool
	rng   *rand.Rand
	spawn float64 // Chance that a shift inserts an obstacle
}

// NewLane creates an empty lane of the given width.
func NewLane(width int, rng *rand.Rand, spawnChance float64) *Lane {
	return &Lane{
		cells: make([]bool, width),
		rng:   rng,
		spawn: spawnChance,
	}
}

// Advance shifts the lane once.
func (l *Lane) Advance() {
	l.shift()
}

// shift inserts a randomly decided cell at the head and drops the tail.
// The row length never changes.
func (l *Lane) shift() {
	if len(l.cells) == 0 {
		return
	}
	copy(l.cells[1:], l.cells[:len(l.cells)-1])
	l.cells[0] = l.rng.Float64() < l.spawn
}

// Occupied reports whether col holds an obstacle.
func (l *Lane) Occupied(col int) (bool, error) {
	if err := core.CheckIndex("column", col, len(l.cells)); err != nil {
		return false, err
	}
	return l.cells[col], nil
}

// Cells returns a copy of the lane contents.
func (l *Lane) Cells() []bool {
	out := make([]bool, len(l.cells))
	copy(out, l.cells)
	return out
}

// Clone returns a deep copy drawing randomness from rng.
func (l *Lane) Clone(rng *rand.Rand) *Lane {
	return &Lane{
		cells: l.Cells(),
		rng:   rng,
		spawn: l.spawn,
	}
}

// ObstacleLane is a lane whose traffic shifts once per tick and, with
// probability doubleStep, a second time, giving denser and faster traffic.
type ObstacleLane struct {
	Lane
	doubleStep float64
}

// NewObstacleLane creates an empty obstacle lane of the given width.
func NewObstacleLane(width int, rng *rand.Rand, spawnChance, doubleStepChance float64) *ObstacleLane {
	return &ObstacleLane{
		Lane:       *NewLane(width, rng, spawnChance),
		doubleStep: doubleStepChance,
	}
}

// Advance shifts once, then possibly once more.
// Each shift rolls its own obstacle independently.
func (o *ObstacleLane) Advance() {
	o.shift()
	if o.rng.Float64() < o.doubleStep {
		o.shift()
	}
}

// Clone returns a deep copy drawing randomness from rng.
func (o *ObstacleLane) Clone(rng *rand.Rand) *ObstacleLane {
	return &ObstacleLane{
		Lane:       *o.Lane.Clone(rng),
		doubleStep: o.doubleStep,
	}
}

var (
	_ Row = (*Lane)(nil)
	_ Row = (*ObstacleLane)(nil)
)
