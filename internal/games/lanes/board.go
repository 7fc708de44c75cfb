package lanes

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/lanecross/internal/config"
	"github.com/vovakirdan/lanecross/internal/core"
)

// Board is the ordered collection of rows. Row 0 is the start lane and the
// last row is the finish lane; neither is advanced nor collision-checked.
// Rows in between alternate Lane (even index) and ObstacleLane (odd index).
type Board struct {
	width int
	rows  []Row
}

// NewBoard builds a board of lanes rows, each width cells wide.
func NewBoard(width, lanes int, rng *rand.Rand, traffic config.TrafficConfig) *Board {
	b := &Board{
		width: width,
		rows:  make([]Row, 0, lanes),
	}
	for i := 0; i < lanes; i++ {
		if i%2 == 0 {
			b.rows = append(b.rows, NewLane(width, rng, traffic.SpawnChance))
		} else {
			b.rows = append(b.rows, NewObstacleLane(width, rng, traffic.SpawnChance, traffic.DoubleStepChance))
		}
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Lanes returns the number of rows including start and finish.
func (b *Board) Lanes() int {
	return len(b.rows)
}

// Finish returns the index of the finish lane.
func (b *Board) Finish() int {
	return len(b.rows) - 1
}

// IsTraffic reports whether row i carries obstacles (neither start nor finish).
func (b *Board) IsTraffic(i int) bool {
	return i > 0 && i < b.Finish()
}

// Row returns the row at index i.
func (b *Board) Row(i int) (Row, error) {
	if err := core.CheckIndex("row", i, len(b.rows)); err != nil {
		return nil, err
	}
	return b.rows[i], nil
}

// Occupied reports whether the cell at (col, row) holds an obstacle.
func (b *Board) Occupied(row, col int) (bool, error) {
	r, err := b.Row(row)
	if err != nil {
		return false, err
	}
	return r.Occupied(col)
}

// Advance moves traffic on row i.
func (b *Board) Advance(i int) error {
	r, err := b.Row(i)
	if err != nil {
		return err
	}
	r.Advance()
	return nil
}

// Clone returns a deep copy of the board whose rows draw from rng.
func (b *Board) Clone(rng *rand.Rand) *Board {
	out := &Board{
		width: b.width,
		rows:  make([]Row, len(b.rows)),
	}
	for i, r := range b.rows {
		out.rows[i] = cloneRow(r, rng)
	}
	return out
}

// cloneRow deep copies a single row variant.
func cloneRow(r Row, rng *rand.Rand) Row {
	switch v := r.(type) {
	case *ObstacleLane:
		return v.Clone(rng)
	case *Lane:
		return v.Clone(rng)
	default:
		panic(fmt.Sprintf("lanes: cannot clone row of type %T", r))
	}
}
