package lanes

import "github.com/vovakirdan/lanecross/internal/core"

// Player is the token crossing the board.
// Moves are unit steps with no bounds checking; the game applies the edge policy.
type Player struct {
	pos core.Position
}

// NewPlayer places a player at the middle of the start lane.
func NewPlayer(width int) *Player {
	return &Player{pos: core.Pos(width/2, 0)}
}

// Position returns the current position.
func (p *Player) Position() core.Position {
	return p.pos
}

// MoveLeft steps one column left.
func (p *Player) MoveLeft() { p.pos = p.pos.Add(-1, 0) }

// MoveRight steps one column right.
func (p *Player) MoveRight() { p.pos = p.pos.Add(1, 0) }

// MoveUp steps one row towards the start lane.
func (p *Player) MoveUp() { p.pos = p.pos.Add(0, -1) }

// MoveDown steps one row towards the finish lane.
func (p *Player) MoveDown() { p.pos = p.pos.Add(0, 1) }

// Move applies a directional action. Returns false for non-move actions.
func (p *Player) Move(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		p.MoveLeft()
	case core.ActionRight:
		p.MoveRight()
	case core.ActionUp:
		p.MoveUp()
	case core.ActionDown:
		p.MoveDown()
	default:
		return false
	}
	return true
}

func (p *Player) place(pos core.Position) {
	p.pos = pos
}
