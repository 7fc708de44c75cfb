package lanes

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/lanecross/internal/core"
)

// Visual characters for rendering
const (
	StartChar    = 'S'
	FinishChar   = 'F'
	ObstacleChar = '#'
	PlayerChar   = 'V'
	EmptyChar    = ' '
)

// BoardView is the read-only surface the renderer draws from.
type BoardView interface {
	Width() int
	Lanes() int
	Occupied(row, col int) (bool, error)
	IsTraffic(row int) bool
	Player() core.Position
	Score() int
}

// glyph decides what a single board cell shows.
// Start/finish markers win over obstacles, obstacles win over the player.
func glyph(v BoardView, row, col int) (rune, core.Color) {
	last := v.Lanes() - 1
	edge := col == 0 || col == v.Width()-1

	if row == 0 && edge {
		return StartChar, core.ColorBrightGreen
	}
	if row == last && edge {
		return FinishChar, core.ColorBrightGreen
	}
	if v.IsTraffic(row) {
		if hit, err := v.Occupied(row, col); err == nil && hit {
			return ObstacleChar, core.ColorBrightRed
		}
	}
	if p := v.Player(); p.X == col && p.Y == row {
		return PlayerChar, core.ColorBrightYellow
	}
	return EmptyChar, core.ColorDefault
}

// scoreLine formats the line printed under the board.
func scoreLine(score int) string {
	return fmt.Sprintf("Score:%d", score)
}

// RenderText draws the board as plain text: one newline-terminated line per
// row followed by a "Score:<n>" line.
func RenderText(v BoardView) string {
	var sb strings.Builder
	sb.Grow((v.Width() + 1) * (v.Lanes() + 1))

	for row := 0; row < v.Lanes(); row++ {
		for col := 0; col < v.Width(); col++ {
			r, _ := glyph(v, row, col)
			sb.WriteRune(r)
		}
		sb.WriteRune('\n')
	}
	sb.WriteString(scoreLine(v.Score()))
	sb.WriteRune('\n')
	return sb.String()
}

// DrawBoard renders the board and score line into dst, resizing it to fit.
func DrawBoard(dst *core.Screen, v BoardView) {
	score := scoreLine(v.Score())
	dst.Resize(core.Max(v.Width(), len(score)), v.Lanes()+1)
	dst.Clear()

	for row := 0; row < v.Lanes(); row++ {
		for col := 0; col < v.Width(); col++ {
			r, c := glyph(v, row, col)
			dst.SetColored(col, row, r, c)
		}
	}
	dst.DrawTextColored(0, v.Lanes(), score, core.ColorCyan)
}
