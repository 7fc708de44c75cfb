package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanecross/internal/core"
)

// PositionLogger logs every input-driven player move.
type PositionLogger struct {
	logger *log.Logger
}

// NewPositionLogger creates an observer writing to logger.
func NewPositionLogger(logger *log.Logger) *PositionLogger {
	return &PositionLogger{logger: logger}
}

// OnPlayerMove logs the new position as "X: n, Y: m".
func (p *PositionLogger) OnPlayerMove(pos core.Position) {
	p.logger.Info("player moved", "pos", pos.String())
}

var _ core.PlayerObserver = (*PositionLogger)(nil)
