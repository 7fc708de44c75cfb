package tui

import (
	"strings"
	"sync"
)

// LogPane is a bounded line buffer shown under the board.
// It is an io.Writer so a logger can write into it directly.
type LogPane struct {
	mu      sync.Mutex
	lines   []string
	partial string
	max     int
}

// NewLogPane creates a pane keeping the last size lines.
func NewLogPane(size int) *LogPane {
	if size <= 0 {
		size = 1
	}
	return &LogPane{max: size}
}

// Write appends complete lines; a trailing fragment waits for its newline.
func (p *LogPane) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	text := p.partial + string(b)
	parts := strings.Split(text, "\n")
	p.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		p.lines = append(p.lines, strings.TrimRight(line, "\r"))
	}
	if over := len(p.lines) - p.max; over > 0 {
		p.lines = append(p.lines[:0], p.lines[over:]...)
	}
	return len(b), nil
}

// Lines returns a copy of the buffered lines, oldest first.
func (p *LogPane) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

// Max returns the line capacity.
func (p *LogPane) Max() int {
	return p.max
}
