package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lanecross/internal/core"
	"github.com/vovakirdan/lanecross/internal/registry"
	"github.com/vovakirdan/lanecross/internal/session"
)

// Model is the Bubble Tea model for running a game session.
// The game must already be Reset; the model only steps it.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	queue    *core.InputQueue
	pane     *LogPane
	state    core.GameState
	collided bool
	aborted  bool
	over     bool // Collision screen is showing; any key leaves
	quitting bool
}

// NewModel creates a model for a reset game.
// Key presses are queued up to queueSize; pane may be nil.
func NewModel(game registry.Game, cfg core.RuntimeConfig, pane *LogPane, queueSize int) Model {
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.Width, cfg.Lanes+1),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		queue:  core.NewInputQueue(queueSize),
		pane:   pane,
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions; abort and the game-over screen bypass the queue.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, abort := m.keys.Action(msg)
	if abort {
		m.aborted = true
		m.quitting = true
		return m, tea.Quit
	}

	if m.over {
		m.quitting = true
		return m, tea.Quit
	}

	m.queue.Push(action)
	return m, nil
}

// handleTick polls at most one queued action and steps the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.over || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.queue.Poll())
	m.state = result.State
	if result.Collided {
		m.collided = true
	}

	if m.state.GameOver {
		m.queue.Reset()
		if m.collided {
			// Stay on screen until a key is pressed
			m.over = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickInterval())
}

// View renders the board, status line, diagnostics pane and help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.game.Title()))
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(RenderScreen(m.screen)))
	b.WriteString("\n")

	if m.over {
		b.WriteString(alertStyle.Render(fmt.Sprintf("Crashed! Final score: %d", m.state.Score)))
		b.WriteString("\n")
		b.WriteString(messageStyle.Render("Press any key to return to the menu"))
		b.WriteString("\n")
	}

	if m.pane != nil {
		lines := m.pane.Lines()
		for i := len(lines); i < m.pane.Max(); i++ {
			lines = append(lines, "")
		}
		b.WriteString(paneStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Result reports how the session ended.
func (m Model) Result() session.RunResult {
	return session.RunResult{
		State:    m.state,
		Collided: m.collided,
		Aborted:  m.aborted,
	}
}

// Runner runs games in a full-screen Bubble Tea program.
type Runner struct {
	Pane      *LogPane // Shared across games; may be nil
	QueueSize int
}

// Run plays a reset game until it terminates or the user aborts.
func (r Runner) Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig) (session.RunResult, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, r.Pane, r.QueueSize),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return session.RunResult{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return session.RunResult{State: game.State(), Aborted: true}, nil
	}
	return m.Result(), nil
}

var _ session.Runner = Runner{}
