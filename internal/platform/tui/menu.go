package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lanecross/internal/session"
)

// MenuModel is the Bubble Tea model for the start menu.
// A single key picks an entry; anything unknown shows a hint and re-prompts.
type MenuModel struct {
	menu     *session.Menu
	stats    session.Stats
	keys     MenuKeyMap
	width    int
	message  string
	selected session.Command
	quitting bool
}

// NewMenuModel creates a menu model showing the given stats.
func NewMenuModel(menu *session.Menu, stats session.Stats, width int) MenuModel {
	return MenuModel{
		menu:  menu,
		stats: stats,
		keys:  DefaultMenuKeyMap(),
		width: width,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey resolves a choice through the menu.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		m.quitting = true
		return m, tea.Quit
	}

	cmd, err := m.menu.Lookup(msg.String())
	if err != nil {
		m.message = m.menu.InvalidMessage()
		return m, nil
	}

	m.selected = cmd
	m.message = ""
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L A N E   C R O S S"), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("High score: %d   Games played: %d", m.stats.HighScore, m.stats.TotalGames)
	b.WriteString(centerText(paneStyle.Render(stats), m.width))
	b.WriteString("\n\n")

	for _, line := range m.menu.Lines() {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText("Enter your choice:", m.width))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(alertStyle.Render(m.message), m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// Selected returns the chosen command, or nil if none was chosen.
func (m MenuModel) Selected() session.Command {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu shows the menu and returns the chosen command.
// Returns a nil command when the user quits without choosing.
func RunMenu(ctx context.Context, menu *session.Menu, stats session.Stats, width int) (session.Command, error) {
	p := tea.NewProgram(
		NewMenuModel(menu, stats, width),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
