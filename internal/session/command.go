package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrExit is returned by the exit command to end the menu loop.
var ErrExit = errors.New("session: exit requested")

// ErrInvalidChoice is returned for menu input that matches no entry.
var ErrInvalidChoice = errors.New("session: invalid menu choice")

// Command is a menu action.
type Command interface {
	Execute(ctx context.Context, m *Manager) error
}

// StartCommand plays one game.
type StartCommand struct {
	GameID string
}

// Execute runs the game to completion.
func (c StartCommand) Execute(ctx context.Context, m *Manager) error {
	_, err := m.Play(ctx, c.GameID)
	return err
}

// ExitCommand ends the program. It never starts a game.
type ExitCommand struct{}

// Execute says goodbye and returns ErrExit.
func (ExitCommand) Execute(_ context.Context, m *Manager) error {
	fmt.Fprintln(m.Out(), "Goodbye!")
	return ErrExit
}

// MenuEntry binds a choice key to a command.
type MenuEntry struct {
	Key     string
	Label   string
	Command Command
}

// Menu is the ordered list of choices offered between games.
type Menu struct {
	entries []MenuEntry
}

// NewMenu creates the standard menu: start the given game or exit.
func NewMenu(gameID string) *Menu {
	return &Menu{entries: []MenuEntry{
		{Key: "1", Label: "Start Game", Command: StartCommand{GameID: gameID}},
		{Key: "2", Label: "Exit Game", Command: ExitCommand{}},
	}}
}

// Lines returns the menu as printed, e.g. "1. Start Game".
func (m *Menu) Lines() []string {
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		lines[i] = fmt.Sprintf("%s. %s", e.Key, e.Label)
	}
	return lines
}

// Lookup returns the command for a choice.
func (m *Menu) Lookup(choice string) (Command, error) {
	choice = strings.TrimSpace(choice)
	for _, e := range m.entries {
		if e.Key == choice {
			return e.Command, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
}

// InvalidMessage is shown after a choice that matches no entry.
func (m *Menu) InvalidMessage() string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	var list string
	switch len(keys) {
	case 0:
		return "Invalid choice."
	case 1:
		list = keys[0]
	default:
		list = strings.Join(keys[:len(keys)-1], ", ") + " or " + keys[len(keys)-1]
	}
	return fmt.Sprintf("Invalid choice. Please enter %s.", list)
}
