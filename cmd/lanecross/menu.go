package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanecross/internal/games/lanes"
	"github.com/vovakirdan/lanecross/internal/platform/tui"
	"github.com/vovakirdan/lanecross/internal/session"
)

// runMenu shows the start menu until the user exits.
// After a game ends, the menu comes back with updated stats.
func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.manager.Close()

	ctx := cmd.Context()
	menu := session.NewMenu(lanes.ClassicID)

	for {
		choice, err := tui.RunMenu(ctx, menu, a.manager.Stats(), a.width)
		if err != nil {
			return err
		}

		// User quit without choosing
		if choice == nil {
			return nil
		}

		err = choice.Execute(ctx, a.manager)
		if errors.Is(err, session.ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
