package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanecross/internal/games/lanes"
	"github.com/vovakirdan/lanecross/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play one game without the menu",
	Long: `Start a single game and print its last frame and score when it ends.

The game defaults to "crossing". Run 'lanecross list' for every mode.

Examples:
  lanecross play
  lanecross play crossing_restart
  lanecross play --config ./my-lanes.yaml --fps 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := lanes.ClassicID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'lanecross list' to see available games", gameID)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.manager.Close()

	outcome, err := a.manager.Play(cmd.Context(), gameID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, outcome.Frame)
	fmt.Fprintf(out, "Game over: %s\n", outcome.EndReason)
	return nil
}
