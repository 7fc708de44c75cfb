// lanecross is a terminal lane-crossing game.
//
// Usage:
//
//	lanecross                - Start menu (1 to play, 2 to exit)
//	lanecross play [game]    - Play one game directly
//	lanecross list           - List available game modes
//
// Global flags:
//
//	--config <path>     - Custom lanes.yaml
//	--seed <value>      - Master RNG seed (0 = time based)
//	--fps <rate>        - Override the configured tick rate
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanecross/internal/config"
	"github.com/vovakirdan/lanecross/internal/core"
	"github.com/vovakirdan/lanecross/internal/games/lanes"
	"github.com/vovakirdan/lanecross/internal/platform/tui"
	"github.com/vovakirdan/lanecross/internal/session"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
)

func main() {
	os.Exit(run(os.Stderr))
}

// run executes the CLI and returns the exit code. Errors and escaped
// faults are reported on stderr.
func run(stderr io.Writer) (code int) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var fault *core.Fault
		if err, ok := r.(error); ok && errors.As(err, &fault) {
			fmt.Fprintf(stderr, "Exception: %v\n", fault)
			code = 1
			return
		}
		panic(r)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "lanecross",
	Short: "Cross the lanes without getting hit",
	Long: `Lane Cross is a terminal arcade game. Move the V from the start lane
to the finish lane through scrolling traffic. Every crossing scores a point;
one hit ends the game.

Controls:
  a/d or Left/Right  - Move sideways
  w/s or Up/Down     - Move back / forward
  q                  - End the game
  Ctrl+C             - Abort

Examples:
  lanecross
  lanecross play crossing_restart
  lanecross --seed 42 --log-level debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lanes.yaml")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}

// app bundles what every interactive command needs.
type app struct {
	manager *session.Manager
	width   int
}

// newApp loads the config, hands it to the game package and builds the
// session manager with a TUI runner.
func newApp() (*app, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("lanecross: an interactive terminal is required")
	}

	cfg, err := config.LoadLanes(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("lanecross: %w", err)
	}
	lanes.UseConfig(cfg)

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("lanecross: %w", err)
	}

	runtime := core.RuntimeConfig{
		Width: cfg.Board.Width,
		Lanes: cfg.Board.Lanes,
		Tick:  cfg.TickInterval(),
	}
	if flagFPS > 0 {
		runtime.Tick = time.Second / time.Duration(flagFPS)
	}

	pane := tui.NewLogPane(cfg.Session.LogLines)
	manager, err := session.NewManager(session.Options{
		Runtime:   runtime,
		Seed:      flagSeed,
		Runner:    tui.Runner{Pane: pane, QueueSize: cfg.Session.QueueSize},
		LogOutput: pane,
		LogLevel:  level,
		Out:       os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	return &app{manager: manager, width: width}, nil
}
