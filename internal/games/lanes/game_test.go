package lanes

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/lanecross/internal/config"
	"github.com/vovakirdan/lanecross/internal/core"
)

// newTestGame resets a game on a width x lanes board with traffic disabled
// unless mutate turns it back on.
func newTestGame(t *testing.T, g *Game, width, lanes int, mutate func(*config.LanesConfig)) *Game {
	t.Helper()

	cfg := config.DefaultLanesConfig()
	cfg.Traffic.SpawnChance = 0
	if mutate != nil {
		mutate(&cfg)
	}

	prev := configOverride
	UseConfig(cfg)
	t.Cleanup(func() { configOverride = prev })

	g.Reset(core.RuntimeConfig{Width: width, Lanes: lanes, Seed: 1})
	return g
}

func step(g *Game, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, New(), 30, 5, nil)

	state := g.State()
	if state.Player != core.Pos(15, 0) {
		t.Errorf("Player should start at (15,0), got %v", state.Player)
	}
	if state.Score != 0 || state.GameOver {
		t.Errorf("Fresh game state = %+v", state)
	}
	if g.Width() != 30 || g.Lanes() != 5 {
		t.Errorf("Board = %dx%d, expected 30x5", g.Width(), g.Lanes())
	}

	// Play, quit, then reset again
	step(g, core.ActionDown)
	step(g, core.ActionQuit)
	g.Reset(core.RuntimeConfig{Width: 30, Lanes: 5, Seed: 2})

	if g.Terminated() || g.Score() != 0 || g.Ticks() != 0 {
		t.Errorf("Reset should start a new session, got %+v ticks=%d", g.State(), g.Ticks())
	}
	if g.Player() != core.Pos(15, 0) {
		t.Errorf("Reset should reposition the player, got %v", g.Player())
	}
}

func TestGameResetInvalidBoardPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Reset with a 1-cell board should panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Panic value should be an error, got %T", r)
		}
		var fault *core.Fault
		if !errors.As(err, &fault) {
			t.Errorf("Panic should carry *core.Fault, got %v", err)
		}
		if !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("Fault should wrap ErrInvalidConfig, got %v", err)
		}
	}()

	newTestGame(t, New(), 1, 5, nil)
}

func TestMoveAboveStartWithoutEdgePolicy(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, func(c *config.LanesConfig) {
		c.Player.EdgePolicy = config.EdgeNone
	})

	result := step(g, core.ActionUp)

	if result.State.Player != core.Pos(2, -1) {
		t.Errorf("Player should be at (2,-1), got %v", result.State.Player)
	}
	if result.State.Score != 0 {
		t.Errorf("Score should stay 0, got %d", result.State.Score)
	}
	if result.State.GameOver || result.Collided {
		t.Error("Off-board player should not collide")
	}
}

func TestOffBoardColumnNeverCollides(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, func(c *config.LanesConfig) {
		c.Player.EdgePolicy = config.EdgeNone
		c.Traffic.SpawnChance = 1
	})

	for i := 0; i < 3; i++ {
		step(g, core.ActionRight)
	}
	step(g, core.ActionDown) // (5,1): beyond the last column

	for i := 0; i < 10; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			t.Fatal("Player outside the board should never collide")
		}
	}
}

func TestEdgePolicies(t *testing.T) {
	tests := []struct {
		name     string
		policy   config.EdgePolicy
		moves    []core.Action
		expected core.Position
	}{
		{"clamp above start", config.EdgeClamp, []core.Action{core.ActionUp}, core.Pos(2, 0)},
		{"clamp left edge", config.EdgeClamp, []core.Action{core.ActionLeft, core.ActionLeft, core.ActionLeft}, core.Pos(0, 0)},
		{"clamp right edge", config.EdgeClamp, []core.Action{core.ActionRight, core.ActionRight, core.ActionRight}, core.Pos(4, 0)},
		{"wrap left edge", config.EdgeWrap, []core.Action{core.ActionLeft, core.ActionLeft, core.ActionLeft}, core.Pos(4, 0)},
		{"wrap right edge", config.EdgeWrap, []core.Action{core.ActionRight, core.ActionRight, core.ActionRight}, core.Pos(0, 0)},
		{"wrap clamps vertically", config.EdgeWrap, []core.Action{core.ActionUp}, core.Pos(2, 0)},
		{"none leaves the board", config.EdgeNone, []core.Action{core.ActionLeft, core.ActionLeft, core.ActionLeft}, core.Pos(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, New(), 5, 3, func(c *config.LanesConfig) {
				c.Player.EdgePolicy = tc.policy
			})
			for _, a := range tc.moves {
				step(g, a)
			}
			if g.Player() != tc.expected {
				t.Errorf("Player = %v, expected %v", g.Player(), tc.expected)
			}
		})
	}
}

func TestFinishScoresAndBounces(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, nil)

	g.player.MoveDown()
	g.player.MoveDown()
	if g.Player() != core.Pos(2, 2) {
		t.Fatalf("Setup: player should be on the finish row, got %v", g.Player())
	}

	result := g.Step(core.NewInputFrame())

	if !result.Scored || result.State.Score != 1 {
		t.Errorf("Reaching the finish should score 1, got %+v", result)
	}
	if result.State.Player != core.Pos(2, 1) {
		t.Errorf("Player should bounce back to (2,1), got %v", result.State.Player)
	}
}

func TestFinishViaInput(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, nil)

	r1 := step(g, core.ActionDown)
	if r1.State.Player != core.Pos(2, 1) || r1.Scored {
		t.Fatalf("First move: %+v", r1)
	}

	// Arrival and scoring happen in the same tick
	r2 := step(g, core.ActionDown)
	if !r2.Scored || r2.State.Score != 1 {
		t.Errorf("Second move should score, got %+v", r2)
	}
	if r2.State.Player != core.Pos(2, 1) {
		t.Errorf("Player should be bounced to (2,1), got %v", r2.State.Player)
	}
}

func TestFinishScoresOncePerArrival(t *testing.T) {
	g := newTestGame(t, New(), 5, 4, nil)

	for i := 0; i < 3; i++ {
		step(g, core.ActionDown)
	}
	if g.Score() != 1 {
		t.Fatalf("Score after arrival = %d, expected 1", g.Score())
	}

	// Standing still after the bounce never scores again
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Score() != 1 {
		t.Errorf("Idle ticks should not score, got %d", g.Score())
	}

	// Each new arrival scores once more
	step(g, core.ActionDown)
	step(g, core.ActionDown)
	if g.Score() != 3 {
		t.Errorf("Two more arrivals should give 3, got %d", g.Score())
	}
}

func TestRestartModeReturnsToStart(t *testing.T) {
	g := newTestGame(t, NewRestart(), 5, 3, nil)

	if g.ID() != RestartID {
		t.Fatalf("ID() = %q", g.ID())
	}

	step(g, core.ActionRight)
	step(g, core.ActionDown)
	result := step(g, core.ActionDown)

	if result.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", result.State.Score)
	}
	if result.State.Player != core.Pos(2, 0) {
		t.Errorf("Restart mode should send the player to (2,0), got %v", result.State.Player)
	}
}

func TestCollisionTerminates(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, func(c *config.LanesConfig) {
		c.Traffic.SpawnChance = 1
	})

	step(g, core.ActionLeft)
	step(g, core.ActionLeft)
	if g.Terminated() {
		t.Fatal("Traffic on row 1 must not hit a player on the start row")
	}

	result := step(g, core.ActionDown) // into column 0 of a full row

	if !result.Collided || !result.State.GameOver {
		t.Fatalf("Expected collision, got %+v", result)
	}

	// Termination is sticky and freezes the game
	score := g.Score()
	ticks := g.Ticks()
	for i := 0; i < 5; i++ {
		r := step(g, core.ActionDown)
		if !r.State.GameOver {
			t.Fatal("GameOver should stay true")
		}
	}
	if g.Score() != score || g.Ticks() != ticks || g.Player() != core.Pos(0, 1) {
		t.Error("Steps after termination should be no-ops")
	}
}

func TestStartAndFinishRowsStayClear(t *testing.T) {
	g := newTestGame(t, New(), 6, 4, func(c *config.LanesConfig) {
		c.Traffic.SpawnChance = 1
	})

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	for _, row := range []int{0, 3} {
		for col := 0; col < 6; col++ {
			if hit, _ := g.Occupied(row, col); hit {
				t.Errorf("Row %d col %d should never hold traffic", row, col)
			}
		}
	}
	for _, row := range []int{1, 2} {
		if hit, _ := g.Occupied(row, 0); !hit {
			t.Errorf("Traffic row %d should have advanced", row)
		}
	}
}

func TestQuitInput(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, nil)

	notified := 0
	g.AddObserver(core.ObserverFunc(func(core.Position) { notified++ }))

	result := step(g, core.ActionQuit)

	if !result.State.GameOver {
		t.Error("Quit should set the termination flag")
	}
	if notified != 0 {
		t.Errorf("Quit should not notify observers, got %d calls", notified)
	}
}

type recordingObserver struct {
	id    int
	calls *[]int
	seen  []core.Position
}

func (r *recordingObserver) OnPlayerMove(pos core.Position) {
	*r.calls = append(*r.calls, r.id)
	r.seen = append(r.seen, pos)
}

func TestObserversNotifiedPerMove(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, nil)

	var calls []int
	observers := make([]*recordingObserver, 3)
	for i := range observers {
		observers[i] = &recordingObserver{id: i, calls: &calls}
		g.AddObserver(observers[i])
	}

	step(g, core.ActionRight)

	if len(calls) != 3 {
		t.Fatalf("Expected 3 notifications, got %d", len(calls))
	}
	for i, id := range calls {
		if id != i {
			t.Errorf("Notification order = %v", calls)
			break
		}
	}
	for i, obs := range observers {
		if len(obs.seen) != 1 || obs.seen[0] != core.Pos(3, 0) {
			t.Errorf("Observer %d saw %v, expected [(3,0)]", i, obs.seen)
		}
	}

	// Ticks without input do not notify
	calls = calls[:0]
	g.Step(core.NewInputFrame())
	if len(calls) != 0 {
		t.Errorf("Idle tick notified %d times", len(calls))
	}
}

func TestFinishRepositionDoesNotNotify(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, nil)

	var seen []core.Position
	g.AddObserver(core.ObserverFunc(func(pos core.Position) { seen = append(seen, pos) }))

	step(g, core.ActionDown)
	step(g, core.ActionDown)

	expected := []core.Position{core.Pos(2, 1), core.Pos(2, 2)}
	if len(seen) != len(expected) {
		t.Fatalf("Observer saw %v, expected %v", seen, expected)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("Observer saw %v, expected %v", seen, expected)
		}
	}
	if g.Player() != core.Pos(2, 1) {
		t.Errorf("Player = %v after bounce", g.Player())
	}
}

func TestObserversNotifiedAtClampedEdge(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, nil)

	var seen []core.Position
	g.AddObserver(core.ObserverFunc(func(pos core.Position) { seen = append(seen, pos) }))

	step(g, core.ActionUp)

	if len(seen) != 1 || seen[0] != core.Pos(2, 0) {
		t.Errorf("Clamped move should still notify with the clamped position, got %v", seen)
	}
}

func TestScoreMonotonicAndTerminationSticky(t *testing.T) {
	g := New()
	newTestGame(t, g, 10, 5, func(c *config.LanesConfig) {
		*c = config.DefaultLanesConfig()
	})

	rng := rand.New(rand.NewSource(42))
	actions := []core.Action{core.ActionNone, core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionDown}

	last := 0
	over := false
	for i := 0; i < 2000; i++ {
		r := step(g, actions[rng.Intn(len(actions))])
		if r.State.Score < last {
			t.Fatalf("Score decreased from %d to %d at tick %d", last, r.State.Score, i)
		}
		if over && !r.State.GameOver {
			t.Fatalf("GameOver reset at tick %d", i)
		}
		last = r.State.Score
		over = r.State.GameOver
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.Action, 300)
	for i := range inputs {
		if i%7 == 0 {
			inputs[i] = core.ActionDown
		}
		if i%11 == 0 {
			inputs[i] = core.ActionRight
		}
	}

	run := func() string {
		g := newTestGame(t, New(), 30, 5, func(c *config.LanesConfig) {
			*c = config.DefaultLanesConfig()
		})
		for _, a := range inputs {
			if step(g, a).State.GameOver {
				break
			}
		}
		return g.Frame()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Same seed and inputs produced different frames:\n%s\nvs\n%s", a, b)
	}
}

func TestGameClone(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, func(c *config.LanesConfig) {
		c.Traffic.SpawnChance = 1
	})
	step(g, core.ActionRight)

	clone := g.Clone(9)

	step(g, core.ActionDown)
	g.Step(core.NewInputFrame())

	if clone.Player() != core.Pos(3, 0) {
		t.Errorf("Clone player moved with the original: %v", clone.Player())
	}
	if clone.Ticks() != 1 {
		t.Errorf("Clone ticks = %d, expected 1", clone.Ticks())
	}
	if clone.Frame() == g.Frame() {
		t.Error("Clone frame should not follow the original")
	}
}

func TestRenderTextLiteralRule(t *testing.T) {
	g := newTestGame(t, New(), 4, 2, nil)
	g.player.place(core.Pos(0, 0))

	lines := strings.Split(RenderText(g), "\n")
	if len(lines) != 4 || lines[3] != "" {
		t.Fatalf("Expected 2 board lines, a score line and a trailing newline, got %q", lines)
	}

	for col, r := range lines[0] {
		expected := ' '
		if col == 0 || col == 3 {
			expected = StartChar
		}
		if r != expected {
			t.Errorf("Row 0 col %d = %q, expected %q", col, r, expected)
		}
	}
	for col, r := range lines[1] {
		expected := ' '
		if col == 0 || col == 3 {
			expected = FinishChar
		}
		if r != expected {
			t.Errorf("Row 1 col %d = %q, expected %q", col, r, expected)
		}
	}
	if lines[2] != "Score:0" {
		t.Errorf("Score line = %q", lines[2])
	}
}

func TestRenderTextGlyphs(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, nil)
	row, _ := g.board.Row(1)
	row.(*ObstacleLane).cells[4] = true
	g.player.place(core.Pos(1, 1))
	g.score = 12

	expected := "S   S\n V  #\nF   F\nScore:12\n"
	if got := RenderText(g); got != expected {
		t.Errorf("RenderText() = %q, expected %q", got, expected)
	}

	// Obstacles win over the player
	g.player.place(core.Pos(4, 1))
	if got := strings.Split(RenderText(g), "\n")[1]; got != "    #" {
		t.Errorf("Row 1 = %q, expected obstacle over player", got)
	}
}

func TestFrameIsCapturedBeforeSimulation(t *testing.T) {
	g := newTestGame(t, New(), 5, 3, func(c *config.LanesConfig) {
		c.Traffic.SpawnChance = 1
	})

	g.Step(core.NewInputFrame())

	captured := strings.Split(g.Frame(), "\n")[1]
	live := strings.Split(RenderText(g), "\n")[1]

	if captured != "     " {
		t.Errorf("Captured row 1 = %q, expected empty pre-simulation traffic", captured)
	}
	if live[0] != ObstacleChar {
		t.Errorf("Live row 1 = %q, expected traffic after simulation", live)
	}
}

func TestRenderScreenMatchesFrame(t *testing.T) {
	g := newTestGame(t, New(), 8, 4, nil)
	step(g, core.ActionDown)

	screen := core.NewScreen(1, 1)
	g.Render(screen)

	lines := strings.Split(strings.TrimSuffix(g.Frame(), "\n"), "\n")
	if screen.Height() != len(lines) {
		t.Fatalf("Screen height = %d, expected %d", screen.Height(), len(lines))
	}
	for y, line := range lines {
		if got := strings.TrimRight(screen.Row(y), " "); got != strings.TrimRight(line, " ") {
			t.Errorf("Screen row %d = %q, frame line %q", y, got, line)
		}
	}

	if c := screen.GetCell(0, 0); c.Rune != StartChar || c.Color != core.ColorBrightGreen {
		t.Errorf("Start marker cell = %+v", c)
	}
	if c := screen.GetCell(4, 1); c.Rune != PlayerChar || c.Color != core.ColorBrightYellow {
		t.Errorf("Player cell = %+v", c)
	}
}
