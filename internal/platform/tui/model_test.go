package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lanecross/internal/config"
	"github.com/vovakirdan/lanecross/internal/core"
	"github.com/vovakirdan/lanecross/internal/games/lanes"
)

func newTestModel(t *testing.T, width, lanesN int, spawn float64, pane *LogPane) Model {
	t.Helper()

	cfg := config.DefaultLanesConfig()
	cfg.Traffic.SpawnChance = spawn
	lanes.UseConfig(cfg)

	rc := core.RuntimeConfig{Width: width, Lanes: lanesN, Seed: 1}
	g := lanes.New()
	g.Reset(rc)
	return NewModel(g, rc, pane, 4)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelTickConsumesOneKey(t *testing.T) {
	m := newTestModel(t, 5, 3, 0, nil)

	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, runeKey('d'))
	if m.queue.Len() != 2 {
		t.Fatalf("Expected 2 queued keys, got %d", m.queue.Len())
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("Tick should schedule the next tick")
	}
	if got := m.Result().State.Player; got != core.Pos(3, 0) {
		t.Errorf("After one tick player = %v, expected (3, 0)", got)
	}

	m, _ = update(t, m, TickMsg{})
	if got := m.Result().State.Player; got != core.Pos(4, 0) {
		t.Errorf("After two ticks player = %v, expected (4, 0)", got)
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m := newTestModel(t, 5, 3, 0, nil)

	m, _ = update(t, m, runeKey('x'))
	if m.queue.Len() != 0 {
		t.Error("Unbound key should not be queued")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t, 5, 3, 0, nil)

	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg{})
	if !isQuit(cmd) {
		t.Error("Quit should end the program after the tick")
	}

	res := m.Result()
	if !res.State.GameOver || res.Collided || res.Aborted {
		t.Errorf("Unexpected result after quit: %+v", res)
	}
	if m.View() != "" {
		t.Error("View should be empty once quitting")
	}
}

func TestModelAbort(t *testing.T) {
	m := newTestModel(t, 5, 3, 0, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit immediately")
	}
	if !m.Result().Aborted {
		t.Error("Result should report an aborted session")
	}
	if m.Result().State.GameOver {
		t.Error("Abort should not touch the game")
	}
}

func TestModelCollisionWaitsForKey(t *testing.T) {
	m := newTestModel(t, 3, 3, 1, nil)

	m, _ = update(t, m, runeKey('s'))
	for i := 0; i < 3 && !m.over; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if !m.over {
		t.Fatal("Player in a full lane should collide")
	}
	if !m.Result().Collided {
		t.Error("Result should report the collision")
	}
	if !strings.Contains(m.View(), "Crashed!") {
		t.Error("Game-over screen should be shown")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("Ticks stop after the game is over")
	}

	_, cmd = update(t, m, runeKey('x'))
	if !isQuit(cmd) {
		t.Error("Any key should leave the game-over screen")
	}
}

func TestModelViewShowsPaneAndHelp(t *testing.T) {
	pane := NewLogPane(3)
	pane.Write([]byte("INFO player moved pos=\"X: 3, Y: 0\"\n"))
	m := newTestModel(t, 5, 3, 0, pane)

	view := m.View()
	for _, want := range []string{"Lane Crossing", "S V S", "F   F", "Score:0", "player moved", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}
}
