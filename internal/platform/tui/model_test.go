package tui

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/games/platformer"
	"github.com/vovakirdan/boxarcade/internal/games/pong"
	"github.com/vovakirdan/boxarcade/internal/replay"
	"github.com/vovakirdan/boxarcade/internal/storage"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	return cfg
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// send feeds msg to the model and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// tickOf returns a tick belonging to m's current loop.
func tickOf(m Model) TickMsg {
	return TickMsg{Time: time.Now(), Gen: m.gen}
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = send(t, m, tickOf(m))
	}
	return m
}

func TestModelTicksStepGame(t *testing.T) {
	m := NewModel(pong.New(), testConfig(), Options{})
	if m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}

	m, cmd := send(t, m, tickOf(m))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.State().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", m.State().Tick)
	}
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	g := platformer.New()
	m := NewModel(g, testConfig(), Options{Hold: 5})

	m, _ = send(t, m, runeKey('d'))
	m = tick(t, m, 10)

	// Held for 5 ticks, then released.
	if x := g.Player().X; x != 75 {
		t.Errorf("X = %v, expected 75 after 5 ticks of movement", x)
	}
}

func TestModelPause(t *testing.T) {
	m := NewModel(pong.New(), testConfig(), Options{})
	m = tick(t, m, 3)

	m, _ = send(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("expected paused")
	}
	m, cmd := send(t, m, tickOf(m))
	if cmd == nil {
		t.Error("paused model should keep the clock running")
	}
	if m.State().Tick != 3 {
		t.Errorf("Tick = %d while paused, expected 3", m.State().Tick)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}

	// Game keys are ignored while paused.
	m, _ = send(t, m, runeKey('w'))
	if m.keys.State().IsDown(core.KeyW) {
		t.Error("key registered while paused")
	}

	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m, 1)
	if m.State().Tick != 4 {
		t.Errorf("Tick = %d after resume, expected 4", m.State().Tick)
	}
}

func TestModelBackHaltsThenLeaves(t *testing.T) {
	m := NewModel(platformer.New(), testConfig(), Options{Embedded: true})
	m = tick(t, m, 2)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State().Running {
		t.Fatal("first Back should halt the platformer")
	}
	if m.BackToMenu() {
		t.Fatal("first Back should not leave yet")
	}

	// The loop stops once the halted state is seen.
	m, cmd := send(t, m, tickOf(m))
	if cmd != nil {
		t.Error("halted game should not schedule more ticks")
	}
	if m.State().Tick != 2 {
		t.Errorf("Tick = %d, expected 2", m.State().Tick)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("second Back should return to the menu")
	}
}

func TestModelRestartAfterHalt(t *testing.T) {
	m := NewModel(platformer.New(), testConfig(), Options{})
	m = tick(t, m, 2)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m, 1)

	m, cmd := send(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart of a stopped loop should schedule a tick")
	}
	if !m.State().Running || m.State().Tick != 0 {
		t.Errorf("State() = %+v, expected fresh running game", m.State())
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := NewModel(pong.New(), testConfig(), Options{})
	stale := tickOf(m)

	m, _ = send(t, m, runeKey('r'))
	m, cmd := send(t, m, stale)
	if cmd != nil {
		t.Error("a tick from the old loop should not be rescheduled")
	}
	if m.State().Tick != 0 {
		t.Errorf("Tick = %d, expected the stale tick to be ignored", m.State().Tick)
	}

	m, _ = send(t, m, tickOf(m))
	if m.State().Tick != 1 {
		t.Errorf("Tick = %d, expected 1 from the new loop", m.State().Tick)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.want {
			t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}

func TestModelPongIgnoresBackHalt(t *testing.T) {
	m := NewModel(pong.New(), testConfig(), Options{})
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("Back on a game without Halt should quit")
	}
}

func TestModelRecordsReplay(t *testing.T) {
	store := openStore(t)
	g := platformer.New()
	m := NewModel(g, testConfig(), Options{Record: true, Store: store, Hold: 4})

	m, _ = send(t, m, runeKey('d'))
	m = tick(t, m, 30)
	m, _ = send(t, m, runeKey('a'))
	m = tick(t, m, 30)
	live := g.State()

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if len(*m.saved) != 1 {
		t.Fatalf("saved = %v, expected one replay", *m.saved)
	}

	rec, err := store.LoadReplay(context.Background(), (*m.saved)[0])
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}
	if rec.GameID != "platformer" || rec.Seed != 99 || rec.Ticks != 60 {
		t.Errorf("recording header = %q/%d/%d", rec.GameID, rec.Seed, rec.Ticks)
	}

	state, err := replay.Simulate(platformer.New(), rec, core.DefaultConfig())
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if !reflect.DeepEqual(state, live) {
		t.Errorf("replayed state = %+v, expected %+v", state, live)
	}
}

func TestModelResizeKeepsState(t *testing.T) {
	m := NewModel(pong.New(), testConfig(), Options{})
	m = tick(t, m, 5)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.State().Tick != 5 {
		t.Errorf("resize reset the game: Tick = %d", m.State().Tick)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
