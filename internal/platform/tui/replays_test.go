package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/replay"
	"github.com/vovakirdan/boxarcade/internal/storage"
)

// saveRun records ticks of holding k and stores the result.
func saveRun(t *testing.T, store *storage.Store, gameID string, k core.Key, ticks int) int64 {
	t.Helper()
	rec := replay.NewRecorder(gameID, 7)
	ks := core.NewKeyState()
	ks.Press(k)
	for i := 0; i < ticks; i++ {
		rec.Observe(ks)
	}
	id, err := store.SaveReplay(context.Background(), rec.Recording())
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	return id
}

func sendReplays(t *testing.T, m ReplaysModel, msg tea.Msg) ReplaysModel {
	t.Helper()
	next, _ := m.Update(msg)
	rm, ok := next.(ReplaysModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return rm
}

func TestReplaysFilterTabs(t *testing.T) {
	store := openStore(t)
	saveRun(t, store, "platformer", core.KeyD, 20)
	saveRun(t, store, "pong", core.KeyW, 10)
	saveRun(t, store, "pong", core.KeyS, 5)

	m := NewReplaysModel(store, "", 80, 24)
	if len(m.entries) != 3 {
		t.Fatalf("All tab shows %d replays, expected 3", len(m.entries))
	}

	tests := []struct {
		filter string
		want   int
	}{
		{"platformer", 1},
		{"pong", 2},
		{"All", 3},
	}
	for _, tc := range tests {
		m = sendReplays(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if got := m.filters[m.filter].Title; !strings.EqualFold(got, tc.filter) {
			t.Fatalf("filter = %q, expected %q", got, tc.filter)
		}
		if len(m.entries) != tc.want {
			t.Errorf("%s tab shows %d replays, expected %d", tc.filter, len(m.entries), tc.want)
		}
	}
}

func TestReplaysRunSelected(t *testing.T) {
	store := openStore(t)
	id := saveRun(t, store, "platformer", core.KeyD, 20)

	m := NewReplaysModel(store, "", 80, 24)
	m = sendReplays(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(m.Status(), "after 20 ticks") {
		t.Errorf("Status() = %q, expected a 20 tick result", m.Status())
	}

	state, _, err := SimulateStored(context.Background(), store, id, "")
	if err != nil {
		t.Fatalf("SimulateStored() failed: %v", err)
	}
	if !strings.Contains(m.Status(), FormatScores(state.Scores)) {
		t.Errorf("Status() = %q, expected score %s", m.Status(), FormatScores(state.Scores))
	}
}

func TestReplaysDelete(t *testing.T) {
	store := openStore(t)
	saveRun(t, store, "pong", core.KeyW, 3)
	saveRun(t, store, "pong", core.KeyW, 4)

	m := NewReplaysModel(store, "", 80, 24)
	m = sendReplays(t, m, runeKey('x'))
	if len(m.entries) != 1 {
		t.Fatalf("%d entries after delete, expected 1", len(m.entries))
	}
	// Newest first, so the 4 tick replay went.
	if m.entries[0].Ticks != 3 {
		t.Errorf("remaining replay has %d ticks, expected 3", m.entries[0].Ticks)
	}
}

func TestReplaysWithoutStore(t *testing.T) {
	m := NewReplaysModel(nil, "", 80, 24)
	if !strings.Contains(m.View(), "No replays recorded yet") {
		t.Error("empty browser should say so")
	}
	m = sendReplays(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Status() != "" {
		t.Errorf("Status() = %q, expected nothing to run", m.Status())
	}

	if _, _, err := SimulateStored(context.Background(), nil, 1, ""); err == nil {
		t.Error("SimulateStored without a store should fail")
	}
}

func TestReplaysBack(t *testing.T) {
	m := NewReplaysModel(nil, "", 80, 24)
	m = sendReplays(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back, not quit")
	}
}

func TestFormatScores(t *testing.T) {
	tests := []struct {
		scores []int
		want   string
	}{
		{[]int{120}, "120"},
		{[]int{3, 5}, "3 - 5"},
		{nil, ""},
	}
	for _, tc := range tests {
		if got := FormatScores(tc.scores); got != tc.want {
			t.Errorf("FormatScores(%v) = %q, expected %q", tc.scores, got, tc.want)
		}
	}
}
