package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxarcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Key
		wantOK bool
	}{
		{"w", runeKey('w'), core.KeyW, true},
		{"shift w", runeKey('W'), core.KeyUpperW, true},
		{"d", runeKey('d'), core.KeyD, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyArrowUp, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyArrowDown, true},
		{"unbound letter", runeKey('x'), "", false},
		{"pause is not a game key", runeKey('p'), "", false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.MapKey(tc.msg)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("MapKey() = %q, %v; expected %q, %v", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestMapAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runeKey('w'), core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if got := km.MapAction(tc.msg); got != tc.want {
				t.Errorf("MapAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestHeldKeysReleaseAfterWindow(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.KeyD)

	for i := 0; i < 2; i++ {
		h.Advance()
		if !h.State().IsDown(core.KeyD) {
			t.Fatalf("released after %d ticks, expected to hold for 3", i+1)
		}
	}
	h.Advance()
	if h.State().IsDown(core.KeyD) {
		t.Error("still held after the hold window")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.KeyA)
	h.Advance()
	h.Advance()
	h.Press(core.KeyA) // auto-repeat
	h.Advance()
	h.Advance()
	if !h.State().IsDown(core.KeyA) {
		t.Error("repeat should restart the hold window")
	}
	h.Advance()
	if h.State().IsDown(core.KeyA) {
		t.Error("expected release 3 ticks after the last repeat")
	}
}

func TestHeldKeysIndependent(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.KeyW)
	h.Advance()
	h.Press(core.KeyArrowUp)
	h.Advance()

	ks := h.State()
	if ks.IsDown(core.KeyW) || !ks.IsDown(core.KeyArrowUp) {
		t.Errorf("held = %v, expected only ArrowUp", ks.Held())
	}

	h.ReleaseAll()
	if h.State().Any(core.GameKeys...) {
		t.Error("ReleaseAll left keys held")
	}
}

func TestHeldKeysDefaultWindow(t *testing.T) {
	h := NewHeldKeys(0)
	if h.hold != DefaultHoldTicks {
		t.Errorf("hold = %d, expected %d", h.hold, DefaultHoldTicks)
	}
}
