package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxarcade/internal/core"
)

// DefaultHoldTicks is how long a key stays down after its last press event.
// Terminal auto-repeat usually fires every 30-50ms, well inside 12 ticks at 60fps.
const DefaultHoldTicks = 12

// KeyMapper translates Bubble Tea key messages to game keys and host actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game key.
// ok is false for keys no game listens to.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (key core.Key, ok bool) {
	switch msg.String() {
	case "up":
		return core.KeyArrowUp, true
	case "down":
		return core.KeyArrowDown, true
	}
	k := core.Key(msg.String())
	if core.IsGameKey(k) {
		return k, true
	}
	return "", false
}

// MapAction translates a key message to a host action.
// Game keys never map to actions, so W/S stay free for the paddles.
func (km *KeyMapper) MapAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "esc", "b":
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// HeldKeys turns a stream of key press events into held key state.
// A key is released once it has gone hold ticks without another press.
type HeldKeys struct {
	state    core.KeyState
	lastSeen map[core.Key]int
	hold     int
	tick     int
}

// NewHeldKeys creates an empty tracker. hold <= 0 uses DefaultHoldTicks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &HeldKeys{
		state:    core.NewKeyState(),
		lastSeen: make(map[core.Key]int),
		hold:     hold,
	}
}

// Press marks k as held starting now.
func (h *HeldKeys) Press(k core.Key) {
	h.state.Press(k)
	h.lastSeen[k] = h.tick
}

// Advance moves to the next tick and releases keys whose hold window ran out.
func (h *HeldKeys) Advance() {
	h.tick++
	for k, seen := range h.lastSeen {
		if h.tick-seen >= h.hold {
			h.state.Release(k)
			delete(h.lastSeen, k)
		}
	}
}

// ReleaseAll drops every held key, used when pausing or restarting.
func (h *HeldKeys) ReleaseAll() {
	h.state.ReleaseAll()
	clear(h.lastSeen)
}

// State returns the key state games should sample this tick.
func (h *HeldKeys) State() core.KeyState {
	return h.state
}
