package core

import "sort"

// Key identifies a physical key as reported by the host.
// Names follow the browser key naming used by the game layouts.
type Key string

// Keys recognised by the games. Letter case is significant: the host reports
// "W" when shift is held, and games decide whether both cases count.
const (
	KeyW         Key = "w"
	KeyA         Key = "a"
	KeyS         Key = "s"
	KeyD         Key = "d"
	KeyUpperW    Key = "W"
	KeyUpperA    Key = "A"
	KeyUpperS    Key = "S"
	KeyUpperD    Key = "D"
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
)

// GameKeys lists every key a game may query, in a stable order.
var GameKeys = []Key{
	KeyW, KeyA, KeyS, KeyD,
	KeyUpperW, KeyUpperA, KeyUpperS, KeyUpperD,
	KeyArrowUp, KeyArrowDown,
}

// IsGameKey reports whether k belongs to the game key set.
func IsGameKey(k Key) bool {
	for _, g := range GameKeys {
		if g == k {
			return true
		}
	}
	return false
}

// KeySampler is the read side of the input state that games poll each tick.
type KeySampler interface {
	IsDown(k Key) bool
}

// KeyState records which keys are currently held.
// Press and Release are the two event handlers a host feeds; games only read.
// The zero value is ready to use.
type KeyState struct {
	down map[Key]bool
}

// NewKeyState creates an empty key state with nothing held.
func NewKeyState() KeyState {
	return KeyState{down: make(map[Key]bool)}
}

// Press marks k as held.
func (s *KeyState) Press(k Key) {
	if s.down == nil {
		s.down = make(map[Key]bool)
	}
	s.down[k] = true
}

// Release marks k as no longer held.
func (s *KeyState) Release(k Key) {
	if s.down == nil {
		return
	}
	delete(s.down, k)
}

// IsDown reports whether k is held.
func (s KeyState) IsDown(k Key) bool {
	return s.down[k]
}

// Any reports whether at least one of keys is held.
func (s KeyState) Any(keys ...Key) bool {
	for _, k := range keys {
		if s.down[k] {
			return true
		}
	}
	return false
}

// Held returns the held keys sorted by name.
func (s KeyState) Held() []Key {
	keys := make([]Key, 0, len(s.down))
	for k := range s.down {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ReleaseAll clears every held key.
func (s *KeyState) ReleaseAll() {
	for k := range s.down {
		delete(s.down, k)
	}
}

// Clone creates an independent copy of the key state.
func (s KeyState) Clone() KeyState {
	clone := NewKeyState()
	for k, v := range s.down {
		clone.down[k] = v
	}
	return clone
}

// Action represents a host-level intent such as quitting or pausing.
// Games never see actions; they only poll keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - menu navigation
	ActionDown           // Down arrow, j - menu navigation
	ActionConfirm        // Enter, Space - menu selection
	ActionBack           // B, Escape - back to menu
	ActionPause          // P - freeze the simulation
	ActionRestart        // R - start the current game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
