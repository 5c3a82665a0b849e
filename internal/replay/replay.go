// Package replay records the key events of a game session and plays them
// back. Games are deterministic given a seed and the per-tick key state, so a
// recording of press/release events is enough to reproduce a run exactly.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/registry"
)

// ErrGameMismatch is returned when a recording is played on the wrong game.
var ErrGameMismatch = errors.New("replay: recording is for a different game")

// Event is a single key transition observed before the given tick's Step.
type Event struct {
	Tick int
	Key  core.Key
	Down bool
}

// Recording is a complete input log for one session.
type Recording struct {
	GameID string
	Seed   int64
	Ticks  int // Number of Steps taken
	Events []Event
}

// Recorder builds a Recording by diffing the key state sampled by each tick.
type Recorder struct {
	rec  Recording
	prev core.KeyState
}

// NewRecorder creates a recorder for a session of gameID started with seed.
func NewRecorder(gameID string, seed int64) *Recorder {
	return &Recorder{
		rec:  Recording{GameID: gameID, Seed: seed},
		prev: core.NewKeyState(),
	}
}

// Observe records the key state the next Step will sample.
// Call it once per tick, immediately before Step.
func (r *Recorder) Observe(keys core.KeyState) {
	tick := r.rec.Ticks
	for _, k := range core.GameKeys {
		now := keys.IsDown(k)
		if now != r.prev.IsDown(k) {
			r.rec.Events = append(r.rec.Events, Event{Tick: tick, Key: k, Down: now})
		}
	}
	r.prev = keys.Clone()
	r.rec.Ticks++
}

// Ticks returns the number of ticks observed so far.
func (r *Recorder) Ticks() int {
	return r.rec.Ticks
}

// Recording returns a copy of the recording so far.
func (r *Recorder) Recording() Recording {
	out := r.rec
	out.Events = append([]Event(nil), r.rec.Events...)
	return out
}

// Player feeds recorded events back into a key state, one tick at a time.
type Player struct {
	events []Event
	next   int
	tick   int
	keys   core.KeyState
}

// NewPlayer creates a player positioned before the first tick of rec.
func NewPlayer(rec Recording) *Player {
	return &Player{events: rec.Events, keys: core.NewKeyState()}
}

// Next applies the events of the upcoming tick and returns the key state to
// pass to Step.
func (p *Player) Next() core.KeySampler {
	for p.next < len(p.events) && p.events[p.next].Tick <= p.tick {
		e := p.events[p.next]
		if e.Down {
			p.keys.Press(e.Key)
		} else {
			p.keys.Release(e.Key)
		}
		p.next++
	}
	p.tick++
	return p.keys
}

// Simulate resets g with the recording's seed and runs every recorded tick.
// It returns the game state after the last tick.
func Simulate(g registry.Game, rec Recording, cfg core.RuntimeConfig) (core.GameState, error) {
	if g.ID() != rec.GameID {
		return core.GameState{}, fmt.Errorf("%w: %q, not %q", ErrGameMismatch, rec.GameID, g.ID())
	}
	if rec.Ticks < 0 {
		return core.GameState{}, fmt.Errorf("replay: negative tick count %d", rec.Ticks)
	}

	cfg.Seed = rec.Seed
	g.Reset(cfg)

	p := NewPlayer(rec)
	state := g.State()
	for i := 0; i < rec.Ticks; i++ {
		state = g.Step(p.Next()).State
	}
	return state, nil
}
