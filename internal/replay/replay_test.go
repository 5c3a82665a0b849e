package replay

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/games/platformer"
	"github.com/vovakirdan/boxarcade/internal/games/pong"
	"github.com/vovakirdan/boxarcade/internal/registry"
)

// script returns the key state held on a given tick.
func script(tick int) core.KeyState {
	ks := core.NewKeyState()
	switch (tick / 20) % 5 {
	case 0:
		ks.Press(core.KeyD)
	case 1:
		ks.Press(core.KeyD)
		ks.Press(core.KeyW)
		ks.Press(core.KeyArrowUp)
	case 2:
		ks.Press(core.KeyA)
		ks.Press(core.KeyS)
	case 3:
		ks.Press(core.KeyArrowDown)
	}
	return ks
}

func TestRecorderEvents(t *testing.T) {
	r := NewRecorder("pong", 9)

	ks := core.NewKeyState()
	r.Observe(ks)
	ks.Press(core.KeyW)
	r.Observe(ks)
	r.Observe(ks)
	ks.Release(core.KeyW)
	ks.Press(core.KeyS)
	r.Observe(ks)

	rec := r.Recording()
	want := []Event{
		{Tick: 1, Key: core.KeyW, Down: true},
		{Tick: 3, Key: core.KeyW, Down: false},
		{Tick: 3, Key: core.KeyS, Down: true},
	}
	if !reflect.DeepEqual(rec.Events, want) {
		t.Errorf("events = %+v, expected %+v", rec.Events, want)
	}
	if rec.Ticks != 4 || r.Ticks() != 4 {
		t.Errorf("ticks = %d, expected 4", rec.Ticks)
	}
	if rec.GameID != "pong" || rec.Seed != 9 {
		t.Errorf("header = %q/%d", rec.GameID, rec.Seed)
	}
}

func TestRecorderIgnoresLaterMutation(t *testing.T) {
	r := NewRecorder("pong", 1)
	ks := core.NewKeyState()
	ks.Press(core.KeyW)
	r.Observe(ks)

	// Releasing after Observe must show up as an event on the next tick,
	// so the recorder cannot alias the caller's map.
	ks.Release(core.KeyW)
	r.Observe(ks)

	if got := len(r.Recording().Events); got != 2 {
		t.Errorf("events = %d, expected 2", got)
	}
}

func TestPlayerReproducesKeyStates(t *testing.T) {
	r := NewRecorder("platformer", 0)
	for i := 0; i < 200; i++ {
		r.Observe(script(i))
	}

	p := NewPlayer(r.Recording())
	for i := 0; i < 200; i++ {
		got := p.Next()
		want := script(i)
		for _, k := range core.GameKeys {
			if got.IsDown(k) != want.IsDown(k) {
				t.Fatalf("tick %d key %s: down=%v, expected %v", i, k, got.IsDown(k), want.IsDown(k))
			}
		}
	}
}

func TestSimulateMatchesLiveRun(t *testing.T) {
	tests := []struct {
		name string
		make func() registry.Game
		seed int64
	}{
		{"platformer", func() registry.Game { return platformer.New() }, 0},
		{"pong", func() registry.Game { return pong.New() }, 1234},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			cfg.Seed = tc.seed

			live := tc.make()
			live.Reset(cfg)
			r := NewRecorder(live.ID(), tc.seed)
			for i := 0; i < 3000; i++ {
				keys := script(i)
				r.Observe(keys)
				live.Step(keys)
			}

			replayed := tc.make()
			state, err := Simulate(replayed, r.Recording(), core.DefaultConfig())
			if err != nil {
				t.Fatalf("Simulate() failed: %v", err)
			}
			if !reflect.DeepEqual(state, live.State()) {
				t.Errorf("state = %+v, expected %+v", state, live.State())
			}

			a := live.(registry.Snapshotter).Snapshot()
			b := replayed.(registry.Snapshotter).Snapshot()
			if !reflect.DeepEqual(a, b) {
				t.Errorf("snapshot = %+v, expected %+v", b, a)
			}
		})
	}
}

func TestSimulateGameMismatch(t *testing.T) {
	rec := Recording{GameID: "pong", Ticks: 10}
	if _, err := Simulate(platformer.New(), rec, core.DefaultConfig()); !errors.Is(err, ErrGameMismatch) {
		t.Errorf("Simulate() error = %v, expected ErrGameMismatch", err)
	}
}

func TestSimulateEmpty(t *testing.T) {
	state, err := Simulate(pong.New(), Recording{GameID: "pong"}, core.DefaultConfig())
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if state.Tick != 0 || !reflect.DeepEqual(state.Scores, []int{0, 0}) {
		t.Errorf("state = %+v", state)
	}
}
