// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/boxarcade/internal/core"
)

// Game is the interface every arcade game implements.
// Games own all of their simulation state and mutate it only inside Step.
// The platform handles key sampling, timing and terminal output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "pong").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds the initial entity layout. Called once at start and again
	// on restart. The RuntimeConfig provides the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick, polling keys.
	Step(keys core.KeySampler) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current scores and running flag.
	State() core.GameState
}

// Configurable is implemented by games that accept a YAML config file.
type Configurable interface {
	Configure(path string) error
}

// Snapshotter is implemented by games that can describe their full entity
// state as a plain struct, for replay output and debugging.
type Snapshotter interface {
	Snapshot() any
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Players int
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// players is the number of local players sharing the keyboard.
// Panics if a game with the same ID is already registered.
func Register(id string, players int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: f().Title(), Players: players},
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// CreateConfigured instantiates a game and applies the config file at path.
// An empty path still lets the game run its default config search.
func CreateConfigured(id, path string) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := g.(Configurable); ok {
		if err := c.Configure(path); err != nil {
			return nil, fmt.Errorf("registry: configure %q: %w", id, err)
		}
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
