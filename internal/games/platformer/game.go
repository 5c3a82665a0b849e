// Package platformer implements a single-screen platformer.
// The player runs and jumps across platforms toward a goal while avoiding
// obstacles. All collision handling goes through physics.Resolve.
package platformer

import (
	"github.com/vovakirdan/boxarcade/internal/config"
	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/physics"
	"github.com/vovakirdan/boxarcade/internal/registry"
)

// Game implements the platformer logic. It owns every entity and mutates
// them only inside Step.
type Game struct {
	cfg config.PlatformerConfig

	player    physics.Mover
	platforms []physics.Body // Checked in this order; later entries win
	obstacles []physics.Body
	goal      physics.Body

	score     int
	running   bool
	tickCount int

	// contacts holds the outcome against each platform from the last tick.
	contacts []physics.Outcome
}

// New creates a platformer with the built-in layout.
func New() *Game {
	return NewWithConfig(config.DefaultPlatformerConfig())
}

// NewWithConfig creates a platformer with the given layout.
// The config is assumed to be validated.
func NewWithConfig(cfg config.PlatformerConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Configure loads the layout from path using the config search order.
func (g *Game) Configure(path string) error {
	cfg, err := config.LoadPlatformer(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset builds the entities from the layout and places the player at spawn.
// The platformer has no randomness, so the seed is unused.
func (g *Game) Reset(_ core.RuntimeConfig) {
	p := g.cfg.Player
	g.player = physics.NewMover(physics.NewBody(p.Spawn.X, p.Spawn.Y, p.Width, p.Height))

	g.platforms = toBodies(g.cfg.Level.Platforms)
	g.obstacles = toBodies(g.cfg.Level.Obstacles)
	goal := g.cfg.Level.Goal
	g.goal = physics.NewBody(goal.X, goal.Y, goal.Width, goal.Height)

	g.score = 0
	g.running = true
	g.tickCount = 0
	g.contacts = make([]physics.Outcome, len(g.platforms))
}

func toBodies(rects []config.Rect) []physics.Body {
	bodies := make([]physics.Body, len(rects))
	for i, r := range rects {
		bodies[i] = physics.NewBody(r.X, r.Y, r.Width, r.Height)
	}
	return bodies
}

// Halt clears the running flag. Later Steps do nothing and the host stops
// scheduling ticks; the current tick is never interrupted.
func (g *Game) Halt() {
	g.running = false
}

// Step advances the game by one tick.
func (g *Game) Step(keys core.KeySampler) core.StepResult {
	if !g.running {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	p := &g.player
	physics.ApplyGravity(p, g.cfg.Physics.Gravity)

	switch {
	case keys.IsDown(core.KeyA) || keys.IsDown(core.KeyUpperA):
		p.VX = -g.cfg.Player.Speed
	case keys.IsDown(core.KeyD) || keys.IsDown(core.KeyUpperD):
		p.VX = g.cfg.Player.Speed
	default:
		p.VX = 0
	}

	if (keys.IsDown(core.KeyW) || keys.IsDown(core.KeyUpperW)) && !p.Jumping && p.Grounded {
		p.VY = g.cfg.Physics.JumpVelocity
		p.Jumping = true
		p.Grounded = false
	}

	physics.Integrate(p)
	physics.ClampX(&p.Body, 0, g.cfg.World.Width)

	p.Grounded = false
	g.resolvePlatforms()

	for _, o := range g.obstacles {
		if physics.Resolve(&p.Body, o) != physics.None {
			g.respawn()
			g.penalize()
		}
	}

	if physics.Resolve(&p.Body, g.goal) != physics.None {
		g.score += g.cfg.Scoring.GoalReward
		g.respawn()
	}

	if p.Y > g.cfg.World.FallLimit {
		g.respawn()
		g.penalize()
	}

	return core.StepResult{State: g.State()}
}

// resolvePlatforms pushes the player out of each platform in layout order.
// Every platform applies its own side effects, so when several are touched
// in one tick the later ones overwrite position and velocity changes made by
// the earlier ones. Grounded is only ever set here, never cleared.
func (g *Game) resolvePlatforms() {
	p := &g.player
	for i, plat := range g.platforms {
		outcome := physics.Resolve(&p.Body, plat)
		g.contacts[i] = outcome

		switch outcome {
		case physics.Left, physics.Right:
			p.VX = 0
		case physics.Bottom:
			p.Grounded = true
			p.Jumping = false
		case physics.Top:
			p.VY *= g.cfg.Physics.CeilingBounce
		}
	}
}

// respawn sends the player back to the spawn point at rest.
func (g *Game) respawn() {
	g.player.Teleport(g.cfg.Player.Spawn.X, g.cfg.Player.Spawn.Y)
}

// penalize deducts the penalty without going below zero.
func (g *Game) penalize() {
	g.score = max(0, g.score-g.cfg.Scoring.Penalty)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Scores:  []int{g.score},
		Running: g.running,
		Tick:    g.tickCount,
	}
}

// Player returns a copy of the player entity.
func (g *Game) Player() physics.Mover {
	return g.player
}

// Contacts returns the outcome against each platform from the last tick,
// in layout order.
func (g *Game) Contacts() []physics.Outcome {
	out := make([]physics.Outcome, len(g.contacts))
	copy(out, g.contacts)
	return out
}

func init() {
	registry.Register("platformer", 1, func() registry.Game {
		return New()
	})
}
