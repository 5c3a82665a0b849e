// Package pong implements two-player local Pong.
// The left paddle is driven by W/S and the right paddle by the arrow keys.
// There is no serve delay, win score or pause inside the game; the ball is
// reset to the centre after every point and play continues forever.
package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/boxarcade/internal/config"
	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/registry"
)

// Side indexes the two players in State().Scores.
const (
	SideLeft  = 0
	SideRight = 1
)

// Game implements the Pong game logic.
type Game struct {
	cfg config.PongConfig

	// Paddle top edges
	leftY  float64
	rightY float64

	// Ball top-left corner and velocity
	ballX  float64
	ballY  float64
	ballVX float64
	ballVY float64

	scores [2]int

	rng       *rand.Rand
	tickCount int
}

// New creates a Pong game with the built-in settings.
func New() *Game {
	return NewWithConfig(config.DefaultPongConfig())
}

// NewWithConfig creates a Pong game with the given settings.
func NewWithConfig(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Configure loads settings from path using the config search order.
func (g *Game) Configure(path string) error {
	cfg, err := config.LoadPong(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset centres both paddles and the ball and zeroes the scores.
// The first serve always travels down and to the right; the seed only
// affects the vertical speed of later serves.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	mid := g.cfg.Field.Height/2 - g.cfg.Paddles.Height/2
	g.leftY = mid
	g.rightY = mid

	g.ballX = g.cfg.Field.Width / 2
	g.ballY = g.cfg.Field.Height / 2
	g.ballVX = g.cfg.Ball.Speed
	g.ballVY = g.cfg.Ball.Speed

	g.scores = [2]int{}
	g.tickCount = 0
}

// LeftX returns the x-coordinate of the left paddle's left edge.
func (g *Game) LeftX() float64 {
	return g.cfg.Paddles.Offset
}

// RightX returns the x-coordinate of the right paddle's left edge.
func (g *Game) RightX() float64 {
	return g.cfg.Field.Width - g.cfg.Paddles.Offset - g.cfg.Paddles.Width
}

// Step advances the game by one tick.
func (g *Game) Step(keys core.KeySampler) core.StepResult {
	g.tickCount++

	g.leftY = g.movePaddle(g.leftY,
		keys.IsDown(core.KeyW) || keys.IsDown(core.KeyUpperW),
		keys.IsDown(core.KeyS) || keys.IsDown(core.KeyUpperS))
	g.rightY = g.movePaddle(g.rightY,
		keys.IsDown(core.KeyArrowUp),
		keys.IsDown(core.KeyArrowDown))

	g.ballX += g.ballVX
	g.ballY += g.ballVY

	// The ball is not pushed back inside the field, so it can sit on or past
	// a wall for a tick and flip again on the next one.
	if g.ballY <= 0 || g.ballY >= g.cfg.Field.Height-g.cfg.Ball.Size {
		g.ballVY = -g.ballVY
	}

	if g.ballX <= g.LeftX()+g.cfg.Paddles.Width && g.spans(g.leftY) {
		g.ballVX = math.Abs(g.ballVX)
		g.ballVY = g.deflect(g.leftY)
	}
	if g.ballX >= g.RightX()-g.cfg.Ball.Size && g.spans(g.rightY) {
		g.ballVX = -math.Abs(g.ballVX)
		g.ballVY = g.deflect(g.rightY)
	}

	if g.ballX < 0 {
		g.scores[SideRight]++
		g.serve()
	}
	if g.ballX > g.cfg.Field.Width {
		g.scores[SideLeft]++
		g.serve()
	}

	return core.StepResult{State: g.State()}
}

// movePaddle applies one tick of paddle input. Each direction is guarded by
// the edge it moves toward; a paddle may overshoot an edge by up to one step.
func (g *Game) movePaddle(y float64, up, down bool) float64 {
	if up && y > 0 {
		y -= g.cfg.Paddles.Speed
	}
	if down && y < g.cfg.Field.Height-g.cfg.Paddles.Height {
		y += g.cfg.Paddles.Speed
	}
	return y
}

// spans reports whether the ball overlaps a paddle at paddleY vertically,
// edges included.
func (g *Game) spans(paddleY float64) bool {
	return g.ballY+g.cfg.Ball.Size >= paddleY && g.ballY <= paddleY+g.cfg.Paddles.Height
}

// deflect returns the vertical speed after a paddle hit. The hit fraction is
// 0 at the paddle's top edge and 1 at its bottom edge and may fall slightly
// outside that range when the ball clips a corner.
func (g *Game) deflect(paddleY float64) float64 {
	hit := (g.ballY - paddleY) / g.cfg.Paddles.Height
	return (hit - 0.5) * g.cfg.Ball.AngleScale
}

// serve puts the ball back in the centre heading toward the side that just
// scored, with a random vertical speed in [-spread, spread).
func (g *Game) serve() {
	g.ballX = g.cfg.Field.Width / 2
	g.ballY = g.cfg.Field.Height / 2
	g.ballVX = -g.ballVX
	spread := g.cfg.Ball.ServeSpread
	g.ballVY = g.rng.Float64()*2*spread - spread
}

// State returns the current game state. Pong never halts on its own.
func (g *Game) State() core.GameState {
	return core.GameState{
		Scores:  []int{g.scores[SideLeft], g.scores[SideRight]},
		Running: true,
		Tick:    g.tickCount,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pong", 2, func() registry.Game {
		return New()
	})
}
