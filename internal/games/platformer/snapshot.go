package platformer

import "github.com/vovakirdan/boxarcade/internal/registry"

// Snapshot contains the player's state and the score.
// The level layout is static and comes from the config.
type Snapshot struct {
	Tick     int     `yaml:"tick"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	Jumping  bool    `yaml:"jumping"`
	Grounded bool    `yaml:"grounded"`
	Score    int     `yaml:"score"`
	Running  bool    `yaml:"running"`
}

var _ registry.Snapshotter = (*Game)(nil)

// Snapshot returns the current game state.
func (g *Game) Snapshot() any {
	p := g.player
	return Snapshot{
		Tick:     g.tickCount,
		X:        p.X,
		Y:        p.Y,
		VX:       p.VX,
		VY:       p.VY,
		Jumping:  p.Jumping,
		Grounded: p.Grounded,
		Score:    g.score,
		Running:  g.running,
	}
}
