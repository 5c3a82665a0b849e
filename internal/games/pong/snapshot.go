package pong

import "github.com/vovakirdan/boxarcade/internal/registry"

// Snapshot contains the complete entity state of a Pong game.
// Field names are stable; replay output depends on them.
type Snapshot struct {
	Tick       int     `yaml:"tick"`
	BallX      float64 `yaml:"ball_x"`
	BallY      float64 `yaml:"ball_y"`
	BallVX     float64 `yaml:"ball_vx"`
	BallVY     float64 `yaml:"ball_vy"`
	LeftY      float64 `yaml:"left_y"`
	RightY     float64 `yaml:"right_y"`
	LeftScore  int     `yaml:"left_score"`
	RightScore int     `yaml:"right_score"`
}

// Ensure Game implements registry.Snapshotter
var _ registry.Snapshotter = (*Game)(nil)

// Snapshot returns the current game state.
func (g *Game) Snapshot() any {
	return Snapshot{
		Tick:       g.tickCount,
		BallX:      g.ballX,
		BallY:      g.ballY,
		BallVX:     g.ballVX,
		BallVY:     g.ballVY,
		LeftY:      g.leftY,
		RightY:     g.rightY,
		LeftScore:  g.scores[SideLeft],
		RightScore: g.scores[SideRight],
	}
}

// ApplySnapshot restores positions, velocities and scores from snap.
// The RNG is not part of the snapshot, so later serves may differ from the
// run the snapshot was taken from.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = snap.Tick
	g.ballX = snap.BallX
	g.ballY = snap.BallY
	g.ballVX = snap.BallVX
	g.ballVY = snap.BallVY
	g.leftY = snap.LeftY
	g.rightY = snap.RightY
	g.scores = [2]int{snap.LeftScore, snap.RightScore}
}
