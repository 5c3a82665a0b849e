// Package physics provides the axis-aligned bounding box primitives shared by
// the arcade games: overlap tests, penetration resolution and constant
// acceleration integration. It has no dependencies on rendering or input.
package physics

// Body is an axis-aligned rectangle in world coordinates.
// X and Y are the top-left corner; W and H are never negative.
type Body struct {
	X, Y float64
	W, H float64
}

// NewBody creates a body with the given position and dimensions.
func NewBody(x, y, w, h float64) Body {
	return Body{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Body) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the body.
func (b Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// HalfExtents returns half the width and half the height.
func (b Body) HalfExtents() (float64, float64) {
	return b.W / 2, b.H / 2
}

// Moved returns a copy of the body translated by (dx, dy).
func (b Body) Moved(dx, dy float64) Body {
	b.X += dx
	b.Y += dy
	return b
}

// Mover is a body with velocity and the platformer's airborne flags.
type Mover struct {
	Body
	VX, VY float64

	// Jumping is set when a jump starts and cleared on landing.
	Jumping bool
	// Grounded is derived each tick from Bottom contacts; never carried over.
	Grounded bool
}

// NewMover creates a resting mover at the given body.
func NewMover(b Body) Mover {
	return Mover{Body: b}
}

// Stop zeroes both velocity components.
func (m *Mover) Stop() {
	m.VX = 0
	m.VY = 0
}

// Teleport moves the mover to (x, y) and stops it.
// Jumping and Grounded are left untouched.
func (m *Mover) Teleport(x, y float64) {
	m.X = x
	m.Y = y
	m.Stop()
}
