package physics

// ApplyGravity adds a constant per-tick acceleration to the vertical velocity.
func ApplyGravity(m *Mover, gravity float64) {
	m.VY += gravity
}

// Integrate advances the mover's position by one tick of its velocity.
func Integrate(m *Mover) {
	m.X += m.VX
	m.Y += m.VY
}

// ClampX keeps the body inside [minX, maxX] horizontally.
// Velocity is not modified.
func ClampX(b *Body, minX, maxX float64) {
	if b.X < minX {
		b.X = minX
	}
	if b.X+b.W > maxX {
		b.X = maxX - b.W
	}
}
