package physics

import "math"

// Outcome names the side of the stationary body that the moving body hit.
type Outcome int

const (
	None   Outcome = iota // No overlap
	Top                   // Moving body is below center; pushed down
	Bottom                // Moving body is above center; pushed up (landing)
	Left                  // Moving body is right of center; pushed right
	Right                 // Moving body is left of center; pushed left
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the outcome was resolved along the X axis.
func (o Outcome) Horizontal() bool {
	return o == Left || o == Right
}

// Vertical reports whether the outcome was resolved along the Y axis.
func (o Outcome) Vertical() bool {
	return o == Top || o == Bottom
}

// Penetration describes the overlap between two bodies.
type Penetration struct {
	VX, VY float64 // Center-to-center vector, moving minus stationary
	OX, OY float64 // Penetration depth along each axis
	Hit    bool    // Whether the bodies overlap at all
}

// Measure computes the center offset and penetration depths of a against b.
// Touching edges do not count as overlap.
func Measure(a, b Body) Penetration {
	ax, ay := a.Center()
	bx, by := b.Center()
	vX := ax - bx
	vY := ay - by

	ahw, ahh := a.HalfExtents()
	bhw, bhh := b.HalfExtents()
	hWidths := ahw + bhw
	hHeights := ahh + bhh

	p := Penetration{VX: vX, VY: vY}
	if math.Abs(vX) < hWidths && math.Abs(vY) < hHeights {
		p.Hit = true
		p.OX = hWidths - math.Abs(vX)
		p.OY = hHeights - math.Abs(vY)
	}
	return p
}

// Overlaps reports whether a and b overlap, using the same strict test as Resolve.
func Overlaps(a, b Body) bool {
	return Measure(a, b).Hit
}

// Resolve pushes moving out of stationary along one axis and reports which side
// of stationary was hit. Equal depths resolve vertically. Nothing is mutated
// when the bodies do not overlap.
//
// Only the chosen axis is corrected and there is no sub-stepping, so a fast
// body can pass through a thin one between ticks.
func Resolve(moving *Body, stationary Body) Outcome {
	p := Measure(*moving, stationary)
	if !p.Hit {
		return None
	}

	if p.OX >= p.OY {
		if p.VY > 0 {
			moving.Y += p.OY
			return Top
		}
		moving.Y -= p.OY
		return Bottom
	}

	if p.VX > 0 {
		moving.X += p.OX
		return Left
	}
	moving.X -= p.OX
	return Right
}
