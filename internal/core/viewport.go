package core

import "math"

// Viewport maps world coordinates onto a region of screen cells.
// The whole world always fits; aspect ratio is not preserved because
// terminal cells are not square anyway.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect
}

// NewViewport creates a viewport that maps a worldW x worldH world onto area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

// Point maps a world point to a screen cell. Points outside the world map
// outside the area; the screen clips them.
func (v Viewport) Point(x, y float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return v.Area.X, v.Area.Y
	}
	cx := math.Floor(x * float64(v.Area.W) / v.WorldW)
	cy := math.Floor(y * float64(v.Area.H) / v.WorldH)
	return v.Area.X + int(cx), v.Area.Y + int(cy)
}

// Rect maps a world rectangle to screen cells. Any rectangle with positive
// size covers at least one cell so thin objects stay visible.
func (v Viewport) Rect(x, y, w, h float64) Rect {
	x0, y0 := v.Point(x, y)
	x1, y1 := v.Point(x+w, y+h)
	r := NewRect(x0, y0, x1-x0, y1-y0)
	if w > 0 && r.W < 1 {
		r.W = 1
	}
	if h > 0 && r.H < 1 {
		r.H = 1
	}
	return r
}
