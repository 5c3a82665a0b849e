package platformer

import (
	"fmt"

	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/physics"
)

// Glyphs for each entity kind.
const (
	glyphPlatform = '█'
	glyphObstacle = '▲'
	glyphGoal     = '◆'
	glyphPlayer   = '@'
)

// Render draws the HUD on the top row and the world scaled into the rest.
// Entities are drawn in a fixed order so later kinds overdraw earlier ones.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}

	dst.DrawText(0, 0, fmt.Sprintf("SCORE %d", g.score))
	hint := "A/D move  W jump"
	if len(hint)+12 < w {
		dst.DrawTextColor(w-len(hint), 0, hint, core.ColorGray)
	}
	if h < 2 {
		return
	}

	vp := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, core.NewRect(0, 1, w, h-1))

	for _, p := range g.platforms {
		fillBody(dst, vp, p, glyphPlatform, core.ColorGreen)
	}
	for _, o := range g.obstacles {
		fillBody(dst, vp, o, glyphObstacle, core.ColorRed)
	}
	fillBody(dst, vp, g.goal, glyphGoal, core.ColorYellow)
	fillBody(dst, vp, g.player.Body, glyphPlayer, core.ColorCyan)

	if !g.running {
		dst.DrawTextCentered(h/2, "GAME OVER")
	}
}

func fillBody(dst *core.Screen, vp core.Viewport, b physics.Body, glyph rune, c core.Color) {
	r := vp.Rect(b.X, b.Y, b.W, b.H)
	// Keep the HUD row free even if a body pokes above the world.
	if r.Y < vp.Area.Y {
		r.H -= vp.Area.Y - r.Y
		r.Y = vp.Area.Y
	}
	dst.FillRect(r, glyph, c)
}
