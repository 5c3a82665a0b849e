package pong

import (
	"strconv"

	"github.com/vovakirdan/boxarcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render draws the field in a fixed order: centre line, paddles, ball, then
// the scores at a quarter and three quarters of the width.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}

	vp := core.NewViewport(g.cfg.Field.Width, g.cfg.Field.Height, core.NewRect(0, 0, w, h))

	// Dashes of 5 on, 15 off in field units.
	fieldH := max(1, int(g.cfg.Field.Height))
	on := max(1, h*5/fieldH)
	off := max(1, h*15/fieldH)
	dst.DrawVLine(w/2, 0, h, on, off, NetChar, core.ColorGray)

	pw, ph := g.cfg.Paddles.Width, g.cfg.Paddles.Height
	dst.FillRect(vp.Rect(g.LeftX(), g.leftY, pw, ph), PaddleChar, core.ColorWhite)
	dst.FillRect(vp.Rect(g.RightX(), g.rightY, pw, ph), PaddleChar, core.ColorWhite)

	bx, by := vp.Point(g.ballX, g.ballY)
	dst.SetColor(bx, by, BallChar, core.ColorWhite)

	dst.DrawTextColor(w/4, 0, strconv.Itoa(g.scores[SideLeft]), core.ColorWhite)
	dst.DrawTextColor(3*w/4, 0, strconv.Itoa(g.scores[SideRight]), core.ColorWhite)
}
