package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boxarcade/internal/core"
)

// ANSI 256-color codes for each core.Color.
var colorCodes = map[core.Color]string{
	core.ColorRed:    "1",
	core.ColorGreen:  "2",
	core.ColorYellow: "11",
	core.ColorCyan:   "14",
	core.ColorWhite:  "15",
	core.ColorGray:   "245",
}

// Palette turns a screen buffer into styled terminal output for one
// lipgloss renderer. SSH sessions each get a palette bound to the client's
// color profile; local play uses the default renderer.
type Palette struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds styles for every screen color on r.
func NewPalette(r *lipgloss.Renderer) *Palette {
	p := &Palette{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
	}
	for c, code := range colorCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

var defaultPalette = NewPalette(lipgloss.DefaultRenderer())

// style returns the style for c; unknown colors render unstyled.
func (p *Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// Render converts s to a string, one styled run per stretch of same-colored
// cells so escape sequences are emitted once per run.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}
