package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boxarcade/internal/core"
)

func TestPaletteRenderPlainProfile(t *testing.T) {
	// A renderer on a non-terminal writer has no color profile, so the
	// output is the bare cell text.
	p := NewPalette(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, '#', core.ColorRed)
	s.SetColor(3, 0, '#', core.ColorRed)
	s.SetColor(0, 1, '@', core.ColorCyan)
	s.SetColor(5, 1, '?', core.Color(200))

	if got, want := p.Render(s), s.String(); got != want {
		t.Errorf("Render() = %q, expected %q", got, want)
	}
}

func TestPaletteUnknownColor(t *testing.T) {
	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	if got := p.style(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, expected plain text", got)
	}
}
