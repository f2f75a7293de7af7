package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-aimlab/internal/core"
)

// Palette maps core colors to lipgloss styles for one output.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the color styles for a renderer.
// A nil renderer uses lipgloss's default (the local terminal).
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		core.ColorDefault:     r.NewStyle(),
		core.ColorRed:         fg("1"),
		core.ColorGreen:       fg("2"),
		core.ColorYellow:      fg("3"),
		core.ColorCyan:        fg("6"),
		core.ColorBrightRed:   fg("9").Bold(true),
		core.ColorBrightWhite: fg("15").Bold(true),
		core.ColorOrange:      fg("208"),
		core.ColorGray:        fg("245"),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
