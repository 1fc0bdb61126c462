package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"winterhouse/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Cells carry truecolor foregrounds; adjacent cells with the same color are
// grouped into one styled run to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	// Style cache: scenes reuse a small set of colors per frame, and
	// building a lipgloss style per run would dominate render time.
	styles := make(map[string]lipgloss.Style)

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Fg

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			hex := startColor.Hex()
			style, ok := styles[hex]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
