package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seeker-ball/internal/core"
)

// styleCache maps core.Color hex strings to lipgloss styles. Skins produce many
// distinct colors, so styles are built lazily.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) get(color core.Color) lipgloss.Style {
	if s, ok := c[color]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if color != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(string(color)))
	}
	c[color] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
