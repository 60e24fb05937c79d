package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/iceslide/internal/core"
)

// palette holds one lipgloss style per core.Color.
var palette = [...]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGray:         fg("245"),
	core.ColorWhite:        fg("7"),
	core.ColorIce:          fg("153"),
	core.ColorGreen:        fg("2"),
	core.ColorRed:          fg("1"),
	core.ColorBrightGreen:  fg("10"),
	core.ColorBrightRed:    fg("9"),
	core.ColorBrightYellow: fg("11"),
	core.ColorBrightCyan:   fg("14"),
	core.ColorBrightWhite:  fg("15"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		color := s.GetCell(0, y).Color
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(run.String()))
				run.Reset()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(color).Render(run.String()))
		run.Reset()
	}
	return sb.String()
}
