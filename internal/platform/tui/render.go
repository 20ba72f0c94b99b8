package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// palette maps core colors onto ANSI 256 codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// styleFor returns the style of a color. Unknown colors render unstyled.
func styleFor(c core.Color) lipgloss.Style {
	fg, ok := palette[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(fg)
}

// span is a run of same-colored cells in a row.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into color runs.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	var run strings.Builder
	cur := s.GetCell(0, y).Color
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != cur {
			spans = append(spans, span{color: cur, text: run.String()})
			run.Reset()
			cur = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	if run.Len() > 0 {
		spans = append(spans, span{color: cur, text: run.String()})
	}
	return spans
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, sp := range rowSpans(s, y) {
			if sp.color == core.ColorDefault {
				sb.WriteString(sp.text)
				continue
			}
			sb.WriteString(styleFor(sp.color).Render(sp.text))
		}
	}
	return sb.String()
}
