package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")  // Teal - headings
	colorDim  = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for table headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// row pads each cell to the matching width.
func row(widths []int, cells ...string) string {
	out := ""
	for i, c := range cells {
		if i > 0 {
			out += "  "
		}
		out += lipgloss.NewStyle().Width(widths[i]).Render(c)
	}
	return out
}

// columnWidths returns the widest cell of each column.
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, r := range rows {
		for i, c := range r {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
