package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a simple aligned table with a header separator line.
// Column widths are the maximum visible width in each column across headers
// and rows; lipgloss.Width ignores ANSI escapes when measuring.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2

	pad := func(cell string, width int) string {
		extra := width - lipgloss.Width(cell)
		if extra < 0 {
			extra = 0
		}
		return cell + strings.Repeat(" ", extra)
	}

	var b strings.Builder
	for i, h := range headers {
		styled := StyleHeader.Render(h)
		if i < cols-1 {
			b.WriteString(pad(styled, widths[i]+colGap))
		} else {
			b.WriteString(styled)
		}
	}
	b.WriteString("\n")
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i < cols-1 {
				b.WriteString(pad(cell, widths[i]+colGap))
			} else {
				b.WriteString(cell)
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), " \n") + "\n"
}
