package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Dim style for background when overlay is shown
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// compositeOverlay renders overlay centered on top of a dimmed copy of
// background, filling width x height cells.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	for i, line := range bgLines {
		dimmed := dimStyle.Render(ansi.Strip(line))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		bgLines[i] = dimmed
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := lipgloss.Width(overlay)
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	leftPad := dimStyle.Render(strings.Repeat(" ", startX))
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := dimStyle.Render(strings.Repeat(" ", max(width-startX-lipgloss.Width(line), 0)))
		bgLines[y] = leftPad + line + rightPad
	}

	return strings.Join(bgLines, "\n")
}
