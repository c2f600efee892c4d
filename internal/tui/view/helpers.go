package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content,
		lipgloss.WithWhitespaceBackground(bg))
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads every line of content to width and the
// whole block to height, filling with the background color. Lines
// already wider than the target are passed through untouched.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}

	fill := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if gap := width - lipgloss.Width(line); gap > 0 {
			line += fill.Render(strings.Repeat(" ", gap))
		}
		out[i] = line
	}

	return strings.Join(out, "\n")
}
