package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	FooterH     int
	FullFooter  bool
	LegendText  string
	StatusText  string
	HelpText    string
	PromptLine  string
	ShowPrompt  bool
	LegendStyle lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderFooter renders legend, status, prompt, and help lines.
func RenderFooter(model FooterModel) string {
	if model.FooterH <= 0 {
		return ""
	}

	statusLine := footerLine(model.InnerW, model.StatusStyle, model.StatusText)
	helpLine := footerLine(model.InnerW, model.HelpStyle, model.HelpText)

	var s string
	if model.FullFooter {
		s += footerLine(model.InnerW, model.LegendStyle, model.LegendText) + "\n"
		if model.ShowPrompt {
			s += model.PromptLine + "\n"
		}
		s += statusLine + "\n"
		s += helpLine
	} else {
		s += statusLine + "\n"
		s += helpLine
	}

	return PlaceBox(model.InnerW, model.FooterH, model.VAlign, s, model.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
