package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames.
type ModalStyles struct {
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHintStyle  lipgloss.Style
}

// RenderModalFrame renders a modal with the provided title, body, and hint row.
func RenderModalFrame(title, body, hint string, styles ModalStyles) string {
	var b strings.Builder

	b.WriteString(styles.ModalTitleStyle.Render(title))
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if hint != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ModalHintStyle.Render(hint))
	}

	return styles.ModalStyle.Render(b.String())
}
