// Package tui provides the terminal user interface for fitcal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/masterfit/fitcal/internal/booking"
	"github.com/masterfit/fitcal/internal/tui/theme"
)

// Default column width - recalculated from the terminal width.
const defaultColWidth = 20

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorAvailable   lipgloss.Color
	colorBooked      lipgloss.Color
	colorRegistered  lipgloss.Color
	colorWarning     lipgloss.Color

	// Header styles
	HeaderStyle         lipgloss.Style
	ResourceHeaderStyle lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Slot cell styles, one per visual state
	AvailableCellStyle  lipgloss.Style
	BookedCellStyle     lipgloss.Style
	RegisteredCellStyle lipgloss.Style
	EmptyCellStyle      lipgloss.Style
	CursorStyle         lipgloss.Style

	// Footer
	LegendStyle        lipgloss.Style
	StatusStyle        lipgloss.Style
	WarningStyle       lipgloss.Style
	HelpStyle          lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Modal styles
	ModalStyle            lipgloss.Style
	ModalBackdropColor    lipgloss.Color
	ModalTitleStyle       lipgloss.Style
	ModalBodyStyle        lipgloss.Style
	ModalLabelStyle       lipgloss.Style
	ModalHintStyle        lipgloss.Style
	ModalWarningStyle     lipgloss.Style
	ModalInputStyle       lipgloss.Style
	ModalPlaceholderStyle lipgloss.Style

	// Status toggle in the editable view
	StatusActiveStyle   lipgloss.Style
	StatusInactiveStyle lipgloss.Style

	// App frame
	AppStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorBgSelection: theme.Color(t.BgSelection),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorAvailable:   theme.Color(t.Available),
		colorBooked:      theme.Color(t.Booked),
		colorRegistered:  theme.Color(t.Registered),
		colorWarning:     theme.Color(t.Warning),
	}

	base := lipgloss.NewStyle().Background(s.colorBg)

	s.HeaderStyle = base.
		Foreground(s.colorAccent).
		Bold(true)

	s.ResourceHeaderStyle = base.
		Foreground(s.colorAccent).
		Bold(true).
		Align(lipgloss.Center)

	s.TimeColumnStyle = base.
		Foreground(s.colorFgMuted).
		Align(lipgloss.Right).
		PaddingRight(1)

	s.AvailableCellStyle = base.
		Foreground(s.colorAvailable)

	s.BookedCellStyle = base.
		Foreground(s.colorBooked).
		Faint(true)

	s.RegisteredCellStyle = base.
		Foreground(s.colorRegistered).
		Bold(true)

	s.EmptyCellStyle = base.
		Foreground(s.colorFgMuted)

	s.CursorStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true)

	s.LegendStyle = base.Foreground(s.colorFgMuted)
	s.StatusStyle = base.Foreground(s.colorFg)
	s.WarningStyle = base.Foreground(s.colorWarning).Bold(true)
	s.HelpStyle = base.Foreground(s.colorFgMuted)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		Background(s.colorBg).
		Padding(0, 1)

	s.PromptFocusedStyle = s.PromptStyle.
		BorderForeground(s.colorAccent)

	modalBg := theme.Color(t.ModalBg)
	s.ModalBackdropColor = theme.Color(t.Backdrop)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(t.ModalBorder)).
		Background(modalBg).
		Padding(1, 2).
		Width(52)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(s.colorAccent).
		Bold(true)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(s.colorFg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(s.colorFgMuted)

	s.ModalHintStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(s.colorFgMuted).
		Italic(true)

	s.ModalWarningStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(s.colorWarning).
		Bold(true)

	s.ModalInputStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorFgMuted)

	s.StatusActiveStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(s.colorBg).
		Bold(true).
		Padding(0, 1)

	s.StatusInactiveStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.AppStyle = lipgloss.NewStyle().Background(s.colorBg)

	return s
}

// CellStyle returns the style for a classified cell.
func (s *Styles) CellStyle(state booking.CellState) lipgloss.Style {
	switch state {
	case booking.CellAvailable:
		return s.AvailableCellStyle
	case booking.CellBooked:
		return s.BookedCellStyle
	case booking.CellRegistered:
		return s.RegisteredCellStyle
	default:
		return s.EmptyCellStyle
	}
}
