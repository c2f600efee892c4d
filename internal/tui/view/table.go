package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableContent contains table rows and cell styles.
type TableContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// TableViewState holds data needed to render the slot grid.
type TableViewState struct {
	InnerW       int
	GridH        int
	Headers      []string
	HeaderStyles []lipgloss.Style
	Content      TableContent
	BorderStyle  lipgloss.Style
	VAlign       lipgloss.Position
	Bg           lipgloss.Color
	Render       bool
}

// RenderTable renders the scrollable slot grid as a bordered lipgloss
// table: time column first, one column per resource, no row borders.
func RenderTable(state TableViewState) string {
	if !state.Render || state.GridH <= 0 {
		return ""
	}

	t := table.New().
		Headers(state.Headers...).
		Rows(state.Content.Rows...).
		Width(clampMin(state.InnerW-2, 0)).
		Height(clampMin(state.GridH, 0)).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(state.BorderStyle).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		StyleFunc(state.cellStyle)

	return PlaceBox(state.InnerW, state.GridH, state.VAlign, t.Render(), state.Bg)
}

// cellStyle resolves the style for one table position from the
// parallel style matrices.
func (s TableViewState) cellStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		if col >= 0 && col < len(s.HeaderStyles) {
			return s.HeaderStyles[col]
		}
		return lipgloss.NewStyle()
	}
	if row < 0 || row >= len(s.Content.CellStyles) {
		return lipgloss.NewStyle()
	}
	rowStyles := s.Content.CellStyles[row]
	if col < 0 || col >= len(rowStyles) {
		return lipgloss.NewStyle()
	}
	return rowStyles[col]
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
