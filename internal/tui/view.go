package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/masterfit/fitcal/internal/booking"
	"github.com/masterfit/fitcal/internal/prefs"
	"github.com/masterfit/fitcal/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	state := m.viewState()
	return view.Render(state)
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.mode == ModeModal && m.workflow.State() != StateIdle
	modal := ""
	if showModal {
		modal = m.renderModal()
		m.overlay.active = true
		m.overlay.SetBackground(m.styles.ModalBackdropColor)
	} else {
		m.overlay.active = false
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	if m.width <= 4 || m.height <= chromeLines {
		return "Terminal too small"
	}

	header := m.renderHeader()

	var body string
	switch {
	case m.loading && len(m.resources) == 0:
		body = m.renderCentered("Loading appointments...")
	case m.grid.Empty || len(m.resources) == 0:
		body = m.renderCentered("No resources are available for this day")
	default:
		body = view.RenderTable(m.tableViewState())
	}

	footer := view.RenderFooter(m.footerModel())

	content := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderHeader() string {
	title := view.DayTitle(m.date)
	badge := ""
	if m.transportMode == prefs.ModeMock {
		badge = m.styles.WarningStyle.Render(" [offline fixtures]")
	}
	loading := ""
	if m.loading {
		loading = m.styles.HelpStyle.Render("  loading...")
	}
	return m.styles.HeaderStyle.Render(" "+title) + badge + loading
}

func (m Model) renderCentered(text string) string {
	h := m.gridHeight()
	return view.PlaceBox(m.width, h, lipgloss.Center,
		m.styles.HelpStyle.Render(text), m.styles.colorBg)
}

func (m Model) gridHeight() int {
	h := m.height - chromeLines + 3 // header row and borders live inside the table
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) tableViewState() view.TableViewState {
	registeredResource := ""
	if cur := m.tracker.Current(); cur != nil {
		registeredResource = cur.ResourceID
	}
	headers, marked := view.HeaderLabels(m.resources, registeredResource)

	rows, cellStyles := m.buildGridTableRows()

	headerStyles := make([]lipgloss.Style, len(headers))
	headerStyles[0] = m.styles.TimeColumnStyle.Width(timeColWidth)
	for i := 1; i < len(headers); i++ {
		style := m.styles.ResourceHeaderStyle.Width(m.colWidth)
		if marked[i] {
			style = style.Foreground(m.styles.colorRegistered)
		}
		headerStyles[i] = style
	}

	borderStyle := lipgloss.NewStyle().
		Foreground(m.styles.colorAccent).
		Background(m.styles.colorBg)

	return view.TableViewState{
		InnerW:       m.width,
		GridH:        m.gridHeight(),
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content: view.TableContent{
			Rows:       rows,
			CellStyles: cellStyles,
		},
		BorderStyle: borderStyle,
		VAlign:      lipgloss.Top,
		Bg:          m.styles.colorBg,
		Render:      true,
	}
}

// buildGridTableRows converts the visible window of the grid into table
// rows plus a parallel style matrix.
func (m Model) buildGridTableRows() ([][]string, [][]lipgloss.Style) {
	visible := m.visibleRows()
	end := m.scrollOffset + visible
	if end > len(m.grid.Rows) {
		end = len(m.grid.Rows)
	}
	start := m.scrollOffset
	if start > end {
		start = end
	}

	rows := make([][]string, 0, end-start)
	styles := make([][]lipgloss.Style, 0, end-start)

	for i := start; i < end; i++ {
		gridRow := m.grid.Rows[i]
		cells := make([]string, 0, len(gridRow.Cells)+1)
		cellStyles := make([]lipgloss.Style, 0, len(gridRow.Cells)+1)

		cells = append(cells, gridRow.Time.Format("15:04"))
		cellStyles = append(cellStyles, m.styles.TimeColumnStyle.Width(timeColWidth))

		for col, cell := range gridRow.Cells {
			label := cellLabel(cell)
			style := m.styles.CellStyle(cell.State).Width(m.colWidth)
			if i == m.cursor.Row && col == m.cursor.Col {
				style = m.styles.CursorStyle.Width(m.colWidth)
			}
			cells = append(cells, label)
			cellStyles = append(cellStyles, style)
		}

		rows = append(rows, cells)
		styles = append(styles, cellStyles)
	}

	return rows, styles
}

// cellLabel formats the text content of a grid cell.
func cellLabel(cell GridCell) string {
	switch cell.State {
	case booking.CellRegistered:
		return " ● registered"
	case booking.CellAvailable:
		return " ○ available"
	case booking.CellBooked:
		return " ■ booked"
	default:
		return ""
	}
}

func (m Model) footerModel() view.FooterModel {
	promptLine := ""
	showPrompt := m.mode == ModePrompt
	if showPrompt {
		promptLine = m.styles.PromptFocusedStyle.Render("Go to date: " + m.prompt.View())
	}

	return view.FooterModel{
		InnerW:      m.width,
		FooterH:     m.footerHeight(),
		FullFooter:  m.height >= 14,
		LegendText:  m.renderLegend(),
		StatusText:  m.statusLine(),
		HelpText:    m.renderHelp(),
		PromptLine:  promptLine,
		ShowPrompt:  showPrompt,
		LegendStyle: m.styles.LegendStyle,
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		VAlign:      lipgloss.Bottom,
		Bg:          m.styles.colorBg,
	}
}

func (m Model) footerHeight() int {
	if m.height >= 14 {
		if m.mode == ModePrompt {
			return 4
		}
		return 3
	}
	return 2
}

func (m Model) renderLegend() string {
	avail := lipgloss.NewStyle().Foreground(m.styles.colorAvailable).Background(m.styles.colorBg).Render("○ available")
	booked := lipgloss.NewStyle().Foreground(m.styles.colorBooked).Background(m.styles.colorBg).Render("■ booked")
	reg := lipgloss.NewStyle().Foreground(m.styles.colorRegistered).Background(m.styles.colorBg).Render("● registered")
	return " " + strings.Join([]string{avail, booked, reg}, "  ")
}

func (m Model) statusLine() string {
	if m.statusMsg != "" {
		return " " + m.statusMsg
	}
	if m.err != nil {
		return fmt.Sprintf(" Error: %v", m.err)
	}
	return ""
}

func (m Model) renderHelp() string {
	switch m.workflow.State() {
	case StateRegisterPending:
		return " y confirm · v view · esc cancel"
	case StateUpdatePending:
		return " f finalize · o view current · v view new · esc cancel"
	case StateViewingReadOnly:
		return " c copy · esc close"
	case StateViewingEditable:
		return " tab status · enter submit · esc close"
	}
	if m.mode == ModePrompt {
		return " enter go · esc cancel"
	}
	return " hjkl move · enter select · e edit own · p/n day · g date · r reload · q quit"
}
