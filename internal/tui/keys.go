package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/masterfit/fitcal/internal/booking"
	"github.com/masterfit/fitcal/internal/dateutil"
	"github.com/masterfit/fitcal/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "l", "right":
		if m.cursor.Col < len(m.resources)-1 {
			m.cursor.Col++
		}
	case "j", "down":
		if m.cursor.Row < m.maxRows()-1 {
			m.cursor.Row++
			m.ensureCursorVisible()
		}
	case "k", "up":
		if m.cursor.Row > 0 {
			m.cursor.Row--
			m.ensureCursorVisible()
		}

	// Page navigation
	case "pgdown", "ctrl+d":
		visible := m.visibleRows()
		m.cursor.Row = min(m.maxRows()-1, m.cursor.Row+visible)
		m.ensureCursorVisible()
	case "pgup", "ctrl+u":
		visible := m.visibleRows()
		m.cursor.Row = max(0, m.cursor.Row-visible)
		m.ensureCursorVisible()

	// Day navigation
	case "p", "[", "shift+left":
		return m, m.gotoDate(m.date.AddDate(0, 0, -1))
	case "n", "]", "shift+right":
		return m, m.gotoDate(m.date.AddDate(0, 0, 1))
	case "t":
		return m, m.gotoDate(dateutil.TruncateToDay(timeNow()))

	case "g":
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink

	case "r":
		return m, m.reload()

	case "enter", " ":
		return m.handleSlotClick()

	case "e":
		return m.handleEditOwn()
	}

	return m, nil
}

// handleSlotClick applies the workflow transition for the cell under
// the cursor.
func (m Model) handleSlotClick() (tea.Model, tea.Cmd) {
	cell := m.grid.CellAt(m.cursor.Row, m.cursor.Col)
	if cell.Slot == nil {
		return m, nil
	}

	res := m.resources[m.cursor.Col]
	result := m.workflow.Click(cell.Slot, res, m.tracker, m.customerID, m.config.Booking.TrustServerOwnership)
	LogWorkflow(m.workflow.State(), "click")

	switch result {
	case ClickAlreadyRegistered:
		return m.withStatus("You are already registered for this appointment")
	case ClickRegister, ClickUpdate:
		m.mode = ModeModal
		return m, nil
	default:
		return m, nil
	}
}

// handleEditOwn opens the editable view for the session's registered
// slot, without moving the registration.
func (m Model) handleEditOwn() (tea.Model, tea.Cmd) {
	cell := m.grid.CellAt(m.cursor.Row, m.cursor.Col)
	if cell.Slot == nil || cell.State != booking.CellRegistered {
		return m.withStatus("Move the cursor to your registered slot first")
	}

	m.workflow.Edit(cell.Slot)
	if m.workflow.State() != StateViewingEditable {
		return m, nil
	}
	m.openEditor(cell.Slot)
	LogWorkflow(m.workflow.State(), "edit")
	return m, textinput.Blink
}

// openEditor primes the notes input and status toggle from a slot.
func (m *Model) openEditor(slot *booking.Slot) {
	m.mode = ModeModal
	m.notesInput.SetValue(slot.Notes)
	m.notesInput.Focus()
	m.editStatus = slot.Status
	if !m.editStatus.Valid() {
		m.editStatus = booking.StatusPending
	}
}

// handleModalKeys dispatches modal keys by workflow state.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.workflow.State() {
	case StateRegisterPending:
		return m.handleRegisterKeys(msg)
	case StateUpdatePending:
		return m.handleUpdateKeys(msg)
	case StateViewingReadOnly:
		return m.handleReadOnlyKeys(msg)
	case StateViewingEditable:
		return m.handleEditableKeys(msg)
	default:
		m.mode = ModeNormal
		return m, nil
	}
}

// handleRegisterKeys handles the register confirmation dialog.
func (m Model) handleRegisterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		reg, err := m.workflow.ConfirmRegister(m.tracker, m.customerID)
		if err != nil {
			return m.withStatus("Error: " + err.Error())
		}
		m.mode = ModeNormal
		m.rebuildGrid()
		LogRegistration(reg)
		return m.withStatus("Registered " + reg.TimeFrom.Format("15:04") + " (local only, finalize to confirm)")

	case "v":
		if err := m.workflow.ViewClicked(); err != nil {
			return m, nil
		}
		LogWorkflow(m.workflow.State(), "view_clicked")
		return m, nil

	case "esc":
		m.workflow.Cancel()
		m.mode = ModeNormal
		LogWorkflow(m.workflow.State(), "cancel")
		return m, nil
	}

	return m, nil
}

// handleUpdateKeys handles the move-registration dialog.
func (m Model) handleUpdateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "o":
		// View the appointment the registration would move away from.
		slot, err := m.workflow.ResolveOld(m.repo, m.resources)
		if err != nil {
			return m, nil
		}
		if slot != nil {
			if err := m.workflow.ViewFetched(slot); err != nil {
				return m, nil
			}
			LogWorkflow(m.workflow.State(), "view_old")
			return m, nil
		}
		// Not on this day's grid; resolve it over the network.
		prev := m.workflow.Previous()
		if prev == nil {
			return m, nil
		}
		m.loading = true
		return m, commands.FetchSlot(m.gateway, m.customerID, dateutil.FormatDate(prev.TimeFrom), prev.ResourceID, prev.AppointmentID)

	case "v":
		if err := m.workflow.ViewClicked(); err != nil {
			return m, nil
		}
		LogWorkflow(m.workflow.State(), "view_new")
		return m, nil

	case "f", "enter":
		if err := m.workflow.Finalize(); err != nil {
			return m.withStatus("Error: " + err.Error())
		}
		m.openEditor(m.workflow.ViewSlot())
		LogWorkflow(m.workflow.State(), "finalize")
		return m, textinput.Blink

	case "esc":
		m.workflow.Cancel()
		m.mode = ModeNormal
		LogWorkflow(m.workflow.State(), "cancel")
		return m, nil
	}

	return m, nil
}

// handleReadOnlyKeys handles the read-only detail view.
func (m Model) handleReadOnlyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.workflow.CloseView()
		if m.workflow.State() == StateIdle {
			m.mode = ModeNormal
		}
		LogWorkflow(m.workflow.State(), "close_view")
		return m, nil

	case "c":
		slot := m.workflow.ViewSlot()
		if slot == nil {
			return m, nil
		}
		detail := m.slotDetailModel(slot)
		if err := clipboard.WriteAll(detail.CopyText()); err != nil {
			return m.withStatus("Copy failed: " + err.Error())
		}
		return m.withStatus("Copied appointment to clipboard")
	}

	return m, nil
}

// handleEditableKeys handles the editable view, the only place a real
// server mutation can be issued.
func (m Model) handleEditableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Closing without submitting changes nothing anywhere.
		m.workflow.Cancel()
		m.mode = ModeNormal
		m.notesInput.Blur()
		LogWorkflow(m.workflow.State(), "close_editor")
		return m, nil

	case "tab":
		m.editStatus = nextStatus(m.editStatus)
		return m, nil

	case "enter":
		if err := m.workflow.ValidateSubmit(); err != nil {
			LogError("validate_submit", err)
			return m.withStatus("Cannot submit: " + err.Error())
		}
		slot := m.workflow.ViewSlot()
		m.loading = true
		LogMutation(slot.AppointmentID, m.editStatus)
		return m, commands.SubmitUpdate(m.gateway, slot.AppointmentID, m.editStatus, m.notesInput.Value())
	}

	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	return m, cmd
}

// handlePromptKeys handles the go-to-date prompt.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil

	case "enter":
		date, err := dateutil.ParseDateOrKeyword(m.prompt.Value(), timeNow())
		if err != nil {
			return m.withStatus("Enter a date as YYYY-MM-DD")
		}
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, m.gotoDate(date)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// nextStatus cycles pending -> accepted -> rejected -> pending.
func nextStatus(s booking.Status) booking.Status {
	switch s {
	case booking.StatusPending:
		return booking.StatusAccepted
	case booking.StatusAccepted:
		return booking.StatusRejected
	default:
		return booking.StatusPending
	}
}
