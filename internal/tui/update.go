package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/masterfit/fitcal/internal/api"
	"github.com/masterfit/fitcal/internal/booking"
	"github.com/masterfit/fitcal/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.colWidth = m.calculateColWidth()
		m.ensureCursorVisible()
		return m, nil

	case commands.DayLoadedMsg:
		// A newer load was requested while this one was in flight;
		// the stale result is dropped whole.
		if msg.Gen != m.loadGen {
			LogStaleLoad(msg.Gen, m.loadGen)
			return m, nil
		}

		m.resources = msg.Resources
		m.repo.Reset()
		for _, res := range m.resources {
			m.repo.ReplaceAll(res, msg.Slots[res.ID])
		}

		m.tracker.Clear()
		if m.config.Booking.TrustServerOwnership {
			if m.tracker.SeedFromSlots(m.repo, m.resources, m.customerID) {
				LogTrackerSeed(m.tracker.Current())
			}
		}

		m.rows = booking.GenerateRows(m.date, m.config.Schedule.DayStartHour, m.config.Schedule.DayEndHour, m.config.Schedule.StepMinutes)
		m.rebuildGrid()
		m.loading = false
		m.err = nil
		m.colWidth = m.calculateColWidth()
		m.clampCursor()
		m.refreshTransportMode()
		m.rememberSession()
		LogDayLoaded(msg.Gen, len(m.resources))
		return m, nil

	case commands.LoadFailedMsg:
		if msg.Gen != m.loadGen {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		m.refreshTransportMode()
		LogError("load_day", msg.Err)
		return m.withStatus(fmt.Sprintf("Load failed: %v", msg.Err))

	case commands.MutationDoneMsg:
		m.loading = false
		if err := m.workflow.ApplySuccess(m.repo, m.tracker, m.customerID, msg.Status, msg.Notes); err != nil {
			return m.withStatus(fmt.Sprintf("Error: %v", err))
		}
		m.mode = ModeNormal
		m.rebuildGrid()
		LogWorkflow(m.workflow.State(), "mutation_applied")
		return m.withStatus("Appointment updated")

	case commands.MutationFailedMsg:
		// Nothing local changed; the dialog stays open so the user can
		// retry or bail out themselves.
		m.loading = false
		LogError("update_appointment", msg.Err)
		var srvErr *api.ServerError
		if errors.As(msg.Err, &srvErr) {
			return m.withStatus("Server refused: " + srvErr.Message)
		}
		return m.withStatus(fmt.Sprintf("Update failed: %v", msg.Err))

	case commands.SlotFetchedMsg:
		m.loading = false
		if msg.Err != nil {
			LogError("fetch_slot", msg.Err)
			return m.withStatus(fmt.Sprintf("Could not fetch appointment: %v", msg.Err))
		}
		if err := m.workflow.ViewFetched(msg.Slot); err != nil {
			return m, nil
		}
		m.mode = ModeModal
		return m, nil

	case commands.StatusNoteMsg:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Route text input to whichever field is active.
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.mode == ModeModal && m.workflow.State() == StateViewingEditable {
		var cmd tea.Cmd
		m.notesInput, cmd = m.notesInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// withStatus sets a temporary status message with auto-clear.
func (m Model) withStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(3 * time.Second)
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
