// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/masterfit/fitcal/internal/api"
	"github.com/masterfit/fitcal/internal/booking"
	"github.com/masterfit/fitcal/internal/dateutil"
)

// DayLoadedMsg is sent when a full day of slot data is loaded.
type DayLoadedMsg struct {
	Gen       int // load generation; stale generations are discarded
	Resources []booking.Resource
	Slots     map[string][]*booking.Slot // keyed by resource id
}

// LoadFailedMsg is sent when any part of a day load fails.
type LoadFailedMsg struct {
	Gen int
	Err error
}

// MutationDoneMsg is sent when the appointment update succeeded.
type MutationDoneMsg struct {
	AppointmentID string
	Status        booking.Status
	Notes         string
}

// MutationFailedMsg is sent when the appointment update failed.
// Local state must be left exactly as it was.
type MutationFailedMsg struct {
	Err error
}

// SlotFetchedMsg is sent when a single slot detail lookup completes.
type SlotFetchedMsg struct {
	Slot *booking.Slot
	Err  error
}

// StatusNoteMsg is sent for temporary status messages.
type StatusNoteMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadDay loads the resource list and, concurrently, every resource's
// slot list for the date. The join is all-or-nothing: if any one
// fetch fails the whole load is reported as failed and nothing
// partial is delivered.
func LoadDay(gw api.Gateway, customerID string, date time.Time, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		dateStr := dateutil.FormatDate(date)

		resources, err := gw.ListResources(ctx, customerID)
		if err != nil {
			return LoadFailedMsg{Gen: gen, Err: err}
		}

		var mu sync.Mutex
		slots := make(map[string][]*booking.Slot, len(resources))

		g, gctx := errgroup.WithContext(ctx)
		for _, res := range resources {
			res := res
			g.Go(func() error {
				list, err := gw.ListSlots(gctx, customerID, dateStr, res.ID)
				if err != nil {
					return err
				}
				mu.Lock()
				slots[res.ID] = list
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return LoadFailedMsg{Gen: gen, Err: err}
		}

		return DayLoadedMsg{Gen: gen, Resources: resources, Slots: slots}
	}
}

// SubmitUpdate performs the real server mutation for an appointment.
// Not retried: a failure is reported once and left to the user.
func SubmitUpdate(gw api.Gateway, appointmentID string, status booking.Status, notes string) tea.Cmd {
	return func() tea.Msg {
		if err := gw.UpdateAppointment(context.Background(), appointmentID, status, notes); err != nil {
			return MutationFailedMsg{Err: err}
		}
		return MutationDoneMsg{
			AppointmentID: appointmentID,
			Status:        status,
			Notes:         notes,
		}
	}
}

// FetchSlot resolves an appointment's full detail over the network.
// Used when the update flow views the old registration and the slot
// is no longer in the repository.
func FetchSlot(gw api.Gateway, customerID, date, resourceID, appointmentID string) tea.Cmd {
	return func() tea.Msg {
		slots, err := gw.ListSlots(context.Background(), customerID, date, resourceID)
		if err != nil {
			return SlotFetchedMsg{Err: err}
		}
		for _, s := range slots {
			if s.AppointmentID == appointmentID {
				return SlotFetchedMsg{Slot: s}
			}
		}
		return SlotFetchedMsg{Err: booking.ErrSlotNotFound}
	}
}

// Status shows a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusNoteMsg{Msg: msg}
	}
}
