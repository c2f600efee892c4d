package tui

import (
	"errors"

	"github.com/google/uuid"

	"github.com/masterfit/fitcal/internal/booking"
)

// Workflow errors.
var (
	ErrNotPendingRegister = errors.New("no registration is pending")
	ErrNotPendingUpdate   = errors.New("no update is pending")
	ErrNotEditable        = errors.New("no editable view is open")
)

// WorkflowState names the appointment workflow states.
type WorkflowState int

const (
	StateIdle WorkflowState = iota
	StateRegisterPending
	StateUpdatePending
	StateViewingReadOnly
	StateViewingEditable
)

// String returns the state name for logs.
func (s WorkflowState) String() string {
	switch s {
	case StateRegisterPending:
		return "RegisterPending"
	case StateUpdatePending:
		return "UpdatePending"
	case StateViewingReadOnly:
		return "ViewingReadOnly"
	case StateViewingEditable:
		return "ViewingEditable"
	default:
		return "Idle"
	}
}

// ClickResult is the outcome of clicking a slot in the grid.
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickAlreadyRegistered
	ClickRegister
	ClickUpdate
)

// Workflow drives the register/move/finalize-update sequence. It owns
// the pending context between a slot click and its confirmation; the
// repository and tracker are only touched on confirmed actions.
type Workflow struct {
	state     WorkflowState
	clicked   *booking.Slot // slot selected for register or as update target
	resource  booking.Resource
	previous  *booking.Registration // active registration when an update began
	viewSlot  *booking.Slot         // slot shown in the viewing states
	returnTo  WorkflowState         // state to restore when a read-only view closes
	viaUpdate bool                  // editable view reached through the update flow
}

// NewWorkflow creates a workflow in the idle state.
func NewWorkflow() *Workflow {
	return &Workflow{}
}

// State returns the current workflow state.
func (w *Workflow) State() WorkflowState { return w.state }

// Clicked returns the slot the pending action targets.
func (w *Workflow) Clicked() *booking.Slot { return w.clicked }

// Resource returns the resource of the clicked slot.
func (w *Workflow) Resource() booking.Resource { return w.resource }

// Previous returns the registration an update would move away from.
func (w *Workflow) Previous() *booking.Registration { return w.previous }

// ViewSlot returns the slot shown in a viewing state.
func (w *Workflow) ViewSlot() *booking.Slot { return w.viewSlot }

// ViaUpdate reports whether the editable view was reached through the
// update flow.
func (w *Workflow) ViaUpdate() bool { return w.viaUpdate }

// Click applies the transition rules for a clicked slot. Ownership of
// the clicked slot is terminal for the click; otherwise the workflow
// enters RegisterPending or UpdatePending depending on whether the
// tracker already holds a registration.
func (w *Workflow) Click(slot *booking.Slot, res booking.Resource, tracker *booking.Tracker, customerID string, trustServer bool) ClickResult {
	if w.state != StateIdle || slot == nil {
		return ClickIgnored
	}

	if booking.OwnedBy(slot, tracker, customerID, trustServer) {
		return ClickAlreadyRegistered
	}

	w.clicked = slot
	w.resource = res

	if cur := tracker.Current(); cur != nil {
		prev := *cur
		w.previous = &prev
		w.state = StateUpdatePending
		return ClickUpdate
	}

	w.state = StateRegisterPending
	return ClickRegister
}

// ConfirmRegister performs the local mock registration: a new opaque
// identifier is synthesized, the clicked slot is stamped as owned by
// the session, the tracker records the registration, and the workflow
// returns to idle. No network call is involved.
func (w *Workflow) ConfirmRegister(tracker *booking.Tracker, customerID string) (booking.Registration, error) {
	if w.state != StateRegisterPending || w.clicked == nil {
		return booking.Registration{}, ErrNotPendingRegister
	}

	slot := w.clicked
	slot.AppointmentID = uuid.NewString()
	slot.OwnerCustomerID = customerID

	reg := booking.Registration{
		AppointmentID: slot.AppointmentID,
		ResourceID:    slot.ResourceID,
		TimeFrom:      slot.TimeFrom,
		TimeTo:        slot.TimeTo,
	}
	tracker.Set(reg)

	w.reset()
	return reg, nil
}

// ViewClicked opens a read-only view of the clicked slot. The object
// is already held; no network round-trip is needed.
func (w *Workflow) ViewClicked() error {
	if w.state != StateRegisterPending && w.state != StateUpdatePending {
		return ErrNotPendingRegister
	}
	w.returnTo = w.state
	w.viewSlot = w.clicked
	w.state = StateViewingReadOnly
	return nil
}

// ResolveOld looks up the old registration's slot in the repository.
// When it misses, the caller is expected to fetch over the network and
// pass the result to ViewFetched.
func (w *Workflow) ResolveOld(repo *booking.SlotRepository, resources []booking.Resource) (*booking.Slot, error) {
	if w.state != StateUpdatePending || w.previous == nil {
		return nil, ErrNotPendingUpdate
	}
	return repo.FindByAppointment(resources, w.previous.AppointmentID), nil
}

// ViewFetched opens a read-only view of a slot resolved outside the
// repository (network fallback for the old registration's detail).
func (w *Workflow) ViewFetched(slot *booking.Slot) error {
	if w.state != StateUpdatePending {
		return ErrNotPendingUpdate
	}
	w.returnTo = w.state
	w.viewSlot = slot
	w.state = StateViewingReadOnly
	return nil
}

// Finalize proceeds from a pending update to the editable view of the
// new slot, the only place a durable server mutation can happen.
func (w *Workflow) Finalize() error {
	if w.state != StateUpdatePending || w.clicked == nil {
		return ErrNotPendingUpdate
	}
	w.viewSlot = w.clicked
	w.viaUpdate = true
	w.state = StateViewingEditable
	return nil
}

// Edit opens the editable view for a slot the session already owns,
// outside the update flow. Status and notes can be changed without
// moving the registration.
func (w *Workflow) Edit(slot *booking.Slot) {
	if w.state != StateIdle || slot == nil {
		return
	}
	w.viewSlot = slot
	w.viaUpdate = false
	w.state = StateViewingEditable
}

// CloseView closes a read-only view, restoring the pending state it
// was opened from. No mutation, no other state change.
func (w *Workflow) CloseView() {
	if w.state != StateViewingReadOnly {
		return
	}
	w.viewSlot = nil
	w.state = w.returnTo
	w.returnTo = StateIdle
}

// Cancel discards any pending context and returns to idle with no
// side effects; an existing registration stays intact.
func (w *Workflow) Cancel() {
	w.reset()
}

// ValidateSubmit checks the editable view can issue a mutation: the
// slot must carry an appointment id. Fails locally, before any
// network attempt.
func (w *Workflow) ValidateSubmit() error {
	if w.state != StateViewingEditable || w.viewSlot == nil {
		return ErrNotEditable
	}
	if !w.viewSlot.HasAppointment() {
		return booking.ErrMissingAppointmentID
	}
	return nil
}

// ApplySuccess folds a successful mutation back into local state: the
// slot's status/label/notes are merged in place, and when the editable
// view was reached via the update flow the old registration's
// ownership is cleared and the tracker moves to the new appointment.
// Ends in idle and the grid must be re-rendered.
func (w *Workflow) ApplySuccess(repo *booking.SlotRepository, tracker *booking.Tracker, customerID string, status booking.Status, notes string) error {
	if w.state != StateViewingEditable || w.viewSlot == nil {
		return ErrNotEditable
	}

	slot := w.viewSlot
	label := status.Label()
	owner := customerID
	patch := booking.SlotPatch{
		Status:      &status,
		StatusLabel: &label,
		Notes:       &notes,
		Owner:       &owner,
	}
	if err := repo.MutateInPlace(slot.ResourceID, slot.AppointmentID, patch); err != nil {
		// The slot left the repository between open and submit (a
		// reload raced the dialog). Patch the held object directly so
		// the view stays truthful.
		slot.Status = status
		slot.StatusLabel = label
		slot.Notes = notes
		slot.OwnerCustomerID = customerID
	}

	if w.viaUpdate {
		if w.previous != nil {
			repo.ClearOwner(w.previous.AppointmentID)
		}
		tracker.Set(booking.Registration{
			AppointmentID: slot.AppointmentID,
			ResourceID:    slot.ResourceID,
			TimeFrom:      slot.TimeFrom,
			TimeTo:        slot.TimeTo,
		})
	}

	w.reset()
	return nil
}

// reset returns the workflow to idle, dropping all pending context.
func (w *Workflow) reset() {
	w.state = StateIdle
	w.clicked = nil
	w.resource = booking.Resource{}
	w.previous = nil
	w.viewSlot = nil
	w.returnTo = StateIdle
	w.viaUpdate = false
}
