package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/masterfit/fitcal/internal/booking"
)

func availableSlot(id, resourceID string, hour, min int) *booking.Slot {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	from := day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	return &booking.Slot{
		AppointmentID: id,
		ResourceID:    resourceID,
		Date:          "2025-11-03",
		TimeFrom:      from,
		TimeTo:        from.Add(30 * time.Minute),
		Status:        booking.StatusPending,
		StatusLabel:   "Available",
	}
}

func TestWorkflow_Register(t *testing.T) {
	t.Run("clicking an available slot with no registration opens register", func(t *testing.T) {
		w := NewWorkflow()
		tr := booking.NewTracker()
		slot := availableSlot("a1", "1", 9, 0)

		result := w.Click(slot, booking.Resource{ID: "1"}, tr, "42", false)
		if result != ClickRegister {
			t.Fatalf("expected ClickRegister, got %v", result)
		}
		if w.State() != StateRegisterPending {
			t.Errorf("expected RegisterPending, got %v", w.State())
		}
	})

	t.Run("confirming assigns a new id and sets the tracker", func(t *testing.T) {
		w := NewWorkflow()
		tr := booking.NewTracker()
		repo := booking.NewSlotRepository()
		slot := availableSlot("", "1", 9, 0)
		repo.ReplaceAll(booking.Resource{ID: "1"}, []*booking.Slot{slot})

		w.Click(slot, booking.Resource{ID: "1"}, tr, "42", false)
		reg, err := w.ConfirmRegister(tr, "42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if reg.AppointmentID == "" {
			t.Fatal("registration must carry a non-empty appointment id")
		}
		if slot.AppointmentID != reg.AppointmentID {
			t.Error("slot must be stamped with the new id")
		}
		if !tr.IsCurrent(reg.AppointmentID) {
			t.Error("tracker must hold the new registration")
		}
		if w.State() != StateIdle {
			t.Errorf("expected Idle after confirm, got %v", w.State())
		}

		// A subsequent classification shows the cell as registered.
		got := booking.Classify(slot, tr, "42", false)
		if got != booking.CellRegistered {
			t.Errorf("expected registered cell, got %v", got)
		}
	})

	t.Run("each confirmation synthesizes a distinct id", func(t *testing.T) {
		tr := booking.NewTracker()
		seen := map[string]bool{}
		for i := 0; i < 3; i++ {
			w := NewWorkflow()
			tr.Clear()
			slot := availableSlot("", "1", 9, 0)
			w.Click(slot, booking.Resource{ID: "1"}, tr, "42", false)
			reg, err := w.ConfirmRegister(tr, "42")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen[reg.AppointmentID] {
				t.Fatalf("duplicate appointment id %q", reg.AppointmentID)
			}
			seen[reg.AppointmentID] = true
		}
	})

	t.Run("clicking the registered slot is terminal", func(t *testing.T) {
		w := NewWorkflow()
		tr := booking.NewTracker()
		slot := availableSlot("a1", "1", 9, 0)
		tr.Set(booking.Registration{AppointmentID: "a1"})

		result := w.Click(slot, booking.Resource{ID: "1"}, tr, "42", false)
		if result != ClickAlreadyRegistered {
			t.Fatalf("expected ClickAlreadyRegistered, got %v", result)
		}
		if w.State() != StateIdle {
			t.Errorf("no pending state may open, got %v", w.State())
		}
	})

	t.Run("cancel discards pending context", func(t *testing.T) {
		w := NewWorkflow()
		tr := booking.NewTracker()
		slot := availableSlot("a1", "1", 9, 0)

		w.Click(slot, booking.Resource{ID: "1"}, tr, "42", false)
		w.Cancel()

		if w.State() != StateIdle || w.Clicked() != nil {
			t.Error("cancel must return to idle with no context")
		}
		if tr.Current() != nil {
			t.Error("cancel must not touch the tracker")
		}
	})

	t.Run("confirm without a pending register fails", func(t *testing.T) {
		w := NewWorkflow()
		if _, err := w.ConfirmRegister(booking.NewTracker(), "42"); !errors.Is(err, ErrNotPendingRegister) {
			t.Errorf("expected ErrNotPendingRegister, got %v", err)
		}
	})
}

func TestWorkflow_Update(t *testing.T) {
	// Shared setup: a registration on a1, clicking the available b1.
	setup := func(t *testing.T) (*Workflow, *booking.Tracker, *booking.SlotRepository, *booking.Slot, *booking.Slot) {
		t.Helper()
		tr := booking.NewTracker()
		repo := booking.NewSlotRepository()

		old := availableSlot("a1", "1", 9, 0)
		old.OwnerCustomerID = "42"
		next := availableSlot("b1", "2", 11, 0)
		repo.ReplaceAll(booking.Resource{ID: "1"}, []*booking.Slot{old})
		repo.ReplaceAll(booking.Resource{ID: "2"}, []*booking.Slot{next})

		tr.Set(booking.Registration{
			AppointmentID: "a1", ResourceID: "1",
			TimeFrom: old.TimeFrom, TimeTo: old.TimeTo,
		})

		w := NewWorkflow()
		result := w.Click(next, booking.Resource{ID: "2"}, tr, "42", false)
		if result != ClickUpdate {
			t.Fatalf("expected ClickUpdate, got %v", result)
		}
		return w, tr, repo, old, next
	}

	t.Run("clicking with a registration opens update", func(t *testing.T) {
		w, _, _, _, _ := setup(t)
		if w.State() != StateUpdatePending {
			t.Errorf("expected UpdatePending, got %v", w.State())
		}
		if w.Previous() == nil || w.Previous().AppointmentID != "a1" {
			t.Errorf("pending update must remember the old registration")
		}
	})

	t.Run("finalize then success moves the registration", func(t *testing.T) {
		w, tr, repo, old, next := setup(t)

		if err := w.Finalize(); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if w.State() != StateViewingEditable {
			t.Fatalf("expected ViewingEditable, got %v", w.State())
		}

		err := w.ApplySuccess(repo, tr, "42", booking.StatusAccepted, "confirmed")
		if err != nil {
			t.Fatalf("apply: %v", err)
		}

		if next.Status != booking.StatusAccepted || next.Notes != "confirmed" {
			t.Errorf("new slot not updated: %+v", next)
		}
		if old.OwnerCustomerID != "" {
			t.Error("old slot ownership must be cleared")
		}
		if !tr.IsCurrent("b1") {
			t.Errorf("tracker must move to the new appointment, got %+v", tr.Current())
		}

		// Re-render: old no longer registered, new registered.
		if got := booking.Classify(old, tr, "42", false); got == booking.CellRegistered {
			t.Error("old cell must not render registered")
		}
		if got := booking.Classify(next, tr, "42", false); got != booking.CellRegistered {
			t.Errorf("new cell must render registered, got %v", got)
		}
	})

	t.Run("failure leaves repository and tracker untouched", func(t *testing.T) {
		w, tr, repo, old, next := setup(t)

		if err := w.Finalize(); err != nil {
			t.Fatalf("finalize: %v", err)
		}

		// A failed mutation never reaches ApplySuccess; the dialog stays
		// open and nothing local moves.
		if !tr.IsCurrent("a1") {
			t.Error("tracker must still hold the old registration")
		}
		if old.OwnerCustomerID != "42" {
			t.Error("old slot ownership must be intact")
		}
		if next.Notes != "" || next.Status != booking.StatusPending {
			t.Errorf("new slot must be untouched: %+v", next)
		}
		if got := repo.Slots("1")[0]; got != old {
			t.Error("repository must be unchanged")
		}
		if w.State() != StateViewingEditable {
			t.Errorf("dialog must stay open, got %v", w.State())
		}
	})

	t.Run("view old resolves from the repository", func(t *testing.T) {
		w, _, repo, old, _ := setup(t)

		slot, err := w.ResolveOld(repo, []booking.Resource{{ID: "1"}, {ID: "2"}})
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if slot != old {
			t.Errorf("expected the old slot, got %+v", slot)
		}

		if err := w.ViewFetched(slot); err != nil {
			t.Fatalf("view: %v", err)
		}
		if w.State() != StateViewingReadOnly || w.ViewSlot() != old {
			t.Errorf("expected read-only view of old slot")
		}

		// Closing the view restores the pending update.
		w.CloseView()
		if w.State() != StateUpdatePending {
			t.Errorf("expected UpdatePending after close, got %v", w.State())
		}
	})

	t.Run("view new uses the held object", func(t *testing.T) {
		w, _, _, _, next := setup(t)

		if err := w.ViewClicked(); err != nil {
			t.Fatalf("view: %v", err)
		}
		if w.ViewSlot() != next {
			t.Error("read-only view must show the clicked slot")
		}
		w.CloseView()
		if w.State() != StateUpdatePending {
			t.Errorf("expected UpdatePending after close, got %v", w.State())
		}
	})
}

func TestWorkflow_Editable(t *testing.T) {
	t.Run("submit requires an appointment id", func(t *testing.T) {
		w := NewWorkflow()
		slot := availableSlot("", "1", 9, 0)
		w.Edit(slot)
		if err := w.ValidateSubmit(); !errors.Is(err, booking.ErrMissingAppointmentID) {
			t.Errorf("expected ErrMissingAppointmentID, got %v", err)
		}
	})

	t.Run("edit outside the update flow keeps the tracker still", func(t *testing.T) {
		tr := booking.NewTracker()
		repo := booking.NewSlotRepository()
		slot := availableSlot("a1", "1", 9, 0)
		repo.ReplaceAll(booking.Resource{ID: "1"}, []*booking.Slot{slot})
		tr.Set(booking.Registration{AppointmentID: "a1", ResourceID: "1"})

		w := NewWorkflow()
		w.Edit(slot)
		if w.State() != StateViewingEditable || w.ViaUpdate() {
			t.Fatalf("expected plain editable view, got %v viaUpdate=%t", w.State(), w.ViaUpdate())
		}

		if err := w.ApplySuccess(repo, tr, "42", booking.StatusRejected, "cannot make it"); err != nil {
			t.Fatalf("apply: %v", err)
		}
		if slot.Status != booking.StatusRejected || slot.Notes != "cannot make it" {
			t.Errorf("slot not updated: %+v", slot)
		}
		if !tr.IsCurrent("a1") {
			t.Error("plain edit must not move the tracker")
		}
	})

	t.Run("apply patches the held slot when a reload raced it out", func(t *testing.T) {
		tr := booking.NewTracker()
		repo := booking.NewSlotRepository() // empty: the slot is gone
		slot := availableSlot("a1", "1", 9, 0)

		w := NewWorkflow()
		w.Edit(slot)
		if err := w.ApplySuccess(repo, tr, "42", booking.StatusAccepted, "ok"); err != nil {
			t.Fatalf("apply: %v", err)
		}
		if slot.Status != booking.StatusAccepted || slot.Notes != "ok" {
			t.Errorf("held slot must be patched directly: %+v", slot)
		}
	})
}
