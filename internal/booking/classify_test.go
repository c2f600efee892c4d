package booking

import "testing"

func TestClassify(t *testing.T) {
	t.Run("nil slot is empty", func(t *testing.T) {
		if got := Classify(nil, NewTracker(), "42", false); got != CellEmpty {
			t.Errorf("expected empty, got %v", got)
		}
	})

	t.Run("tracked slot is registered regardless of status", func(t *testing.T) {
		s := slotAt("a1", "1", 9, 0)
		s.Status = StatusAccepted // would otherwise classify as booked
		tr := NewTracker()
		tr.Set(Registration{AppointmentID: "a1"})

		if got := Classify(s, tr, "42", false); got != CellRegistered {
			t.Errorf("expected registered, got %v", got)
		}
	})

	t.Run("tracker wins over a foreign server owner under trust", func(t *testing.T) {
		s := slotAt("a1", "1", 9, 0)
		s.Status = StatusAccepted
		s.OwnerCustomerID = "99" // server credits someone else
		tr := NewTracker()
		tr.Set(Registration{AppointmentID: "a1"})

		if got := Classify(s, tr, "42", true); got != CellRegistered {
			t.Errorf("expected registered, got %v", got)
		}
		if !OwnedBy(s, tr, "42", true) {
			t.Error("tracked appointment must stay owned")
		}
	})

	t.Run("available beats booked", func(t *testing.T) {
		s := slotAt("a1", "1", 9, 0)
		s.Status = StatusPending
		if got := Classify(s, NewTracker(), "42", false); got != CellAvailable {
			t.Errorf("expected available, got %v", got)
		}
	})

	t.Run("anything else is booked", func(t *testing.T) {
		s := slotAt("a1", "1", 9, 0)
		s.Status = StatusAccepted
		if got := Classify(s, NewTracker(), "42", false); got != CellBooked {
			t.Errorf("expected booked, got %v", got)
		}
	})
}

func TestOwnedBy(t *testing.T) {
	t.Run("server ownership is ignored by default", func(t *testing.T) {
		s := slotAt("a1", "1", 9, 0)
		s.OwnerCustomerID = "42"
		if OwnedBy(s, NewTracker(), "42", false) {
			t.Error("untrusted server ownership must not classify as owned")
		}
	})

	t.Run("server ownership counts when trusted", func(t *testing.T) {
		s := slotAt("a1", "1", 9, 0)
		s.OwnerCustomerID = "42"
		if !OwnedBy(s, NewTracker(), "42", true) {
			t.Error("trusted server ownership should classify as owned")
		}
	})

	t.Run("empty server owner never matches", func(t *testing.T) {
		s := slotAt("a1", "1", 9, 0)
		if OwnedBy(s, NewTracker(), "", true) {
			t.Error("empty owner must not match empty customer")
		}
	})

	t.Run("tracker match wins without trust", func(t *testing.T) {
		s := slotAt("a1", "1", 9, 0)
		tr := NewTracker()
		tr.Set(Registration{AppointmentID: "a1"})
		if !OwnedBy(s, tr, "42", false) {
			t.Error("tracked appointment should be owned")
		}
	})
}
