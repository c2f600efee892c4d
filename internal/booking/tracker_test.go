package booking

import (
	"testing"
	"time"
)

func TestTracker(t *testing.T) {
	from := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	reg := Registration{AppointmentID: "a1", ResourceID: "1", TimeFrom: from, TimeTo: from.Add(30 * time.Minute)}

	t.Run("empty tracker matches nothing", func(t *testing.T) {
		tr := NewTracker()
		if tr.Current() != nil {
			t.Error("expected nil current")
		}
		if tr.IsCurrent("a1") {
			t.Error("empty tracker must not match")
		}
	})

	t.Run("set and match", func(t *testing.T) {
		tr := NewTracker()
		tr.Set(reg)
		if !tr.IsCurrent("a1") {
			t.Error("expected match for a1")
		}
		if tr.IsCurrent("a2") {
			t.Error("unexpected match for a2")
		}
	})

	t.Run("empty id never matches", func(t *testing.T) {
		tr := NewTracker()
		tr.Set(Registration{AppointmentID: ""})
		if tr.IsCurrent("") {
			t.Error("empty appointment id must never match")
		}
	})

	t.Run("clear drops the registration", func(t *testing.T) {
		tr := NewTracker()
		tr.Set(reg)
		tr.Clear()
		if tr.Current() != nil {
			t.Error("expected nil after clear")
		}
	})

	t.Run("set copies the registration", func(t *testing.T) {
		tr := NewTracker()
		local := reg
		tr.Set(local)
		local.AppointmentID = "mutated"
		if !tr.IsCurrent("a1") {
			t.Error("tracker must hold its own copy")
		}
	})
}

func TestTracker_SeedFromSlots(t *testing.T) {
	repo := NewSlotRepository()
	resources := []Resource{{ID: "1"}, {ID: "2"}}

	owned := slotAt("b1", "2", 9, 30)
	owned.OwnerCustomerID = "42"
	ownedLater := slotAt("b2", "2", 11, 0)
	ownedLater.OwnerCustomerID = "42"

	repo.ReplaceAll(resources[0], []*Slot{slotAt("a1", "1", 9, 0)})
	repo.ReplaceAll(resources[1], []*Slot{owned, ownedLater})

	t.Run("first owned slot in scan order wins", func(t *testing.T) {
		tr := NewTracker()
		if !tr.SeedFromSlots(repo, resources, "42") {
			t.Fatal("expected a seed")
		}
		if !tr.IsCurrent("b1") {
			t.Errorf("expected b1, got %+v", tr.Current())
		}
	})

	t.Run("no owned slots seeds nothing", func(t *testing.T) {
		tr := NewTracker()
		if tr.SeedFromSlots(repo, resources, "99") {
			t.Error("expected no seed")
		}
	})

	t.Run("empty customer seeds nothing", func(t *testing.T) {
		tr := NewTracker()
		if tr.SeedFromSlots(repo, resources, "") {
			t.Error("empty customer must not seed")
		}
	})

	t.Run("slot without appointment id is skipped", func(t *testing.T) {
		repo2 := NewSlotRepository()
		anon := slotAt("", "1", 9, 0)
		anon.OwnerCustomerID = "42"
		repo2.ReplaceAll(Resource{ID: "1"}, []*Slot{anon})

		tr := NewTracker()
		if tr.SeedFromSlots(repo2, []Resource{{ID: "1"}}, "42") {
			t.Error("slot without identity must not seed")
		}
	})
}
