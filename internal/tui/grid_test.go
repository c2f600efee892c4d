package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/masterfit/fitcal/internal/api"
	"github.com/masterfit/fitcal/internal/booking"
)

func fixtureRepo(t *testing.T) (*booking.SlotRepository, []booking.Resource) {
	t.Helper()
	repo := booking.NewSlotRepository()
	res := booking.Resource{ID: "1", DisplayName: "Nutrition Clinic A"}
	slots := api.FixtureSlots(api.FixtureCustomerID, api.FixtureDate, res.ID)
	if len(slots) != 2 {
		t.Fatalf("expected two fixture slots for resource 1, got %d", len(slots))
	}
	repo.ReplaceAll(res, slots)
	return repo, []booking.Resource{res}
}

func TestBuildGrid(t *testing.T) {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	t.Run("fixture slots land in exactly their rows", func(t *testing.T) {
		repo, resources := fixtureRepo(t)
		rows := booking.GenerateRows(day, 8, 17, 30)
		grid := BuildGrid(rows, resources, repo, booking.NewTracker(), "1", false)

		if grid.Empty {
			t.Fatal("grid must not be empty with one resource")
		}
		if len(grid.Rows) != len(rows) {
			t.Fatalf("expected %d rows, got %d", len(rows), len(grid.Rows))
		}

		want := map[string]bool{"09:00": true, "10:00": true}
		filled := 0
		for _, row := range grid.Rows {
			cell := row.Cells[0]
			key := row.Time.Format("15:04")
			if want[key] {
				if cell.Slot == nil {
					t.Errorf("row %s: expected a slot", key)
					continue
				}
				if !booking.SameMinute(cell.Slot.TimeFrom, row.Time) {
					t.Errorf("row %s: slot starts at %s", key, cell.Slot.TimeFrom.Format("15:04"))
				}
				if cell.State != booking.CellAvailable {
					t.Errorf("row %s: expected available, got %v", key, cell.State)
				}
				filled++
			} else if cell.Slot != nil {
				t.Errorf("row %s: unexpected slot %q", key, cell.Slot.AppointmentID)
			}
		}
		if filled != 2 {
			t.Errorf("expected exactly 2 filled cells, got %d", filled)
		}
	})

	t.Run("building twice from unchanged inputs is identical", func(t *testing.T) {
		repo, resources := fixtureRepo(t)
		tr := booking.NewTracker()
		rows := booking.GenerateRows(day, 8, 17, 30)

		a := BuildGrid(rows, resources, repo, tr, "1", false)
		b := BuildGrid(rows, resources, repo, tr, "1", false)
		if !reflect.DeepEqual(a, b) {
			t.Error("rebuilding from unchanged inputs must yield an identical tree")
		}
	})

	t.Run("zero resources signal the empty state", func(t *testing.T) {
		repo := booking.NewSlotRepository()
		rows := booking.GenerateRows(day, 8, 17, 30)

		grid := BuildGrid(rows, nil, repo, booking.NewTracker(), "1", false)
		if !grid.Empty {
			t.Fatal("expected the empty-state signal")
		}
		if len(grid.Rows) != 0 {
			t.Error("an empty grid carries no rows")
		}
	})

	t.Run("tracker ownership classifies the cell registered", func(t *testing.T) {
		repo, resources := fixtureRepo(t)
		tr := booking.NewTracker()

		slot := repo.Slots("1")[0]
		tr.Set(booking.Registration{
			AppointmentID: slot.AppointmentID,
			ResourceID:    slot.ResourceID,
			TimeFrom:      slot.TimeFrom,
			TimeTo:        slot.TimeTo,
		})

		rows := booking.GenerateRows(day, 8, 17, 30)
		grid := BuildGrid(rows, resources, repo, tr, "1", false)

		seen := false
		for _, row := range grid.Rows {
			cell := row.Cells[0]
			if cell.Slot == slot {
				seen = true
				if cell.State != booking.CellRegistered {
					t.Errorf("owned cell must be registered, got %v", cell.State)
				}
			}
		}
		if !seen {
			t.Fatal("owned slot not placed in the grid")
		}
	})

	t.Run("duplicate start times show the first slot only", func(t *testing.T) {
		repo := booking.NewSlotRepository()
		res := booking.Resource{ID: "1"}
		first := &booking.Slot{
			AppointmentID: "first", ResourceID: "1",
			TimeFrom: day.Add(9 * time.Hour), Status: booking.StatusPending,
		}
		second := &booking.Slot{
			AppointmentID: "second", ResourceID: "1",
			TimeFrom: day.Add(9 * time.Hour), Status: booking.StatusAccepted,
		}
		repo.ReplaceAll(res, []*booking.Slot{first, second})

		rows := booking.GenerateRows(day, 9, 9, 60)
		grid := BuildGrid(rows, []booking.Resource{res}, repo, booking.NewTracker(), "1", false)
		if got := grid.Rows[0].Cells[0].Slot; got != first {
			t.Errorf("expected the first matching slot, got %+v", got)
		}
	})
}

func TestGridCellAt(t *testing.T) {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	repo, resources := fixtureRepo(t)
	rows := booking.GenerateRows(day, 9, 10, 60)
	grid := BuildGrid(rows, resources, repo, booking.NewTracker(), "1", false)

	if got := grid.CellAt(0, 0); got.Slot == nil {
		t.Error("in-bounds cell must be returned")
	}
	for _, pos := range []Position{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 99, Col: 0}, {Row: 0, Col: 99}} {
		if got := grid.CellAt(pos.Row, pos.Col); got.Slot != nil || got.State != booking.CellEmpty {
			t.Errorf("out-of-bounds %v must yield a zero cell", pos)
		}
	}
}
