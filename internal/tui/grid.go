package tui

import (
	"time"

	"github.com/masterfit/fitcal/internal/booking"
)

// GridCell is one resource column entry in a rendered row.
type GridCell struct {
	Slot  *booking.Slot // nil for an unmatched cell
	State booking.CellState
}

// GridRow is one time row of the day grid.
type GridRow struct {
	Time  time.Time
	Cells []GridCell
}

// Grid is the pure projection of (row boundaries x slot repository x
// tracker) into a presentational tree. Building it twice from
// unchanged inputs yields an identical tree.
type Grid struct {
	Rows      []GridRow
	Resources []booking.Resource
	Empty     bool // zero resources: render an empty state, not an empty grid
}

// BuildGrid projects the current repository and tracker state onto the
// generated time rows. Each cell holds the first slot of its resource
// whose TimeFrom matches the row boundary at minute granularity;
// duplicate start times beyond the first are not shown (defined
// behavior, renderer matches by exact minute).
func BuildGrid(rows []time.Time, resources []booking.Resource, repo *booking.SlotRepository, tracker *booking.Tracker, customerID string, trustServer bool) Grid {
	if len(resources) == 0 {
		return Grid{Empty: true}
	}

	out := Grid{
		Rows:      make([]GridRow, 0, len(rows)),
		Resources: resources,
	}

	for _, rowTime := range rows {
		row := GridRow{
			Time:  rowTime,
			Cells: make([]GridCell, 0, len(resources)),
		}
		for _, res := range resources {
			slot := repo.Find(res.ID, func(s *booking.Slot) bool {
				return booking.SameMinute(s.TimeFrom, rowTime)
			})
			row.Cells = append(row.Cells, GridCell{
				Slot:  slot,
				State: booking.Classify(slot, tracker, customerID, trustServer),
			})
		}
		out.Rows = append(out.Rows, row)
	}

	return out
}

// CellAt returns the cell at a cursor position, or a zero cell when
// the position is out of bounds.
func (g Grid) CellAt(row, col int) GridCell {
	if row < 0 || row >= len(g.Rows) {
		return GridCell{}
	}
	cells := g.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return GridCell{}
	}
	return cells[col]
}
