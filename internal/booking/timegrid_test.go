package booking

import (
	"testing"
	"time"
)

func TestGenerateRows(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	t.Run("thirty minute rows over a working day", func(t *testing.T) {
		rows := GenerateRows(date, 8, 17, 30)

		// 10 hours x 2 rows per hour
		if len(rows) != 20 {
			t.Fatalf("expected 20 rows, got %d", len(rows))
		}

		first := time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)
		if !rows[0].Equal(first) {
			t.Errorf("first row: expected %v, got %v", first, rows[0])
		}

		last := time.Date(2025, 11, 3, 17, 30, 0, 0, time.UTC)
		if !rows[len(rows)-1].Equal(last) {
			t.Errorf("last row: expected %v, got %v", last, rows[len(rows)-1])
		}
	})

	t.Run("rows are strictly increasing", func(t *testing.T) {
		rows := GenerateRows(date, 8, 17, 15)
		for i := 1; i < len(rows); i++ {
			if !rows[i].After(rows[i-1]) {
				t.Fatalf("row %d (%v) not after row %d (%v)", i, rows[i], i-1, rows[i-1])
			}
		}
	})

	t.Run("single hour", func(t *testing.T) {
		rows := GenerateRows(date, 9, 9, 20)
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		for i, want := range []int{0, 20, 40} {
			if rows[i].Minute() != want {
				t.Errorf("row %d: expected minute %d, got %d", i, want, rows[i].Minute())
			}
		}
	})

	t.Run("invalid inputs yield no rows", func(t *testing.T) {
		if rows := GenerateRows(date, 8, 17, 0); rows != nil {
			t.Errorf("zero step: expected nil, got %d rows", len(rows))
		}
		if rows := GenerateRows(date, 8, 17, 90); rows != nil {
			t.Errorf("step over an hour: expected nil, got %d rows", len(rows))
		}
		if rows := GenerateRows(date, 17, 8, 30); rows != nil {
			t.Errorf("start after end: expected nil, got %d rows", len(rows))
		}
	})

	t.Run("rows keep the date's location", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Madrid")
		if err != nil {
			t.Skip("tz database unavailable")
		}
		local := time.Date(2025, 11, 3, 0, 0, 0, 0, loc)
		rows := GenerateRows(local, 8, 9, 30)
		for _, r := range rows {
			if r.Location() != loc {
				t.Fatalf("expected location %v, got %v", loc, r.Location())
			}
		}
	})
}
