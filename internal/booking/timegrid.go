package booking

import "time"

// GenerateRows produces the ordered row boundaries for the display
// grid: one timestamp per row on the given date, from startHour:00
// through endHour:(60-stepMinutes). For each hour in
// [startHour, endHour], one timestamp is emitted per stepMinutes
// offset within the hour, so the last hour is covered in full.
// Pure function of its inputs.
func GenerateRows(date time.Time, startHour, endHour, stepMinutes int) []time.Time {
	if stepMinutes <= 0 || stepMinutes > 60 || startHour > endHour {
		return nil
	}

	perHour := 60 / stepMinutes
	rows := make([]time.Time, 0, (endHour-startHour+1)*perHour)
	for hour := startHour; hour <= endHour; hour++ {
		for min := 0; min < 60; min += stepMinutes {
			rows = append(rows, time.Date(
				date.Year(), date.Month(), date.Day(),
				hour, min, 0, 0, date.Location(),
			))
		}
	}
	return rows
}
