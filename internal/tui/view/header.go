package view

import (
	"time"

	"github.com/masterfit/fitcal/internal/booking"
)

// HeaderLabels builds grid column labels and marks the column holding
// the session's registration.
func HeaderLabels(resources []booking.Resource, registered string) ([]string, map[int]bool) {
	labels := make([]string, 0, len(resources)+1)
	marked := make(map[int]bool)

	labels = append(labels, "Time")
	for i, res := range resources {
		label := res.DisplayName
		if label == "" {
			label = res.ID
		}
		if registered != "" && res.ID == registered {
			label = "*" + label + "*"
			marked[i+1] = true
		}
		labels = append(labels, label)
	}

	return labels, marked
}

// DayTitle formats the grid title line for a date.
func DayTitle(date time.Time) string {
	return date.Format("Monday, 02 Jan 2006")
}
