package api

import (
	"time"

	"github.com/masterfit/fitcal/internal/booking"
)

// Built-in fixture data, substituted when a remote read fails. The
// slot fixtures are keyed by exact (customer, date, resource); a miss
// yields an empty list, not an error.

// FixtureCustomerID is the customer the demo fixtures belong to.
const FixtureCustomerID = "1"

// FixtureDate is the date the slot fixtures are pinned to.
const FixtureDate = "2025-11-03"

// FixtureResources returns the fixed built-in resource list.
func FixtureResources() []booking.Resource {
	return []booking.Resource{
		{ID: "1", DisplayName: "Nutrition Clinic A"},
		{ID: "2", DisplayName: "Nutrition Clinic B"},
	}
}

type fixtureKey struct {
	customerID string
	date       string
	resourceID string
}

type fixtureSlot struct {
	appointmentID string
	timeFrom      string // HH:MM
	timeTo        string // HH:MM
	status        booking.Status
	statusLabel   string
	owner         string
	notes         string
	fullName      string
}

var fixtureSlots = map[fixtureKey][]fixtureSlot{
	{FixtureCustomerID, FixtureDate, "1"}: {
		{appointmentID: "9001", timeFrom: "09:00", timeTo: "09:30", status: booking.StatusPending, statusLabel: "Available"},
		{appointmentID: "9002", timeFrom: "10:00", timeTo: "10:30", status: booking.StatusPending, statusLabel: "Available"},
	},
	{FixtureCustomerID, FixtureDate, "2"}: {
		{appointmentID: "9101", timeFrom: "09:30", timeTo: "10:00", status: booking.StatusAccepted, statusLabel: "Accepted", owner: "42", notes: "follow-up", fullName: "Existing Member"},
		{appointmentID: "9102", timeFrom: "11:00", timeTo: "11:30", status: booking.StatusPending, statusLabel: "Available"},
	},
}

// FixtureSlots returns fresh slot values for the exact key, or an
// empty list when no fixture matches. Each call builds new slots so
// in-place mutations never bleed into later loads.
func FixtureSlots(customerID, date, resourceID string) []*booking.Slot {
	entries, ok := fixtureSlots[fixtureKey{customerID, date, resourceID}]
	if !ok {
		return []*booking.Slot{}
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return []*booking.Slot{}
	}

	slots := make([]*booking.Slot, 0, len(entries))
	for _, e := range entries {
		slots = append(slots, &booking.Slot{
			AppointmentID:   e.appointmentID,
			ResourceID:      resourceID,
			Date:            date,
			TimeFrom:        atTime(day, e.timeFrom),
			TimeTo:          atTime(day, e.timeTo),
			Status:          e.status,
			StatusLabel:     e.statusLabel,
			OwnerCustomerID: e.owner,
			Notes:           e.notes,
			Detail:          booking.SlotDetail{FullName: e.fullName},
		})
	}
	return slots
}

// atTime combines a date with an HH:MM clock reading.
func atTime(day time.Time, hhmm string) time.Time {
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
}
