// Package booking defines the core domain types for fitcal.
package booking

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrMissingAppointmentID = errors.New("appointment id is required")
	ErrMissingResourceID    = errors.New("resource id is required")
	ErrInvalidStatus        = errors.New("status must be pending, accepted or rejected")
)

// Domain errors.
var (
	ErrSlotNotFound      = errors.New("slot not found")
	ErrAlreadyRegistered = errors.New("slot is already registered to this session")
)

// Status is the server-side appointment status code.
// The server documents 1/2/3 as Pending/Accept/Reject; the read path
// additionally treats code 1 as "available". Both readings are kept.
type Status int

const (
	StatusPending  Status = 1
	StatusAccepted Status = 2
	StatusRejected Status = 3
)

// Valid returns true if the status is a known code.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Label returns the human label for the status code.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// ParseStatus parses a status from its wire string ("1", "2", "3").
func ParseStatus(s string) (Status, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return StatusPending, nil
	case "2":
		return StatusAccepted, nil
	case "3":
		return StatusRejected, nil
	default:
		return 0, ErrInvalidStatus
	}
}

// Resource is a bookable calendar column (a practitioner, a room).
// Immutable for the session once loaded; replaced wholesale on reload.
type Resource struct {
	ID          string
	DisplayName string
}

// SlotDetail holds read-only display attributes returned by the
// slot query. They are shown in the detail view and never drive state.
type SlotDetail struct {
	FullName       string
	Phone          string
	BirthDate      string
	Color          string
	SubscriptionNo string
}

// Slot is one bookable (or booked) interval for one resource on one date.
type Slot struct {
	AppointmentID   string // server identity; empty means no appointment yet
	ResourceID      string
	ResourceName    string // annotated by the repository on ReplaceAll
	Date            string // yyyy-mm-dd
	TimeFrom        time.Time
	TimeTo          time.Time
	Status          Status
	StatusLabel     string // server label, may be empty
	OwnerCustomerID string // server's notion of ownership, may be stale or empty
	Notes           string
	Detail          SlotDetail
}

// HasAppointment returns true if the server has assigned an identity
// to this slot. An empty notes field is meaningful; an empty
// appointment id is not.
func (s *Slot) HasAppointment() bool {
	return s.AppointmentID != ""
}

// Available reports whether the slot is open for registration:
// status code 1, or a status label reading "available" in any case.
func (s *Slot) Available() bool {
	if s.Status == StatusPending {
		return true
	}
	return strings.EqualFold(s.StatusLabel, "available")
}

// Registration is the session's claim on a specific slot. It is set
// only by a successful local register or update action, never by
// server-reported ownership (unless the trust flag is enabled).
type Registration struct {
	AppointmentID string
	ResourceID    string
	TimeFrom      time.Time
	TimeTo        time.Time
}

// Session identifies who is booking and which day is shown.
// Mutated only by explicit user navigation.
type Session struct {
	CustomerID   string
	SelectedDate time.Time
}

// SameMinute reports whether two timestamps fall on the same calendar
// minute. Seconds are ignored; this is the renderer's matching rule.
func SameMinute(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day() &&
		a.Hour() == b.Hour() &&
		a.Minute() == b.Minute()
}
