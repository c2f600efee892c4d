package ui

import (
	"fmt"
	"strings"

	"github.com/masterfit/fitcal/internal/booking"
)

// slotSymbol returns the list glyph for a slot.
func slotSymbol(s *booking.Slot, customerID string) string {
	switch {
	case s.OwnerCustomerID != "" && s.OwnerCustomerID == customerID:
		return formatRegistered("●")
	case s.Available():
		return formatAvailable("○")
	default:
		return formatBooked("■")
	}
}

// formatSlotLine renders one slot for the slots listing.
func formatSlotLine(s *booking.Slot, customerID string) string {
	symbol := slotSymbol(s, customerID)
	times := s.TimeFrom.Format("15:04") + "-" + s.TimeTo.Format("15:04")

	label := s.StatusLabel
	if label == "" {
		label = s.Status.Label()
	}

	line := fmt.Sprintf("  %s %s  %-10s", symbol, times, label)
	if s.Notes != "" {
		line += "  " + formatMuted(s.Notes)
	}
	return line
}

// sectionHeader renders a full-width section divider.
func sectionHeader(title string) string {
	width := termWidth()
	if width > 60 {
		width = 60
	}
	pad := width - len(title) - 5
	if pad < 0 {
		pad = 0
	}
	return formatHeader("=== "+title+" ") + strings.Repeat("=", pad)
}
