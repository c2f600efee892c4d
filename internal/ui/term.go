package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Available slots: green, the thing the user is looking for
	colorAvailable = color.New(color.FgGreen)

	// Booked slots: dim/grey, out of reach
	colorBooked = color.New(color.FgWhite, color.Faint)

	// The session's own registration: bold cyan
	colorRegistered = color.New(color.FgCyan, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Warnings: yellow
	colorWarn = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatAvailable formats text for open slots.
func formatAvailable(s string) string {
	return colorAvailable.Sprint(s)
}

// formatBooked formats text for slots held by others.
func formatBooked(s string) string {
	return colorBooked.Sprint(s)
}

// formatRegistered formats text for the session's own slot.
func formatRegistered(s string) string {
	return colorRegistered.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatWarn formats warning text.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
