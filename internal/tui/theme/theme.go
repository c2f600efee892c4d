// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Cell highlight
	BgSelection string `toml:"bg_selection"` // Cursor cell
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Empty cells, secondary text
	Accent      string `toml:"accent"`       // Borders, headers
	Available   string `toml:"available"`    // Open slots
	Booked      string `toml:"booked"`       // Slots held by others
	Registered  string `toml:"registered"`   // The session's own slot
	Warning     string `toml:"warning"`      // Failure notices

	// Modal palette
	ModalBorder string `toml:"modal_border"`
	ModalBg     string `toml:"modal_bg"`
	Backdrop    string `toml:"backdrop"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// Available returns the names of the embedded themes.
func Available() []string {
	entries, err := embeddedThemes.ReadDir("embedded")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	return names
}

// IsAvailable reports whether a theme name is embedded.
func IsAvailable(name string) bool {
	for _, n := range Available() {
		if n == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// applyDefaults fills modal colors from the base theme when a palette
// file leaves them unset.
func (t *Theme) applyDefaults() {
	if t.ModalBorder == "" {
		t.ModalBorder = t.Accent
	}
	if t.ModalBg == "" {
		t.ModalBg = t.Bg
	}
	if t.Backdrop == "" {
		t.Backdrop = t.Bg
	}
}
