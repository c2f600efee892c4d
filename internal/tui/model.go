package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/masterfit/fitcal/internal/api"
	"github.com/masterfit/fitcal/internal/booking"
	"github.com/masterfit/fitcal/internal/config"
	"github.com/masterfit/fitcal/internal/dateutil"
	"github.com/masterfit/fitcal/internal/prefs"
	"github.com/masterfit/fitcal/internal/tui/commands"
	"github.com/masterfit/fitcal/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Entering a date in the footer prompt
	ModeModal       // A workflow dialog is open
)

// Position represents a cursor position in the grid.
type Position struct {
	Row int // Time row index
	Col int // Resource column index
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	gateway api.Gateway
	store   *prefs.Store
	config  *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Session
	customerID string
	date       time.Time

	// Domain state
	resources []booking.Resource
	repo      *booking.SlotRepository
	tracker   *booking.Tracker
	workflow  *Workflow
	rows      []time.Time
	grid      Grid

	// Load state
	loadGen int  // generation of the newest requested load
	loading bool

	// UI state
	cursor        Position
	mode          Mode
	transportMode string // "live" or "mock", displayed in the footer

	// Editable view inputs
	notesInput textinput.Model
	editStatus booking.Status

	// Components
	prompt  textinput.Model
	overlay OverlayModel

	// Terminal dimensions
	width        int
	height       int
	colWidth     int
	scrollOffset int

	// Messages
	statusMsg  string
	statusTime time.Time

	err error
}

// New creates a new TUI model.
func New(gw api.Gateway, store *prefs.Store, cfg *config.Config, customerID string, date time.Time) *Model {
	prompt := textinput.New()
	prompt.Placeholder = "YYYY-MM-DD"
	prompt.CharLimit = 10
	prompt.Width = 12

	notes := textinput.New()
	notes.Placeholder = "Notes"
	notes.CharLimit = 256
	notes.Width = 40

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	notes.PlaceholderStyle = styles.ModalPlaceholderStyle
	notes.TextStyle = styles.ModalInputStyle
	notes.PromptStyle = styles.ModalInputStyle

	transportMode := prefs.ModeLive
	if fb, ok := gw.(*api.FallbackGateway); ok {
		transportMode = fb.Mode()
	}

	return &Model{
		gateway:       gw,
		store:         store,
		config:        cfg,
		theme:         t,
		styles:        styles,
		customerID:    customerID,
		date:          dateutil.TruncateToDay(date),
		repo:          booking.NewSlotRepository(),
		tracker:       booking.NewTracker(),
		workflow:      NewWorkflow(),
		loading:       true,
		mode:          ModeNormal,
		transportMode: transportMode,
		notesInput:    notes,
		prompt:        prompt,
		overlay:       NewOverlayModel(),
		colWidth:      defaultColWidth,
		editStatus:    booking.StatusPending,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadDay(m.gateway, m.customerID, m.date, m.loadGen)
}

// reload abandons any in-flight load and requests the current day again.
// Bumping the generation makes stale responses identifiable.
func (m *Model) reload() tea.Cmd {
	m.loadGen++
	m.loading = true
	return commands.LoadDay(m.gateway, m.customerID, m.date, m.loadGen)
}

// gotoDate switches the grid to another day and reloads.
func (m *Model) gotoDate(date time.Time) tea.Cmd {
	m.date = dateutil.TruncateToDay(date)
	m.cursor = Position{}
	m.scrollOffset = 0
	return m.reload()
}

// rebuildGrid re-projects repository and tracker state into the grid.
func (m *Model) rebuildGrid() {
	m.grid = BuildGrid(m.rows, m.resources, m.repo, m.tracker, m.customerID, m.config.Booking.TrustServerOwnership)
}

// refreshTransportMode re-reads the gateway mode for the footer.
func (m *Model) refreshTransportMode() {
	if fb, ok := m.gateway.(*api.FallbackGateway); ok {
		m.transportMode = fb.Mode()
	}
}

// rememberSession persists the session so the next launch resumes it.
func (m *Model) rememberSession() {
	if m.store == nil {
		return
	}
	_ = m.store.SetLastSession(context.Background(), m.customerID, dateutil.FormatDate(m.date))
}

// maxRows returns the number of time rows in the current grid.
func (m Model) maxRows() int {
	return len(m.rows)
}

// visibleRows returns how many grid rows fit the current terminal.
func (m Model) visibleRows() int {
	// Header, table chrome, and footer eat into the height.
	v := m.height - chromeLines
	if v < 1 {
		v = 1
	}
	return v
}

// ensureCursorVisible adjusts scrollOffset so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.cursor.Row < m.scrollOffset {
		m.scrollOffset = m.cursor.Row
	}
	if m.cursor.Row >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor.Row - visible + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// clampCursor keeps the cursor inside the grid after a reload.
func (m *Model) clampCursor() {
	if m.cursor.Row >= m.maxRows() {
		m.cursor.Row = m.maxRows() - 1
	}
	if m.cursor.Row < 0 {
		m.cursor.Row = 0
	}
	if m.cursor.Col >= len(m.resources) {
		m.cursor.Col = len(m.resources) - 1
	}
	if m.cursor.Col < 0 {
		m.cursor.Col = 0
	}
	m.ensureCursorVisible()
}

// calculateColWidth divides the terminal width across resource columns.
func (m Model) calculateColWidth() int {
	cols := len(m.resources)
	if cols == 0 {
		return defaultColWidth
	}
	// Time column plus one border per column.
	w := (m.width - timeColWidth - cols - 2) / cols
	if w < minColWidth {
		w = minColWidth
	}
	if w > maxColWidth {
		w = maxColWidth
	}
	return w
}

const (
	timeColWidth = 7
	minColWidth  = 10
	maxColWidth  = 28
	chromeLines  = 9 // header + table borders + footer
)

// timeNow is swappable in tests.
var timeNow = time.Now

// Run starts the TUI.
func Run(gw api.Gateway, store *prefs.Store, cfg *config.Config, customerID string, date time.Time) error {
	return RunWithDebug(gw, store, cfg, customerID, date, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(gw api.Gateway, store *prefs.Store, cfg *config.Config, customerID string, date time.Time, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(gw, store, cfg, customerID, date)
	p := tea.NewProgram(*model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
