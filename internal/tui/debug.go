package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/masterfit/fitcal/internal/booking"
)

// DebugLogger logs TUI state, keystrokes, and events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "fitcal-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogWorkflow logs a workflow state after a transition attempt.
func LogWorkflow(state WorkflowState, action string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("WORKFLOW", map[string]any{
		"state":  state.String(),
		"action": action,
	})
}

// LogRegistration logs a local registration.
func LogRegistration(reg booking.Registration) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("REGISTER", map[string]any{
		"appointment_id": reg.AppointmentID,
		"resource_id":    reg.ResourceID,
		"time_from":      reg.TimeFrom.Format(time.RFC3339),
	})
}

// LogMutation logs an outgoing server mutation.
func LogMutation(appointmentID string, status booking.Status) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("MUTATION", map[string]any{
		"appointment_id": appointmentID,
		"status":         status.Label(),
	})
}

// LogDayLoaded logs a completed day load.
func LogDayLoaded(gen, resourceCount int) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("DAY_LOADED", map[string]any{
		"gen":       gen,
		"resources": resourceCount,
	})
}

// LogStaleLoad logs a dropped stale load result.
func LogStaleLoad(gotGen, wantGen int) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("STALE_LOAD", map[string]any{
		"got_gen":  gotGen,
		"want_gen": wantGen,
	})
}

// LogTrackerSeed logs a registration seeded from server ownership.
func LogTrackerSeed(reg *booking.Registration) {
	if debugLog == nil || !debugLog.enabled || reg == nil {
		return
	}
	debugLog.log("TRACKER_SEED", map[string]any{
		"appointment_id": reg.AppointmentID,
		"resource_id":    reg.ResourceID,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
