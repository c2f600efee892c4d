package api

import (
	"context"

	"github.com/masterfit/fitcal/internal/booking"
)

// ModeStore persists the live/mock transport flag across runs.
// *prefs.Store satisfies it.
type ModeStore interface {
	SetMode(ctx context.Context, mode string) error
}

// FallbackGateway wraps a live gateway with the fixture fallback
// policy: when a read fails (transport or logical failure), the
// process-wide mode flips to mock, the flip is persisted, and the
// built-in fixtures are served instead. Reads therefore never abort a
// load. Writes are never absorbed: UpdateAppointment always goes to
// the live service and its failures reach the caller.
type FallbackGateway struct {
	live  Gateway
	store ModeStore
	mode  string
}

// NewFallbackGateway wraps a live gateway. initialMode is the flag as
// persisted from previous runs; "mock" skips the network entirely.
func NewFallbackGateway(live Gateway, store ModeStore, initialMode string) *FallbackGateway {
	mode := initialMode
	if mode != "mock" {
		mode = "live"
	}
	return &FallbackGateway{live: live, store: store, mode: mode}
}

// Mode returns the current transport mode.
func (g *FallbackGateway) Mode() string {
	return g.mode
}

// ListResources returns live resources, or the fixture list after a
// read failure.
func (g *FallbackGateway) ListResources(ctx context.Context, customerID string) ([]booking.Resource, error) {
	if g.mode == "mock" {
		return FixtureResources(), nil
	}
	resources, err := g.live.ListResources(ctx, customerID)
	if err != nil {
		g.switchToMock(ctx)
		return FixtureResources(), nil
	}
	return resources, nil
}

// ListSlots returns live slots, or the fixture list for the exact
// (customer, date, resource) key after a read failure. A logical
// failure response is treated the same as a transport failure.
func (g *FallbackGateway) ListSlots(ctx context.Context, customerID, date, resourceID string) ([]*booking.Slot, error) {
	if g.mode == "mock" {
		return FixtureSlots(customerID, date, resourceID), nil
	}
	slots, err := g.live.ListSlots(ctx, customerID, date, resourceID)
	if err != nil {
		g.switchToMock(ctx)
		return FixtureSlots(customerID, date, resourceID), nil
	}
	return slots, nil
}

// UpdateAppointment always hits the live service. No mock fallback.
func (g *FallbackGateway) UpdateAppointment(ctx context.Context, appointmentID string, status booking.Status, notes string) error {
	return g.live.UpdateAppointment(ctx, appointmentID, status, notes)
}

// switchToMock flips the process-wide flag and persists it. The flip
// itself must not fail the read it is rescuing.
func (g *FallbackGateway) switchToMock(ctx context.Context) {
	g.mode = "mock"
	if g.store != nil {
		_ = g.store.SetMode(ctx, "mock")
	}
}
