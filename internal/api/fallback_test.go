package api

import (
	"context"
	"errors"
	"testing"

	"github.com/masterfit/fitcal/internal/booking"
)

// stubGateway scripts live responses for fallback tests.
type stubGateway struct {
	resources    []booking.Resource
	slots        []*booking.Slot
	readErr      error
	updateErr    error
	updateCalled bool
}

func (s *stubGateway) ListResources(context.Context, string) ([]booking.Resource, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.resources, nil
}

func (s *stubGateway) ListSlots(context.Context, string, string, string) ([]*booking.Slot, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.slots, nil
}

func (s *stubGateway) UpdateAppointment(context.Context, string, booking.Status, string) error {
	s.updateCalled = true
	return s.updateErr
}

// stubModeStore records persisted mode flips.
type stubModeStore struct {
	saved []string
	err   error
}

func (s *stubModeStore) SetMode(_ context.Context, mode string) error {
	s.saved = append(s.saved, mode)
	return s.err
}

func TestFallbackGateway_ReadFailureFlipsToMock(t *testing.T) {
	live := &stubGateway{readErr: errors.New("connection refused")}
	store := &stubModeStore{}
	g := NewFallbackGateway(live, store, "live")

	slots, err := g.ListSlots(context.Background(), FixtureCustomerID, FixtureDate, "1")
	if err != nil {
		t.Fatalf("fallback read must not error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 fixture slots, got %d", len(slots))
	}
	if g.Mode() != "mock" {
		t.Errorf("expected mode mock, got %q", g.Mode())
	}
	if len(store.saved) != 1 || store.saved[0] != "mock" {
		t.Errorf("flip must persist once, got %v", store.saved)
	}

	// Subsequent reads skip the live service entirely.
	resources, err := g.ListResources(context.Background(), FixtureCustomerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resources) != 2 {
		t.Errorf("expected fixture resources, got %+v", resources)
	}
	if len(store.saved) != 1 {
		t.Errorf("already-mock reads must not persist again, got %v", store.saved)
	}
}

func TestFallbackGateway_PersistedMockSkipsNetwork(t *testing.T) {
	live := &stubGateway{readErr: errors.New("should not be called")}
	g := NewFallbackGateway(live, &stubModeStore{}, "mock")

	slots, err := g.ListSlots(context.Background(), FixtureCustomerID, FixtureDate, "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 fixture slots, got %d", len(slots))
	}
}

func TestFallbackGateway_FixtureMissYieldsEmptyList(t *testing.T) {
	g := NewFallbackGateway(&stubGateway{}, &stubModeStore{}, "mock")

	slots, err := g.ListSlots(context.Background(), "999", "2024-01-01", "1")
	if err != nil {
		t.Fatalf("fixture miss must not error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected empty list, got %d slots", len(slots))
	}
}

func TestFallbackGateway_LiveSuccessStaysLive(t *testing.T) {
	live := &stubGateway{resources: []booking.Resource{{ID: "8", DisplayName: "Real"}}}
	store := &stubModeStore{}
	g := NewFallbackGateway(live, store, "live")

	resources, err := g.ListResources(context.Background(), "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resources) != 1 || resources[0].ID != "8" {
		t.Errorf("expected live resources, got %+v", resources)
	}
	if g.Mode() != "live" || len(store.saved) != 0 {
		t.Errorf("successful read must not flip mode")
	}
}

func TestFallbackGateway_WritesNeverFallBack(t *testing.T) {
	wantErr := errors.New("mutation rejected")
	live := &stubGateway{updateErr: wantErr}
	g := NewFallbackGateway(live, &stubModeStore{}, "mock")

	err := g.UpdateAppointment(context.Background(), "101", booking.StatusAccepted, "")
	if !errors.Is(err, wantErr) {
		t.Fatalf("write failures must propagate, got %v", err)
	}
	if !live.updateCalled {
		t.Error("write must reach the live service even in mock mode")
	}
	if g.Mode() != "mock" {
		t.Errorf("write failure must not change mode, got %q", g.Mode())
	}
}

func TestFixtureSlots_FreshCopies(t *testing.T) {
	first := FixtureSlots(FixtureCustomerID, FixtureDate, "1")
	first[0].Notes = "mutated"
	first[0].OwnerCustomerID = "42"

	second := FixtureSlots(FixtureCustomerID, FixtureDate, "1")
	if second[0].Notes != "" || second[0].OwnerCustomerID != "" {
		t.Error("fixture mutations must not bleed into later loads")
	}
}
