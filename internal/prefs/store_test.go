package prefs

import (
	"context"
	"path/filepath"
	"testing"
)

// openStore creates a fresh store for each test with automatic cleanup.
func openStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_Mode(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to live", func(t *testing.T) {
		s := openStore(t)
		mode, err := s.Mode(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mode != ModeLive {
			t.Errorf("expected %q, got %q", ModeLive, mode)
		}
	})

	t.Run("set and read back", func(t *testing.T) {
		s := openStore(t)
		if err := s.SetMode(ctx, ModeMock); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mode, err := s.Mode(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mode != ModeMock {
			t.Errorf("expected %q, got %q", ModeMock, mode)
		}
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		s := openStore(t)
		if err := s.SetMode(ctx, "offline"); err == nil {
			t.Error("expected an error for unknown mode")
		}
	})

	t.Run("mode survives reopen", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		s, err := Open(dbPath)
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		if err := s.SetMode(ctx, ModeMock); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("closing store: %v", err)
		}

		s2, err := Open(dbPath)
		if err != nil {
			t.Fatalf("failed to reopen store: %v", err)
		}
		defer func() { _ = s2.Close() }()

		mode, err := s2.Mode(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mode != ModeMock {
			t.Errorf("expected persisted %q, got %q", ModeMock, mode)
		}
	})
}

func TestStore_LastSession(t *testing.T) {
	ctx := context.Background()

	t.Run("empty when never set", func(t *testing.T) {
		s := openStore(t)
		customer, date, err := s.LastSession(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer != "" || date != "" {
			t.Errorf("expected empty session, got %q %q", customer, date)
		}
	})

	t.Run("round trips and overwrites", func(t *testing.T) {
		s := openStore(t)
		if err := s.SetLastSession(ctx, "42", "2025-11-03"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.SetLastSession(ctx, "42", "2025-11-04"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		customer, date, err := s.LastSession(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer != "42" || date != "2025-11-04" {
			t.Errorf("expected 42/2025-11-04, got %q %q", customer, date)
		}
	})
}
