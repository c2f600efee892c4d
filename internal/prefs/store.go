// Package prefs provides SQLite-backed persistence for UI preferences.
package prefs

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// Transport modes. The mode flag survives across runs: it is written
// whenever a remote read falls back to fixtures and read at startup to
// decide the initial transport assumption.
const (
	ModeLive = "live"
	ModeMock = "mock"
)

// Setting keys.
const (
	keyMode         = "transport_mode"
	keyLastCustomer = "last_customer_id"
	keyLastDate     = "last_date"
)

// Store persists preferences in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates a new preference store and runs migrations.
// The parent directory is created if it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Mode returns the persisted transport mode, defaulting to live.
func (s *Store) Mode(ctx context.Context) (string, error) {
	mode, err := s.get(ctx, keyMode)
	if err != nil {
		return "", err
	}
	if mode != ModeMock {
		return ModeLive, nil
	}
	return ModeMock, nil
}

// SetMode persists the transport mode.
func (s *Store) SetMode(ctx context.Context, mode string) error {
	if mode != ModeLive && mode != ModeMock {
		return fmt.Errorf("unknown transport mode %q", mode)
	}
	return s.set(ctx, keyMode, mode)
}

// LastSession returns the customer id and date of the previous
// session, either of which may be empty.
func (s *Store) LastSession(ctx context.Context) (customerID, date string, err error) {
	customerID, err = s.get(ctx, keyLastCustomer)
	if err != nil {
		return "", "", err
	}
	date, err = s.get(ctx, keyLastDate)
	if err != nil {
		return "", "", err
	}
	return customerID, date, nil
}

// SetLastSession persists the session context for the next run.
func (s *Store) SetLastSession(ctx context.Context, customerID, date string) error {
	if err := s.set(ctx, keyLastCustomer, customerID); err != nil {
		return err
	}
	return s.set(ctx, keyLastDate, date)
}

// get reads a setting value, returning "" when the key is absent.
func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying setting %q: %w", key, err)
	}
	return value, nil
}

// set writes a setting value, inserting or replacing.
func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("storing setting %q: %w", key, err)
	}
	return nil
}

// Close releases database resources.
func (s *Store) Close() error {
	return s.db.Close()
}
