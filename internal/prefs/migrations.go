package prefs

import "fmt"

// migrate runs database migrations.
func (s *Store) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating settings table: %w", err)
	}

	return nil
}
