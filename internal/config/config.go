// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	API      APIConfig      `toml:"api"`
	Schedule ScheduleConfig `toml:"schedule"`
	Booking  BookingConfig  `toml:"booking"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// APIConfig holds remote endpoint settings.
type APIConfig struct {
	BaseURL    string `toml:"base_url"`    // e.g., "https://api.example.com/api"
	CustomerID string `toml:"customer_id"` // default session customer
}

// ScheduleConfig holds grid geometry settings.
type ScheduleConfig struct {
	DayStartHour int `toml:"day_start_hour"` // first grid hour, e.g. 8
	DayEndHour   int `toml:"day_end_hour"`   // last grid hour, e.g. 17
	StepMinutes  int `toml:"step_minutes"`   // row height in minutes, e.g. 30
}

// BookingConfig holds appointment workflow settings.
type BookingConfig struct {
	// TrustServerOwnership lets server-reported slot ownership seed the
	// local registration on load. Off by default: trusting the server
	// blindly can present a slot as already registered when no local
	// action justifies it.
	TrustServerOwnership bool `toml:"trust_server_ownership"`
}

// StorageConfig holds preference database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    "",
			CustomerID: "",
		},
		Schedule: ScheduleConfig{
			DayStartHour: 8,
			DayEndHour:   17,
			StepMinutes:  30,
		},
		Booking: BookingConfig{
			TrustServerOwnership: false,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default preference database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fitcal.db"
	}
	return filepath.Join(home, ".local", "share", "fitcal", "fitcal.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "fitcal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITCAL_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("FITCAL_CUSTOMER_ID"); v != "" {
		cfg.API.CustomerID = v
	}
	if v := os.Getenv("FITCAL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("FITCAL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("FITCAL_TRUST_SERVER_OWNERSHIP"); v != "" {
		cfg.Booking.TrustServerOwnership = v == "1" || strings.EqualFold(v, "true")
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	s := c.Schedule
	if s.DayStartHour < 0 || s.DayStartHour > 23 {
		return fmt.Errorf("day_start_hour must be between 0 and 23, got %d", s.DayStartHour)
	}
	if s.DayEndHour < 0 || s.DayEndHour > 23 {
		return fmt.Errorf("day_end_hour must be between 0 and 23, got %d", s.DayEndHour)
	}
	if s.DayStartHour > s.DayEndHour {
		return errors.New("day_start_hour must not be after day_end_hour")
	}
	if s.StepMinutes <= 0 || 60%s.StepMinutes != 0 {
		return fmt.Errorf("step_minutes must evenly divide 60, got %d", s.StepMinutes)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
