// Package ui implements the fitcal command line interface.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/masterfit/fitcal/internal/api"
	"github.com/masterfit/fitcal/internal/config"
	"github.com/masterfit/fitcal/internal/dateutil"
	"github.com/masterfit/fitcal/internal/prefs"
	"github.com/masterfit/fitcal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	store  *prefs.Store
	root   *cobra.Command

	debug    bool   // Enable debug logging
	customer string // Overrides the configured customer id
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "fitcal",
		Short: "A terminal client for MasterFit appointment booking",
		Long: `Fitcal is a terminal client for the MasterFit nutrition clinic.

It shows the day's appointment slots as a grid, lets you register for
an open slot, move an existing registration, and update the status and
notes of a confirmed appointment.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to fitcal-debug.log)")
	a.root.PersistentFlags().StringVar(&a.customer, "customer", "", "Customer id (defaults to config, then last session)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.resourcesCmd())
	a.root.AddCommand(a.slotsCmd())
	a.root.AddCommand(a.modeCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("fitcal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the preference store, if it was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// openStore opens the preference database on first use.
func (a *App) openStore() (*prefs.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := prefs.Open(a.config.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}
	a.store = store
	return store, nil
}

// gateway builds the remote gateway with its persisted-mode fallback.
func (a *App) gateway(ctx context.Context) (api.Gateway, *prefs.Store, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, nil, err
	}

	mode, err := store.Mode(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("reading transport mode: %w", err)
	}
	// Without a configured endpoint there is nothing live to call.
	if a.config.API.BaseURL == "" {
		mode = prefs.ModeMock
	}

	live := api.NewClient(a.config.API.BaseURL)
	return api.NewFallbackGateway(live, store, mode), store, nil
}

// customerID resolves the session's customer id: flag, then config,
// then the last persisted session, then the fixture customer.
func (a *App) customerID(ctx context.Context) string {
	if a.customer != "" {
		return a.customer
	}
	if a.config.API.CustomerID != "" {
		return a.config.API.CustomerID
	}
	if store, err := a.openStore(); err == nil {
		if last, _, err := store.LastSession(ctx); err == nil && last != "" {
			return last
		}
	}
	return api.FixtureCustomerID
}

// resolveDate parses a --date flag value, falling back to today.
func resolveDate(value string) (time.Time, error) {
	if value == "" {
		return dateutil.TruncateToDay(time.Now()), nil
	}
	return dateutil.ParseDateOrKeyword(value, time.Now())
}

func (a *App) runTUI() error {
	ctx := context.Background()
	gw, store, err := a.gateway(ctx)
	if err != nil {
		return err
	}
	customerID := a.customerID(ctx)
	date := dateutil.TruncateToDay(time.Now())
	if _, last, err := store.LastSession(ctx); err == nil && last != "" {
		if d, err := dateutil.ParseDate(last); err == nil {
			date = d
		}
	}
	return tui.RunWithDebug(gw, store, a.config, customerID, date, a.debug)
}
