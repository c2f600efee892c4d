package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/masterfit/fitcal/internal/prefs"
)

func (a *App) modeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode [live|mock]",
		Short: "Show or set the transport mode",
		Long: `Show or set the persisted transport mode.

In live mode slot data comes from the configured server; in mock mode
bundled fixture data is served locally. The client flips itself to
mock when the server cannot be reached, and stays there until set back
to live.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			store, err := a.openStore()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				mode, err := store.Mode(ctx)
				if err != nil {
					return fmt.Errorf("reading transport mode: %w", err)
				}
				if mode == prefs.ModeMock {
					fmt.Println(formatWarn(mode))
				} else {
					fmt.Println(mode)
				}
				return nil
			}

			if err := store.SetMode(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Transport mode set to %s\n", args[0])
			return nil
		},
	}
}
