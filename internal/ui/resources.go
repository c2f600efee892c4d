package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) resourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the bookable resources",
		Long: `List the clinic resources appointments can be booked against.

Example:
  fitcal resources`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			gw, _, err := a.gateway(ctx)
			if err != nil {
				return err
			}

			resources, err := gw.ListResources(ctx, a.customerID(ctx))
			if err != nil {
				return fmt.Errorf("listing resources: %w", err)
			}

			if len(resources) == 0 {
				fmt.Println("No resources found.")
				return nil
			}

			fmt.Println(sectionHeader("Resources"))
			for _, r := range resources {
				name := r.DisplayName
				if name == "" {
					name = formatMuted("(unnamed)")
				}
				fmt.Printf("  %s  %s\n", formatMuted("#"+r.ID), name)
			}
			return nil
		},
	}
}
