package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/masterfit/fitcal/internal/dateutil"
)

func (a *App) slotsCmd() *cobra.Command {
	var (
		dateFlag     string
		resourceFlag string
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List appointment slots for a day",
		Long: `List the appointment slots for every resource on a given day.

If no date is given, today's slots are listed. With --resource only
that resource's slots are shown.`,
		Example: `  fitcal slots
  fitcal slots --date=2025-11-03
  fitcal slots --date=tomorrow --resource=1`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			gw, _, err := a.gateway(ctx)
			if err != nil {
				return err
			}
			customerID := a.customerID(ctx)

			resources, err := gw.ListResources(ctx, customerID)
			if err != nil {
				return fmt.Errorf("listing resources: %w", err)
			}

			dateStr := dateutil.FormatDate(date)
			printed := false
			for _, r := range resources {
				if resourceFlag != "" && r.ID != resourceFlag {
					continue
				}
				slots, err := gw.ListSlots(ctx, customerID, dateStr, r.ID)
				if err != nil {
					return fmt.Errorf("listing slots for resource %s: %w", r.ID, err)
				}

				name := r.DisplayName
				if name == "" {
					name = "#" + r.ID
				}
				fmt.Println(sectionHeader(name + " " + dateStr))
				if len(slots) == 0 {
					fmt.Println(formatMuted("  no slots"))
				}
				for _, s := range slots {
					fmt.Println(formatSlotLine(s, customerID))
				}
				fmt.Println()
				printed = true
			}

			if !printed && resourceFlag != "" {
				return fmt.Errorf("resource %q not found", resourceFlag)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date (YYYY-MM-DD, today, or tomorrow)")
	cmd.Flags().StringVar(&resourceFlag, "resource", "", "Only show this resource id")

	return cmd
}
